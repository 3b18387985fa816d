// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pagination

// Meta 分页组件需要的全部信息
type Meta struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Search     string `json:"search"`
	TotalItems int    `json:"totalItems"`
	TotalPages int    `json:"totalPages"`
	HasPrev    bool   `json:"hasPrev"`
	HasNext    bool   `json:"hasNext"`
	PrevQuery  string `json:"prevQuery,omitempty"`
	NextQuery  string `json:"nextQuery,omitempty"`
}

// NewMeta 以后端返回的 totalItems 为准重新计算总页数
func NewMeta(q Query, totalItems int) Meta {
	q = q.Normalize()
	totalPages := TotalPages(totalItems, q.Limit)
	res := Meta{
		Page:       q.Page,
		Limit:      q.Limit,
		Search:     q.Search,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasPrev:    q.Page > 1,
		HasNext:    q.Page < totalPages,
	}
	if res.HasPrev {
		res.PrevQuery = q.WithPage(q.Page - 1).Encode()
	}
	if res.HasNext {
		res.NextQuery = q.WithPage(q.Page + 1).Encode()
	}
	return res
}
