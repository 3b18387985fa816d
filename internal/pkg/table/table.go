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

package table

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
)

// Actions 表格上方和每一行可以出现的按钮
type Actions struct {
	CanCreate bool `json:"canCreate"`
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

// AllActions 后端自己会校验权限，前端都展示
var AllActions = Actions{CanCreate: true, CanEdit: true, CanDelete: true}

// Table 列表页的统一返回值，没有数据时前端展示 EmptyMessage
type Table[T any] struct {
	Rows         []T             `json:"rows"`
	Meta         pagination.Meta `json:"meta"`
	EmptyMessage string          `json:"emptyMessage"`
	Actions      Actions         `json:"actions"`
}

func New[S any, T any](items []S, meta pagination.Meta, empty string,
	actions Actions, m func(src S) T) Table[T] {
	rows := slice.Map(items, func(idx int, src S) T {
		return m(src)
	})
	if rows == nil {
		rows = []T{}
	}
	return Table[T]{
		Rows:         rows,
		Meta:         meta,
		EmptyMessage: empty,
		Actions:      actions,
	}
}

// Plain 不分页的列表
func Plain[S any, T any](items []S, empty string, m func(src S) T) Table[T] {
	return New(items, pagination.NewMeta(pagination.Query{Limit: pagination.MaxLimit}, len(items)),
		empty, Actions{}, m)
}

func (t Table[T]) Empty() bool {
	return len(t.Rows) == 0
}
