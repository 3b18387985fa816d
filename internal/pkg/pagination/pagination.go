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

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query 列表页的查询条件，page 从 1 开始
type Query struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
}

func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

func (q Query) Offset() int {
	q = q.Normalize()
	return (q.Page - 1) * q.Limit
}

// WithSearch 换了搜索条件之后回到第一页
func (q Query) WithSearch(search string) Query {
	q.Search = strings.TrimSpace(search)
	q.Page = DefaultPage
	return q
}

// WithLimit 换了每页条数之后回到第一页
func (q Query) WithLimit(limit int) Query {
	q.Limit = limit
	q.Page = DefaultPage
	return q.Normalize()
}

func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// Values 空值不会出现在结果里
func (q Query) Values() url.Values {
	res := url.Values{}
	if q.Page > 0 {
		res.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		res.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		res.Set("search", q.Search)
	}
	return res
}

func (q Query) Encode() string {
	return q.Values().Encode()
}

// ParseValues 解析 ?page=&limit=&search=，非法值使用默认值
func ParseValues(values url.Values) Query {
	page, _ := strconv.Atoi(values.Get("page"))
	limit, _ := strconv.Atoi(values.Get("limit"))
	return Query{
		Page:   page,
		Limit:  limit,
		Search: values.Get("search"),
	}.Normalize()
}

func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
