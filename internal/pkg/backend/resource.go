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

package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/pkg/errors"
)

// Page 后端列表接口的统一格式：{<listKey>: [...], page, totalItems, totalPages, error}
type Page[T any] struct {
	Items      []T
	Page       int
	TotalItems int
	TotalPages int
}

// Resource 标准的 REST 资源，GET/POST/PUT/DELETE /path[/:id]
type Resource[T any] struct {
	client  *Client
	path    string
	listKey string
}

func NewResource[T any](client *Client, path, listKey string) *Resource[T] {
	return &Resource[T]{
		client:  client,
		path:    path,
		listKey: listKey,
	}
}

func (r *Resource[T]) List(ctx context.Context, q pagination.Query) (Page[T], error) {
	var raw map[string]json.RawMessage
	err := r.client.Get(ctx, r.path, ListParams(q), &raw)
	if err != nil {
		return Page[T]{}, err
	}
	return DecodePage[T](raw, r.listKey)
}

func (r *Resource[T]) FindById(ctx context.Context, id string) (T, error) {
	var res T
	err := r.client.Get(ctx, r.Path(id), nil, &res)
	return res, err
}

func (r *Resource[T]) Create(ctx context.Context, entity T) (T, error) {
	var res T
	err := r.client.Post(ctx, r.path, entity, &res)
	return res, err
}

func (r *Resource[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	var res T
	err := r.client.Put(ctx, r.Path(id), entity, &res)
	return res, err
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, r.Path(id), nil)
}

// Path 拼接子路径，每一段都会被转义
func (r *Resource[T]) Path(segments ...string) string {
	res := r.path
	for _, seg := range segments {
		res += "/" + url.PathEscape(seg)
	}
	return res
}

func ListParams(q pagination.Query) map[string]string {
	return map[string]string{
		"page":   strconv.Itoa(q.Page),
		"max":    strconv.Itoa(q.Limit),
		"search": q.Search,
	}
}

func DecodePage[T any](raw map[string]json.RawMessage, listKey string) (Page[T], error) {
	var res Page[T]
	if val, ok := raw["error"]; ok {
		var msg string
		if json.Unmarshal(val, &msg) == nil && msg != "" {
			return res, &APIError{Status: http.StatusOK, Message: msg}
		}
	}
	if val, ok := raw[listKey]; ok {
		if err := json.Unmarshal(val, &res.Items); err != nil {
			return res, errors.Wrapf(err, "解析列表 %s 失败", listKey)
		}
	}
	if res.Items == nil {
		res.Items = []T{}
	}
	res.Page = decodeInt(raw["page"])
	res.TotalItems = decodeInt(raw["totalItems"])
	res.TotalPages = decodeInt(raw["totalPages"])
	return res, nil
}

func decodeInt(val json.RawMessage) int {
	var res int
	_ = json.Unmarshal(val, &res)
	return res
}
