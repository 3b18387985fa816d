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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/fakultet-ssz/portal/internal/employment/internal/repository/dao"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
)

type ResourceRepository[D any] interface {
	List(ctx context.Context, q pagination.Query) (pagination.Page[D], error)
	FindById(ctx context.Context, id string) (D, error)
	Create(ctx context.Context, d D) (D, error)
	Update(ctx context.Context, id string, d D) (D, error)
	Delete(ctx context.Context, id string) error
}

type resourceRepository[E any, D any] struct {
	dao      dao.ResourceDAO[E]
	toDomain func(E) D
	toEntity func(D) E
}

func newResourceRepository[E any, D any](d dao.ResourceDAO[E],
	toDomain func(E) D, toEntity func(D) E) *resourceRepository[E, D] {
	return &resourceRepository[E, D]{
		dao:      d,
		toDomain: toDomain,
		toEntity: toEntity,
	}
}

func (repo *resourceRepository[E, D]) List(ctx context.Context, q pagination.Query) (pagination.Page[D], error) {
	page, err := repo.dao.List(ctx, q)
	if err != nil {
		return pagination.Page[D]{}, err
	}
	return toPage(page.Items, q, page.TotalItems, repo.toDomain), nil
}

func (repo *resourceRepository[E, D]) FindById(ctx context.Context, id string) (D, error) {
	res, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(res), err
}

func (repo *resourceRepository[E, D]) Create(ctx context.Context, d D) (D, error) {
	res, err := repo.dao.Create(ctx, repo.toEntity(d))
	return repo.toDomain(res), err
}

func (repo *resourceRepository[E, D]) Update(ctx context.Context, id string, d D) (D, error) {
	res, err := repo.dao.Update(ctx, id, repo.toEntity(d))
	return repo.toDomain(res), err
}

func (repo *resourceRepository[E, D]) Delete(ctx context.Context, id string) error {
	return repo.dao.Delete(ctx, id)
}

func toPage[E any, D any](items []E, q pagination.Query, total int, m func(E) D) pagination.Page[D] {
	return pagination.Page[D]{
		Items: slice.Map(items, func(idx int, src E) D {
			return m(src)
		}),
		Query:      q,
		TotalItems: total,
	}
}

// deref 后端用 null 表示没有值
func deref[T any](ptr *T) T {
	var zero T
	if ptr == nil {
		return zero
	}
	return *ptr
}

// ref 零值不发送给后端
func ref[T comparable](val T) *T {
	var zero T
	if val == zero {
		return nil
	}
	return &val
}
