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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository"
)

var ErrMissingId = errors.New("缺少 id")

// ResourceService 列表页和编辑弹窗共用的接口，Save 在 id 为空的时候新建
type ResourceService[D any] interface {
	List(ctx context.Context, q pagination.Query) (pagination.Page[D], error)
	Detail(ctx context.Context, id string) (D, error)
	Save(ctx context.Context, d D) (D, error)
	Delete(ctx context.Context, id string) error
}

type resourceService[D any] struct {
	repo repository.ResourceRepository[D]
}

func (s *resourceService[D]) List(ctx context.Context, q pagination.Query) (pagination.Page[D], error) {
	return s.repo.List(ctx, q.Normalize())
}

func (s *resourceService[D]) Detail(ctx context.Context, id string) (D, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		var zero D
		return zero, ErrMissingId
	}
	return s.repo.FindById(ctx, id)
}

func (s *resourceService[D]) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingId
	}
	return s.repo.Delete(ctx, id)
}

// save id 为空时新建，否则更新
func (s *resourceService[D]) save(ctx context.Context, id string, d D) (D, error) {
	if id == "" {
		return s.repo.Create(ctx, d)
	}
	return s.repo.Update(ctx, id, d)
}
