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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/cache"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

// 下拉框按页取完全部数据，每页取最大值
var optionsQuery = pagination.Query{Page: 1, Limit: pagination.MaxLimit}

// OptionRepository 表单下拉框选项，先查缓存
type OptionRepository interface {
	Options(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error)
	// Invalidate 数据变更之后调用
	Invalidate(ctx context.Context, kind domain.OptionKind)
}

type cachedOptionRepository struct {
	programDAO   dao.ProgramDAO
	courseDAO    dao.CourseDAO
	professorDAO dao.ProfessorDAO
	cache        cache.OptionCache
	logger       *elog.Component
}

func NewCachedOptionRepository(programDAO dao.ProgramDAO, courseDAO dao.CourseDAO,
	professorDAO dao.ProfessorDAO, c cache.OptionCache) OptionRepository {
	return &cachedOptionRepository{
		programDAO:   programDAO,
		courseDAO:    courseDAO,
		professorDAO: professorDAO,
		cache:        c,
		logger:       elog.DefaultLogger,
	}
}

func (repo *cachedOptionRepository) Options(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	res, err := repo.cache.Get(ctx, kind)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrOptionsNotFound) {
		repo.logger.Error("查询下拉框缓存失败", elog.FieldErr(err), elog.String("kind", string(kind)))
	}
	res, err = repo.load(ctx, kind)
	if err != nil {
		return nil, err
	}
	if err = repo.cache.Set(ctx, kind, res); err != nil {
		repo.logger.Error("回写下拉框缓存失败", elog.FieldErr(err), elog.String("kind", string(kind)))
	}
	return res, nil
}

func (repo *cachedOptionRepository) Invalidate(ctx context.Context, kind domain.OptionKind) {
	if err := repo.cache.Del(ctx, kind); err != nil {
		repo.logger.Error("删除下拉框缓存失败", elog.FieldErr(err), elog.String("kind", string(kind)))
	}
}

func (repo *cachedOptionRepository) load(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	switch kind {
	case domain.ProgramOptions:
		items, err := listAll(ctx, repo.programDAO.List)
		if err != nil {
			return nil, err
		}
		return slice.Map(items, func(idx int, src dao.Program) domain.Option {
			return domain.Option{Value: src.Id, Label: src.Name}
		}), nil
	case domain.CourseOptions:
		items, err := listAll(ctx, repo.courseDAO.List)
		if err != nil {
			return nil, err
		}
		return slice.Map(items, func(idx int, src dao.Course) domain.Option {
			return domain.Option{Value: src.Id, Label: src.Code + " " + src.Name}
		}), nil
	case domain.ProfessorOptions:
		items, err := listAll(ctx, repo.professorDAO.List)
		if err != nil {
			return nil, err
		}
		return slice.Map(items, func(idx int, src dao.Professor) domain.Option {
			return domain.Option{Value: src.Id, Label: src.FullName}
		}), nil
	default:
		return nil, errors.New("未知的下拉框类型 " + string(kind))
	}
}

// listAll 一直翻页到最后一页
func listAll[T any](ctx context.Context,
	list func(ctx context.Context, q pagination.Query) (backend.Page[T], error)) ([]T, error) {
	q := optionsQuery
	res := make([]T, 0, q.Limit)
	for {
		page, err := list(ctx, q)
		if err != nil {
			return nil, err
		}
		res = append(res, page.Items...)
		if len(page.Items) == 0 || q.Page >= page.TotalPages {
			return res, nil
		}
		q.Page++
	}
}
