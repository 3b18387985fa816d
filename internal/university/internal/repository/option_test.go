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
	"fmt"
	"testing"

	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/cache"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedProgramDAO 按 page 和 limit 切分 total 条数据
type pagedProgramDAO struct {
	dao.ProgramDAO
	total   int
	queries []pagination.Query
}

func (d *pagedProgramDAO) List(ctx context.Context, q pagination.Query) (backend.Page[dao.Program], error) {
	d.queries = append(d.queries, q)
	items := make([]dao.Program, 0, q.Limit)
	for i := q.Offset(); i < d.total && i < q.Offset()+q.Limit; i++ {
		items = append(items, dao.Program{Id: fmt.Sprintf("p-%d", i), Name: fmt.Sprintf("Program %d", i)})
	}
	return backend.Page[dao.Program]{
		Items:      items,
		Page:       q.Page,
		TotalItems: d.total,
		TotalPages: pagination.TotalPages(d.total, q.Limit),
	}, nil
}

type noopOptionCache struct{}

func (noopOptionCache) Get(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	return nil, cache.ErrOptionsNotFound
}

func (noopOptionCache) Set(ctx context.Context, kind domain.OptionKind, opts []domain.Option) error {
	return nil
}

func (noopOptionCache) Del(ctx context.Context, kind domain.OptionKind) error {
	return nil
}

func TestCachedOptionRepository_LoadsAllPages(t *testing.T) {
	testCases := []struct {
		name      string
		total     int
		wantPages []int
	}{
		{
			name:      "超过一页",
			total:     pagination.MaxLimit*2 + 30,
			wantPages: []int{1, 2, 3},
		},
		{
			name:      "正好一页",
			total:     pagination.MaxLimit,
			wantPages: []int{1},
		},
		{
			name:      "没有数据",
			wantPages: []int{1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			programDAO := &pagedProgramDAO{total: tc.total}
			repo := NewCachedOptionRepository(programDAO, nil, nil, noopOptionCache{})
			opts, err := repo.Options(context.Background(), domain.ProgramOptions)
			require.NoError(t, err)
			assert.Len(t, opts, tc.total)
			if tc.total > 0 {
				assert.Equal(t, domain.Option{Value: fmt.Sprintf("p-%d", tc.total-1),
					Label: fmt.Sprintf("Program %d", tc.total-1)}, opts[len(opts)-1])
			}
			pages := make([]int, 0, len(programDAO.queries))
			for _, q := range programDAO.queries {
				assert.Equal(t, pagination.MaxLimit, q.Limit)
				pages = append(pages, q.Page)
			}
			assert.Equal(t, tc.wantPages, pages)
		})
	}
}
