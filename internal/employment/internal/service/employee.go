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
	"strings"

	"github.com/fakultet-ssz/portal/internal/employment/internal/domain"
	"github.com/fakultet-ssz/portal/internal/employment/internal/repository"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
)

type EmployeeService interface {
	ResourceService[domain.Employee]
	// Colleagues 同一个职位的同事，后端根据 token 过滤
	Colleagues(ctx context.Context, q pagination.Query) (pagination.Page[domain.Employee], error)
	// QuitJob 当前登录的员工离职
	QuitJob(ctx context.Context) error
	Professors(ctx context.Context, q pagination.Query) (pagination.Page[domain.Professor], error)
}

type employeeService struct {
	resourceService[domain.Employee]
	actions repository.ActionRepository
}

func NewEmployeeService(repo repository.EmployeeRepository, actions repository.ActionRepository) EmployeeService {
	return &employeeService{
		resourceService: resourceService[domain.Employee]{repo: repo},
		actions:         actions,
	}
}

func (s *employeeService) Save(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	e.FullName = strings.TrimSpace(e.FullName)
	e.Email = strings.TrimSpace(e.Email)
	if e.Role == "" {
		e.Role = roles.Employee
	}
	return s.save(ctx, e.Id, e)
}

func (s *employeeService) Colleagues(ctx context.Context, q pagination.Query) (pagination.Page[domain.Employee], error) {
	return s.repo.List(ctx, q.Normalize())
}

func (s *employeeService) QuitJob(ctx context.Context) error {
	return s.actions.QuitJob(ctx)
}

func (s *employeeService) Professors(ctx context.Context, q pagination.Query) (pagination.Page[domain.Professor], error) {
	return s.actions.Professors(ctx, q.Normalize())
}
