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

	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository"
)

type StudentService interface {
	ResourceService[domain.Student]
}

type studentService struct {
	resourceService[domain.Student]
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{resourceService: resourceService[domain.Student]{repo: repo}}
}

func (s *studentService) Save(ctx context.Context, stu domain.Student) (domain.Student, error) {
	stu.Id = strings.TrimSpace(stu.Id)
	if stu.Role == "" {
		stu.Role = roles.Student
	}
	if stu.Id == "" {
		if stu.Status == "" {
			stu.Status = domain.StudentActive
		}
		return s.save(ctx, "", stu)
	}
	// 学号创建之后不能修改
	old, err := s.repo.FindById(ctx, stu.Id)
	if err != nil {
		return domain.Student{}, err
	}
	stu.IndexNo = old.IndexNo
	if stu.Status == "" {
		stu.Status = old.Status
	}
	return s.save(ctx, stu.Id, stu)
}
