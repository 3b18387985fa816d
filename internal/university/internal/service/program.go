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

	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository"
)

type ProgramService interface {
	ResourceService[domain.Program]
	// Options 学生表单里的专业下拉框
	Options(ctx context.Context) ([]domain.Option, error)
}

type programService struct {
	resourceService[domain.Program]
	options repository.OptionRepository
}

func NewProgramService(repo repository.ProgramRepository, options repository.OptionRepository) ProgramService {
	return &programService{
		resourceService: resourceService[domain.Program]{repo: repo},
		options:         options,
	}
}

func (s *programService) Save(ctx context.Context, p domain.Program) (domain.Program, error) {
	p.Id = strings.TrimSpace(p.Id)
	p.Name = strings.TrimSpace(p.Name)
	res, err := s.save(ctx, p.Id, p)
	if err == nil {
		s.options.Invalidate(ctx, domain.ProgramOptions)
	}
	return res, err
}

func (s *programService) Delete(ctx context.Context, id string) error {
	err := s.resourceService.Delete(ctx, id)
	if err == nil {
		s.options.Invalidate(ctx, domain.ProgramOptions)
	}
	return err
}

func (s *programService) Options(ctx context.Context) ([]domain.Option, error) {
	return s.options.Options(ctx, domain.ProgramOptions)
}
