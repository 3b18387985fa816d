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

type ProfessorService interface {
	ResourceService[domain.Professor]
}

type professorService struct {
	resourceService[domain.Professor]
	options repository.OptionRepository
}

func NewProfessorService(repo repository.ProfessorRepository, options repository.OptionRepository) ProfessorService {
	return &professorService{
		resourceService: resourceService[domain.Professor]{repo: repo},
		options:         options,
	}
}

func (s *professorService) Save(ctx context.Context, p domain.Professor) (domain.Professor, error) {
	p.Id = strings.TrimSpace(p.Id)
	if p.Role == "" {
		p.Role = roles.Professor
	}
	res, err := s.save(ctx, p.Id, p)
	if err == nil {
		s.options.Invalidate(ctx, domain.ProfessorOptions)
	}
	return res, err
}

func (s *professorService) Delete(ctx context.Context, id string) error {
	err := s.resourceService.Delete(ctx, id)
	if err == nil {
		s.options.Invalidate(ctx, domain.ProfessorOptions)
	}
	return err
}
