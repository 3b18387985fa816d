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
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
)

type CandidateService interface {
	ResourceService[domain.Candidate]
}

type candidateService struct {
	resourceService[domain.Candidate]
}

func NewCandidateService(repo repository.CandidateRepository) CandidateService {
	return &candidateService{resourceService: resourceService[domain.Candidate]{repo: repo}}
}

func (s *candidateService) Save(ctx context.Context, c domain.Candidate) (domain.Candidate, error) {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.TrimSpace(c.Email)
	c.IndexNo = strings.TrimSpace(c.IndexNo)
	if c.Role == "" {
		c.Role = roles.Candidate
	}
	return s.save(ctx, c.Id, c)
}
