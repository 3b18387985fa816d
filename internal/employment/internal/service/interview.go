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
)

// InterviewService 每个操作成功之后都重新查询当前页
type InterviewService interface {
	List(ctx context.Context, q pagination.Query) (pagination.Page[domain.Interview], error)
	Delete(ctx context.Context, id string, q pagination.Query) (pagination.Page[domain.Interview], error)
	Accept(ctx context.Context, id string, q pagination.Query) (pagination.Page[domain.Interview], error)
	Reject(ctx context.Context, id string, q pagination.Query) (pagination.Page[domain.Interview], error)
	Hire(ctx context.Context, h domain.Hire, q pagination.Query) (pagination.Page[domain.Interview], error)
}

type interviewService struct {
	repo    repository.InterviewRepository
	actions repository.ActionRepository
}

func NewInterviewService(repo repository.InterviewRepository, actions repository.ActionRepository) InterviewService {
	return &interviewService{repo: repo, actions: actions}
}

func (s *interviewService) List(ctx context.Context, q pagination.Query) (pagination.Page[domain.Interview], error) {
	return s.repo.List(ctx, q.Normalize())
}

func (s *interviewService) Delete(ctx context.Context, id string, q pagination.Query) (pagination.Page[domain.Interview], error) {
	return s.withId(ctx, id, q, s.repo.Delete)
}

func (s *interviewService) Accept(ctx context.Context, id string, q pagination.Query) (pagination.Page[domain.Interview], error) {
	return s.withId(ctx, id, q, s.actions.AcceptInterview)
}

func (s *interviewService) Reject(ctx context.Context, id string, q pagination.Query) (pagination.Page[domain.Interview], error) {
	return s.withId(ctx, id, q, s.actions.RejectInterview)
}

func (s *interviewService) Hire(ctx context.Context, h domain.Hire, q pagination.Query) (pagination.Page[domain.Interview], error) {
	h.CandidateId = strings.TrimSpace(h.CandidateId)
	h.JobId = strings.TrimSpace(h.JobId)
	if h.CandidateId == "" || h.JobId == "" {
		return pagination.Page[domain.Interview]{}, ErrMissingId
	}
	if err := s.actions.Hire(ctx, h); err != nil {
		return pagination.Page[domain.Interview]{}, err
	}
	return s.List(ctx, q)
}

func (s *interviewService) withId(ctx context.Context, id string, q pagination.Query,
	action func(ctx context.Context, id string) error) (pagination.Page[domain.Interview], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pagination.Page[domain.Interview]{}, ErrMissingId
	}
	if err := action(ctx, id); err != nil {
		return pagination.Page[domain.Interview]{}, err
	}
	return s.List(ctx, q)
}
