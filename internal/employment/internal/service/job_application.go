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

	"github.com/fakultet-ssz/portal/internal/employment/internal/domain"
	"github.com/fakultet-ssz/portal/internal/employment/internal/repository"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/fakultet-ssz/portal/internal/pkg/textx"
	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInterviewType = errors.New("面试类型只能是 ONLINE 或者 IN_PERSON")
	ErrInvalidInterview     = errors.New("面试信息不完整")
)

type JobApplicationService interface {
	List(ctx context.Context, q pagination.Query) (pagination.Page[domain.JobApplication], error)
	Delete(ctx context.Context, id string) error
	// Schedule 给某个申请安排面试
	Schedule(ctx context.Context, i domain.Interview) (domain.Interview, error)
}

type jobApplicationService struct {
	repo     repository.JobApplicationRepository
	actions  repository.ActionRepository
	validate *validator.Validate
}

func NewJobApplicationService(repo repository.JobApplicationRepository,
	actions repository.ActionRepository) JobApplicationService {
	return &jobApplicationService{
		repo:     repo,
		actions:  actions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *jobApplicationService) List(ctx context.Context, q pagination.Query) (pagination.Page[domain.JobApplication], error) {
	return s.repo.List(ctx, q.Normalize())
}

func (s *jobApplicationService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingId
	}
	return s.repo.Delete(ctx, id)
}

// scheduleReq 安排面试时的校验规则
type scheduleReq struct {
	JobApplicationId string `validate:"required"`
	CandidateId      string `validate:"required"`
	JobId            string `validate:"required"`
	DateTime         string `validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Location         string `validate:"required"`
}

func (s *jobApplicationService) Schedule(ctx context.Context, i domain.Interview) (domain.Interview, error) {
	if !i.Type.Valid() {
		return domain.Interview{}, ErrInvalidInterviewType
	}
	i.DateTime = textx.NormalizeDateTime(i.DateTime)
	i.Location = strings.TrimSpace(i.Location)
	err := s.validate.Struct(scheduleReq{
		JobApplicationId: i.JobApplicationId,
		CandidateId:      i.CandidateId,
		JobId:            i.JobId,
		DateTime:         i.DateTime,
		Location:         i.Location,
	})
	if err != nil {
		return domain.Interview{}, errors.Join(ErrInvalidInterview, err)
	}
	return s.actions.ScheduleInterview(ctx, i)
}
