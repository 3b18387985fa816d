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
	"github.com/gotomicro/ego/core/elog"
)

var ErrMissingEmail = errors.New("缺少邮箱")

type JobService interface {
	ResourceService[domain.Job]
	// Apply 用当前登录用户的邮箱申请职位，学历由后端验证
	Apply(ctx context.Context, jobId, email string) (domain.ApplyResult, error)
	// Candidates 按平均分排好序的候选人
	Candidates(ctx context.Context, jobId string) ([]domain.JobCandidate, error)
}

type jobService struct {
	resourceService[domain.Job]
	actions repository.ActionRepository
	logger  *elog.Component
}

func NewJobService(repo repository.JobRepository, actions repository.ActionRepository) JobService {
	return &jobService{
		resourceService: resourceService[domain.Job]{repo: repo},
		actions:         actions,
		logger:          elog.DefaultLogger,
	}
}

func (s *jobService) Save(ctx context.Context, j domain.Job) (domain.Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	j.Location = strings.TrimSpace(j.Location)
	return s.save(ctx, j.Id, j)
}

func (s *jobService) Apply(ctx context.Context, jobId, email string) (domain.ApplyResult, error) {
	jobId = strings.TrimSpace(jobId)
	email = strings.TrimSpace(email)
	if jobId == "" {
		return domain.ApplyResult{}, ErrMissingId
	}
	if email == "" {
		return domain.ApplyResult{}, ErrMissingEmail
	}
	job, err := s.repo.FindById(ctx, jobId)
	if err != nil {
		return domain.ApplyResult{}, err
	}
	app, err := s.actions.Apply(ctx, jobId, email)
	if err != nil {
		return domain.ApplyResult{}, err
	}
	if job.RequiredFaculty {
		s.logger.Info("申请需要学历验证的职位", elog.String("job", jobId), elog.String("email", email))
	}
	return domain.ApplyResult{
		Application:         app,
		VerificationPending: job.RequiredFaculty,
	}, nil
}

func (s *jobService) Candidates(ctx context.Context, jobId string) ([]domain.JobCandidate, error) {
	jobId = strings.TrimSpace(jobId)
	if jobId == "" {
		return nil, ErrMissingId
	}
	return s.actions.JobCandidates(ctx, jobId)
}
