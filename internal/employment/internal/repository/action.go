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

	"github.com/ecodeclub/ekit/slice"
	"github.com/fakultet-ssz/portal/internal/employment/internal/domain"
	"github.com/fakultet-ssz/portal/internal/employment/internal/repository/dao"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
)

type ActionRepository interface {
	QuitJob(ctx context.Context) error
	Professors(ctx context.Context, q pagination.Query) (pagination.Page[domain.Professor], error)
	Apply(ctx context.Context, jobId, email string) (domain.JobApplication, error)
	JobCandidates(ctx context.Context, jobId string) ([]domain.JobCandidate, error)
	ScheduleInterview(ctx context.Context, i domain.Interview) (domain.Interview, error)
	AcceptInterview(ctx context.Context, id string) error
	RejectInterview(ctx context.Context, id string) error
	Hire(ctx context.Context, h domain.Hire) error
}

type actionRepository struct {
	dao          dao.ActionDAO
	professorDAO dao.ProfessorDAO
}

func NewActionRepository(d dao.ActionDAO, professorDAO dao.ProfessorDAO) ActionRepository {
	return &actionRepository{dao: d, professorDAO: professorDAO}
}

func (repo *actionRepository) QuitJob(ctx context.Context) error {
	return repo.dao.QuitJob(ctx)
}

func (repo *actionRepository) Professors(ctx context.Context, q pagination.Query) (pagination.Page[domain.Professor], error) {
	page, err := repo.professorDAO.List(ctx, q)
	if err != nil {
		return pagination.Page[domain.Professor]{}, err
	}
	return toPage(page.Items, q, page.TotalItems, func(src dao.Professor) domain.Professor {
		return domain.Professor{
			Id:       src.Id,
			FullName: src.FullName,
			Email:    src.Email,
		}
	}), nil
}

func (repo *actionRepository) Apply(ctx context.Context, jobId, email string) (domain.JobApplication, error) {
	res, err := repo.dao.Apply(ctx, jobId, email)
	return jobApplicationToDomain(res), err
}

func (repo *actionRepository) JobCandidates(ctx context.Context, jobId string) ([]domain.JobCandidate, error) {
	res, err := repo.dao.JobCandidates(ctx, jobId)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.JobCandidate) domain.JobCandidate {
		return domain.JobCandidate{
			Id:       src.Id,
			FullName: src.FullName,
			Email:    src.Email,
			IndexNo:  deref(src.IndexNo),
			AvgGrade: src.AvgGrade,
		}
	}), nil
}

func (repo *actionRepository) ScheduleInterview(ctx context.Context, i domain.Interview) (domain.Interview, error) {
	res, err := repo.dao.ScheduleInterview(ctx, interviewToEntity(i))
	return interviewToDomain(res), err
}

func (repo *actionRepository) AcceptInterview(ctx context.Context, id string) error {
	return repo.dao.AcceptInterview(ctx, id)
}

func (repo *actionRepository) RejectInterview(ctx context.Context, id string) error {
	return repo.dao.RejectInterview(ctx, id)
}

func (repo *actionRepository) Hire(ctx context.Context, h domain.Hire) error {
	return repo.dao.Hire(ctx, h.CandidateId, h.JobId)
}
