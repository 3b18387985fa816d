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
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/dao"
)

type RegistrationRepository interface {
	JoinCourse(ctx context.Context, courseId string) (domain.CourseRegistration, error)
	MyCourseRegistrations(ctx context.Context) ([]domain.CourseRegistration, error)
	EnterExam(ctx context.Context, examId string) (domain.ExamRegistration, error)
	MyExamRegistrations(ctx context.Context) ([]domain.ExamRegistration, error)
	ExamRegistrations(ctx context.Context, examId string) ([]domain.ExamRegistration, error)
	Grade(ctx context.Context, g domain.Grade) (domain.ExamRegistration, error)
}

type registrationRepository struct {
	dao dao.RegistrationDAO
}

func NewRegistrationRepository(d dao.RegistrationDAO) RegistrationRepository {
	return &registrationRepository{dao: d}
}

func (repo *registrationRepository) JoinCourse(ctx context.Context, courseId string) (domain.CourseRegistration, error) {
	res, err := repo.dao.JoinCourse(ctx, courseId)
	return repo.courseRegToDomain(res), err
}

func (repo *registrationRepository) MyCourseRegistrations(ctx context.Context) ([]domain.CourseRegistration, error) {
	res, err := repo.dao.MyCourseRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.CourseRegistration) domain.CourseRegistration {
		return repo.courseRegToDomain(src)
	}), nil
}

func (repo *registrationRepository) EnterExam(ctx context.Context, examId string) (domain.ExamRegistration, error) {
	res, err := repo.dao.EnterExam(ctx, examId)
	return repo.examRegToDomain(res), err
}

func (repo *registrationRepository) MyExamRegistrations(ctx context.Context) ([]domain.ExamRegistration, error) {
	res, err := repo.dao.MyExamRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	return repo.examRegsToDomain(res), nil
}

func (repo *registrationRepository) ExamRegistrations(ctx context.Context, examId string) ([]domain.ExamRegistration, error) {
	res, err := repo.dao.ExamRegistrations(ctx, examId)
	if err != nil {
		return nil, err
	}
	return repo.examRegsToDomain(res), nil
}

func (repo *registrationRepository) Grade(ctx context.Context, g domain.Grade) (domain.ExamRegistration, error) {
	res, err := repo.dao.Grade(ctx, g.ExamId, dao.GradeReq{
		StudentId: g.StudentId,
		Grade:     g.Value,
	})
	return repo.examRegToDomain(res), err
}

func (repo *registrationRepository) examRegsToDomain(src []dao.ExamRegistration) []domain.ExamRegistration {
	return slice.Map(src, func(idx int, src dao.ExamRegistration) domain.ExamRegistration {
		return repo.examRegToDomain(src)
	})
}

func (repo *registrationRepository) courseRegToDomain(src dao.CourseRegistration) domain.CourseRegistration {
	return domain.CourseRegistration{
		Id:        src.Id,
		CourseId:  src.CourseId,
		StudentId: src.StudentId,
		CreatedAt: src.CreatedAt,
		Passed:    src.Passed,
	}
}

func (repo *registrationRepository) examRegToDomain(src dao.ExamRegistration) domain.ExamRegistration {
	return domain.ExamRegistration{
		Id:        src.Id,
		ExamId:    src.ExamId,
		StudentId: src.StudentId,
		CreatedAt: src.CreatedAt,
		Grade:     src.Grade,
		Passed:    src.Passed,
	}
}
