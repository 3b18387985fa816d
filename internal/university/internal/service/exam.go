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

	"github.com/fakultet-ssz/portal/internal/pkg/textx"
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidExamTime = errors.New("考试时间格式不正确")

type ExamService interface {
	ResourceService[domain.Exam]
	// Enter 当前登录的学生报名考试
	Enter(ctx context.Context, examId string) (domain.ExamRegistration, error)
	MyRegistrations(ctx context.Context) ([]domain.ExamRegistration, error)
	// FormOptions 并发加载课程和教授的下拉框
	FormOptions(ctx context.Context) (domain.ExamFormOptions, error)
}

type examService struct {
	resourceService[domain.Exam]
	regRepo repository.RegistrationRepository
	options repository.OptionRepository
}

func NewExamService(repo repository.ExamRepository,
	regRepo repository.RegistrationRepository,
	options repository.OptionRepository) ExamService {
	return &examService{
		resourceService: resourceService[domain.Exam]{repo: repo},
		regRepo:         regRepo,
		options:         options,
	}
}

func (s *examService) Save(ctx context.Context, e domain.Exam) (domain.Exam, error) {
	e.Id = strings.TrimSpace(e.Id)
	e.ExamTime = textx.NormalizeDateTime(e.ExamTime)
	if _, ok := textx.ParseDateTime(e.ExamTime); !ok {
		return domain.Exam{}, ErrInvalidExamTime
	}
	return s.save(ctx, e.Id, e)
}

func (s *examService) Enter(ctx context.Context, examId string) (domain.ExamRegistration, error) {
	examId = strings.TrimSpace(examId)
	if examId == "" {
		return domain.ExamRegistration{}, ErrMissingId
	}
	return s.regRepo.EnterExam(ctx, examId)
}

func (s *examService) MyRegistrations(ctx context.Context) ([]domain.ExamRegistration, error) {
	return s.regRepo.MyExamRegistrations(ctx)
}

func (s *examService) FormOptions(ctx context.Context) (domain.ExamFormOptions, error) {
	var res domain.ExamFormOptions
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		res.Courses, err = s.options.Options(ctx, domain.CourseOptions)
		return err
	})
	eg.Go(func() error {
		var err error
		res.Professors, err = s.options.Options(ctx, domain.ProfessorOptions)
		return err
	})
	return res, eg.Wait()
}
