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

	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository"
	"github.com/go-playground/validator/v10"
)

var ErrInvalidGrade = errors.New("分数必须在 5 到 10 之间")

type ExamRegistrationService interface {
	// List 某场考试的所有报名
	List(ctx context.Context, examId string) ([]domain.ExamRegistration, error)
	Grade(ctx context.Context, g domain.Grade) (domain.ExamRegistration, error)
}

type examRegistrationService struct {
	repo     repository.RegistrationRepository
	validate *validator.Validate
}

func NewExamRegistrationService(repo repository.RegistrationRepository) ExamRegistrationService {
	return &examRegistrationService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *examRegistrationService) List(ctx context.Context, examId string) ([]domain.ExamRegistration, error) {
	examId = strings.TrimSpace(examId)
	if examId == "" {
		return nil, ErrMissingId
	}
	return s.repo.ExamRegistrations(ctx, examId)
}

func (s *examRegistrationService) Grade(ctx context.Context, g domain.Grade) (domain.ExamRegistration, error) {
	g.ExamId = strings.TrimSpace(g.ExamId)
	g.StudentId = strings.TrimSpace(g.StudentId)
	if err := s.validate.Struct(g); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Field() == "Value" {
			return domain.ExamRegistration{}, ErrInvalidGrade
		}
		return domain.ExamRegistration{}, ErrMissingId
	}
	return s.repo.Grade(ctx, g)
}
