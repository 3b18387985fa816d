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

type CourseService interface {
	ResourceService[domain.Course]
	// Join 当前登录的学生报名课程
	Join(ctx context.Context, courseId string) (domain.CourseRegistration, error)
	MyRegistrations(ctx context.Context) ([]domain.CourseRegistration, error)
}

type courseService struct {
	resourceService[domain.Course]
	regRepo repository.RegistrationRepository
	options repository.OptionRepository
}

func NewCourseService(repo repository.CourseRepository,
	regRepo repository.RegistrationRepository,
	options repository.OptionRepository) CourseService {
	return &courseService{
		resourceService: resourceService[domain.Course]{repo: repo},
		regRepo:         regRepo,
		options:         options,
	}
}

func (s *courseService) Save(ctx context.Context, c domain.Course) (domain.Course, error) {
	c.Id = strings.TrimSpace(c.Id)
	c.Code = strings.TrimSpace(c.Code)
	c.Name = strings.TrimSpace(c.Name)
	res, err := s.save(ctx, c.Id, c)
	if err == nil {
		s.options.Invalidate(ctx, domain.CourseOptions)
	}
	return res, err
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	err := s.resourceService.Delete(ctx, id)
	if err == nil {
		s.options.Invalidate(ctx, domain.CourseOptions)
	}
	return err
}

func (s *courseService) Join(ctx context.Context, courseId string) (domain.CourseRegistration, error) {
	courseId = strings.TrimSpace(courseId)
	if courseId == "" {
		return domain.CourseRegistration{}, ErrMissingId
	}
	return s.regRepo.JoinCourse(ctx, courseId)
}

func (s *courseService) MyRegistrations(ctx context.Context) ([]domain.CourseRegistration, error) {
	return s.regRepo.MyCourseRegistrations(ctx)
}
