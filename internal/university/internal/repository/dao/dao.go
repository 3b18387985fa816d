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

package dao

import (
	"context"

	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
)

const (
	StudentPath   = "/university/students"
	ProfessorPath = "/university/professors"
	CoursePath    = "/university/courses"
	ProgramPath   = "/university/programs"
	ExamPath      = "/university/exams"
)

// ResourceDAO 标准的增删改查，*backend.Resource 实现了这个接口
type ResourceDAO[T any] interface {
	List(ctx context.Context, q pagination.Query) (backend.Page[T], error)
	FindById(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id string, entity T) (T, error)
	Delete(ctx context.Context, id string) error
}

type (
	StudentDAO   ResourceDAO[Student]
	ProfessorDAO ResourceDAO[Professor]
	CourseDAO    ResourceDAO[Course]
	ProgramDAO   ResourceDAO[Program]
	ExamDAO      ResourceDAO[Exam]
)

func NewStudentDAO(client *backend.Client) StudentDAO {
	return backend.NewResource[Student](client, StudentPath, "students")
}

func NewProfessorDAO(client *backend.Client) ProfessorDAO {
	return backend.NewResource[Professor](client, ProfessorPath, "professors")
}

func NewCourseDAO(client *backend.Client) CourseDAO {
	return backend.NewResource[Course](client, CoursePath, "courses")
}

func NewProgramDAO(client *backend.Client) ProgramDAO {
	return backend.NewResource[Program](client, ProgramPath, "programs")
}

func NewExamDAO(client *backend.Client) ExamDAO {
	return backend.NewResource[Exam](client, ExamPath, "exams")
}
