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
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/dao"
)

type (
	StudentRepository   ResourceRepository[domain.Student]
	ProfessorRepository ResourceRepository[domain.Professor]
	CourseRepository    ResourceRepository[domain.Course]
	ProgramRepository   ResourceRepository[domain.Program]
	ExamRepository      ResourceRepository[domain.Exam]
)

func NewStudentRepository(d dao.StudentDAO) StudentRepository {
	return newResourceRepository[dao.Student, domain.Student](d,
		func(src dao.Student) domain.Student {
			return domain.Student{
				Id:        src.Id,
				FullName:  src.FullName,
				Email:     src.Email,
				Role:      src.Role,
				Status:    domain.StudentStatus(src.Status),
				IndexNo:   src.IndexNo,
				ProgramId: src.SingletonId,
				Employed:  src.Employed,
			}
		},
		func(src domain.Student) dao.Student {
			return dao.Student{
				Id:          src.Id,
				FullName:    src.FullName,
				Email:       src.Email,
				Password:    src.Password,
				Role:        src.Role,
				Status:      string(src.Status),
				IndexNo:     src.IndexNo,
				SingletonId: src.ProgramId,
				Employed:    src.Employed,
			}
		})
}

func NewProfessorRepository(d dao.ProfessorDAO) ProfessorRepository {
	return newResourceRepository[dao.Professor, domain.Professor](d,
		func(src dao.Professor) domain.Professor {
			return domain.Professor{
				Id:       src.Id,
				FullName: src.FullName,
				Email:    src.Email,
				Role:     src.Role,
			}
		},
		func(src domain.Professor) dao.Professor {
			return dao.Professor{
				Id:       src.Id,
				FullName: src.FullName,
				Email:    src.Email,
				Password: src.Password,
				Role:     src.Role,
			}
		})
}

func NewCourseRepository(d dao.CourseDAO) CourseRepository {
	return newResourceRepository[dao.Course, domain.Course](d, courseToDomain, courseToEntity)
}

func NewProgramRepository(d dao.ProgramDAO) ProgramRepository {
	return newResourceRepository[dao.Program, domain.Program](d,
		func(src dao.Program) domain.Program {
			courses := make([]domain.Course, 0, len(src.Courses))
			for _, c := range src.Courses {
				courses = append(courses, courseToDomain(c))
			}
			return domain.Program{
				Id:      src.Id,
				Name:    src.Name,
				Ects:    src.Ects,
				Courses: courses,
			}
		},
		func(src domain.Program) dao.Program {
			courses := make([]dao.Course, 0, len(src.Courses))
			for _, c := range src.Courses {
				courses = append(courses, courseToEntity(c))
			}
			return dao.Program{
				Id:      src.Id,
				Name:    src.Name,
				Ects:    src.Ects,
				Courses: courses,
			}
		})
}

func NewExamRepository(d dao.ExamDAO) ExamRepository {
	return newResourceRepository[dao.Exam, domain.Exam](d,
		func(src dao.Exam) domain.Exam {
			return domain.Exam{
				Id:          src.Id,
				ExamTime:    src.ExamTime,
				CourseId:    src.CourseId,
				ProfessorId: src.ProfessorId,
			}
		},
		func(src domain.Exam) dao.Exam {
			return dao.Exam{
				Id:          src.Id,
				ExamTime:    src.ExamTime,
				CourseId:    src.CourseId,
				ProfessorId: src.ProfessorId,
			}
		})
}

func courseToDomain(src dao.Course) domain.Course {
	return domain.Course{
		Id:     src.Id,
		Code:   src.Code,
		Name:   src.Name,
		Ects:   src.Ects,
		Active: src.Active,
	}
}

func courseToEntity(src domain.Course) dao.Course {
	return dao.Course{
		Id:     src.Id,
		Code:   src.Code,
		Name:   src.Name,
		Ects:   src.Ects,
		Active: src.Active,
	}
}
