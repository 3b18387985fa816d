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

package web

import (
	"strconv"

	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/fakultet-ssz/portal/internal/pkg/textx"
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
)

const notGraded = "NIJE OCJENJEN"

type ListReq struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
}

func (r ListReq) Query() pagination.Query {
	return pagination.Query{Page: r.Page, Limit: r.Limit, Search: r.Search}.Normalize()
}

type IdReq struct {
	Id string `json:"id"`
}

type ExamIdReq struct {
	ExamId string `json:"examId"`
}

type GradeReq struct {
	ExamId    string `json:"examId"`
	StudentId string `json:"studentId"`
	Grade     int    `json:"grade"`
}

type Student struct {
	Id        string `json:"id,omitempty"`
	FullName  string `json:"fullname"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Role      string `json:"role,omitempty"`
	Status    string `json:"status,omitempty"`
	IndexNo   string `json:"indexno"`
	ProgramId string `json:"programId,omitempty"`
	Employed  bool   `json:"employed"`
}

func newStudent(s domain.Student) Student {
	return Student{
		Id:        s.Id,
		FullName:  s.FullName,
		Email:     s.Email,
		Role:      s.Role,
		Status:    string(s.Status),
		IndexNo:   s.IndexNo,
		ProgramId: s.ProgramId,
		Employed:  s.Employed,
	}
}

func (s Student) toDomain() domain.Student {
	return domain.Student{
		Id:        s.Id,
		FullName:  s.FullName,
		Email:     s.Email,
		Password:  s.Password,
		Role:      s.Role,
		Status:    domain.StudentStatus(s.Status),
		IndexNo:   s.IndexNo,
		ProgramId: s.ProgramId,
		Employed:  s.Employed,
	}
}

type StudentRow struct {
	Id       string `json:"id"`
	IndexNo  string `json:"indexno"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	// Employed DA 或者 NE
	Employed string `json:"employed"`
	Status   string `json:"status"`
}

func newStudentRow(s domain.Student) StudentRow {
	return StudentRow{
		Id:       s.Id,
		IndexNo:  s.IndexNo,
		FullName: s.FullName,
		Email:    s.Email,
		Employed: textx.UpperYesNo.Of(s.Employed),
		Status:   string(s.Status),
	}
}

type Professor struct {
	Id       string `json:"id,omitempty"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

func newProfessor(p domain.Professor) Professor {
	return Professor{
		Id:       p.Id,
		FullName: p.FullName,
		Email:    p.Email,
		Role:     p.Role,
	}
}

func (p Professor) toDomain() domain.Professor {
	return domain.Professor{
		Id:       p.Id,
		FullName: p.FullName,
		Email:    p.Email,
		Password: p.Password,
		Role:     p.Role,
	}
}

type Course struct {
	Id     string `json:"id,omitempty"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Ects   string `json:"ects"`
	Active bool   `json:"active"`
}

func newCourse(c domain.Course) Course {
	return Course{
		Id:     c.Id,
		Code:   c.Code,
		Name:   c.Name,
		Ects:   c.Ects,
		Active: c.Active,
	}
}

func (c Course) toDomain() domain.Course {
	return domain.Course{
		Id:     c.Id,
		Code:   c.Code,
		Name:   c.Name,
		Ects:   c.Ects,
		Active: c.Active,
	}
}

type Program struct {
	Id      string   `json:"id,omitempty"`
	Name    string   `json:"name"`
	Ects    string   `json:"ects"`
	Courses []Course `json:"courses"`
}

func newProgram(p domain.Program) Program {
	courses := make([]Course, 0, len(p.Courses))
	for _, c := range p.Courses {
		courses = append(courses, newCourse(c))
	}
	return Program{
		Id:      p.Id,
		Name:    p.Name,
		Ects:    p.Ects,
		Courses: courses,
	}
}

func (p Program) toDomain() domain.Program {
	courses := make([]domain.Course, 0, len(p.Courses))
	for _, c := range p.Courses {
		courses = append(courses, c.toDomain())
	}
	return domain.Program{
		Id:      p.Id,
		Name:    p.Name,
		Ects:    p.Ects,
		Courses: courses,
	}
}

type Exam struct {
	Id          string `json:"id,omitempty"`
	ExamTime    string `json:"examtime"`
	CourseId    string `json:"courseid"`
	ProfessorId string `json:"professorid"`
}

func newExam(e domain.Exam) Exam {
	return Exam{
		Id:          e.Id,
		ExamTime:    e.ExamTime,
		CourseId:    e.CourseId,
		ProfessorId: e.ProfessorId,
	}
}

func (e Exam) toDomain() domain.Exam {
	return domain.Exam{
		Id:          e.Id,
		ExamTime:    e.ExamTime,
		CourseId:    e.CourseId,
		ProfessorId: e.ProfessorId,
	}
}

type ExamRow struct {
	Id string `json:"id"`
	// ExamTime 已经格式化好的时间
	ExamTime    string `json:"examtime"`
	CourseId    string `json:"courseid"`
	ProfessorId string `json:"professorid"`
}

func newExamRow(e domain.Exam) ExamRow {
	return ExamRow{
		Id:          e.Id,
		ExamTime:    textx.FormatDateTime(e.ExamTime),
		CourseId:    e.CourseId,
		ProfessorId: e.ProfessorId,
	}
}

type CourseRegistration struct {
	Id        string `json:"id"`
	CourseId  string `json:"courseid"`
	StudentId string `json:"studentid"`
	CreatedAt string `json:"createdat"`
	Passed    bool   `json:"passed"`
}

func newCourseRegistration(r domain.CourseRegistration) CourseRegistration {
	return CourseRegistration{
		Id:        r.Id,
		CourseId:  r.CourseId,
		StudentId: r.StudentId,
		CreatedAt: textx.FormatDateTime(r.CreatedAt),
		Passed:    r.Passed,
	}
}

type ExamRegistrationRow struct {
	Id        string `json:"id"`
	ExamId    string `json:"examid"`
	StudentId string `json:"studentid"`
	// Grade 没有打分时是 NIJE OCJENJEN
	Grade  string `json:"grade"`
	Graded bool   `json:"graded"`
}

func newExamRegistrationRow(r domain.ExamRegistration) ExamRegistrationRow {
	grade := notGraded
	if r.Graded() {
		grade = strconv.Itoa(*r.Grade)
	}
	return ExamRegistrationRow{
		Id:        r.Id,
		ExamId:    r.ExamId,
		StudentId: r.StudentId,
		Grade:     grade,
		Graded:    r.Graded(),
	}
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func newOption(o domain.Option) Option {
	return Option{Value: o.Value, Label: o.Label}
}

type ExamFormOptions struct {
	Courses    []Option `json:"courses"`
	Professors []Option `json:"professors"`
}
