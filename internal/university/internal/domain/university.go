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

package domain

type StudentStatus string

const (
	StudentActive    StudentStatus = "ACTIVE"
	StudentGraduated StudentStatus = "GRADUATED"
	StudentSuspended StudentStatus = "SUSPENDED"
)

type Student struct {
	Id       string
	FullName string
	Email    string
	Password string
	Role     string
	Status   StudentStatus
	IndexNo  string
	// ProgramId 学生所在的专业
	ProgramId string
	Employed  bool
}

type Professor struct {
	Id       string
	FullName string
	Email    string
	Password string
	Role     string
}

type Course struct {
	Id     string
	Code   string
	Name   string
	Ects   string
	Active bool
}

type Program struct {
	Id      string
	Name    string
	Ects    string
	Courses []Course
}

type Exam struct {
	Id string
	// ExamTime RFC3339
	ExamTime    string
	CourseId    string
	ProfessorId string
}

type CourseRegistration struct {
	Id        string
	CourseId  string
	StudentId string
	CreatedAt string
	Passed    bool
}

type ExamRegistration struct {
	Id        string
	ExamId    string
	StudentId string
	CreatedAt string
	// Grade 没有打分的时候是 nil
	Grade  *int
	Passed bool
}

func (r ExamRegistration) Graded() bool {
	return r.Grade != nil
}

// Grade 教授给学生打分
type Grade struct {
	ExamId    string `validate:"required"`
	StudentId string `validate:"required"`
	Value     int    `validate:"gte=5,lte=10"`
}
