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

// 以下结构体和大学服务的 JSON 一一对应

type Student struct {
	Id          string `json:"id,omitempty"`
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	Role        string `json:"role"`
	Status      string `json:"status"`
	IndexNo     string `json:"indexno"`
	SingletonId string `json:"singletonid,omitempty"`
	Employed    bool   `json:"employed"`
}

type Professor struct {
	Id       string `json:"id,omitempty"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

type Course struct {
	Id     string `json:"id,omitempty"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Ects   string `json:"ects"`
	Active bool   `json:"active"`
}

type Program struct {
	Id      string   `json:"id,omitempty"`
	Name    string   `json:"name"`
	Ects    string   `json:"ects"`
	Courses []Course `json:"courses"`
}

type Exam struct {
	Id          string `json:"id,omitempty"`
	ExamTime    string `json:"examtime"`
	CourseId    string `json:"courseid"`
	ProfessorId string `json:"professorid"`
}

type CourseRegistration struct {
	Id        string `json:"id"`
	CourseId  string `json:"courseid"`
	StudentId string `json:"studentid"`
	CreatedAt string `json:"createdat"`
	Passed    bool   `json:"passed"`
}

type ExamRegistration struct {
	Id        string `json:"id"`
	ExamId    string `json:"examid"`
	StudentId string `json:"studentid"`
	CreatedAt string `json:"createdat"`
	Grade     *int   `json:"grade,omitempty"`
	Passed    bool   `json:"passed"`
}

type GradeReq struct {
	StudentId string `json:"studentid"`
	Grade     int    `json:"grade"`
}
