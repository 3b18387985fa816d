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

// 以下结构体和就业服务的 JSON 一一对应

type Candidate struct {
	Id        string  `json:"id,omitempty"`
	FullName  string  `json:"fullname"`
	Email     string  `json:"email"`
	Password  string  `json:"password,omitempty"`
	Role      string  `json:"role"`
	StudentId *string `json:"studentid,omitempty"`
}

type Employee struct {
	Id       string  `json:"id,omitempty"`
	FullName string  `json:"fullname"`
	Email    string  `json:"email"`
	Password string  `json:"password,omitempty"`
	Role     string  `json:"role"`
	JobId    *string `json:"jobid,omitempty"`
	IndexNo  *string `json:"indexno,omitempty"`
}

type Professor struct {
	Id       string `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

type Job struct {
	Id              string `json:"id,omitempty"`
	EmployerId      string `json:"employerid,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	RequiredFaculty *bool  `json:"requiredfaculty,omitempty"`
}

type JobApplication struct {
	Id          string `json:"id,omitempty"`
	JobId       string `json:"jobid"`
	CandidateId string `json:"candidateid"`
}

type JobCandidate struct {
	Id       string   `json:"id"`
	FullName string   `json:"fullname"`
	Email    string   `json:"email"`
	IndexNo  *string  `json:"indexno"`
	AvgGrade *float64 `json:"avggrade"`
}

type Interview struct {
	Id               string `json:"id,omitempty"`
	JobApplicationId string `json:"jobapplicationid"`
	CandidateId      string `json:"candidateid"`
	JobId            string `json:"jobid"`
	DateTime         string `json:"datetime"`
	Type             string `json:"type"`
	Location         string `json:"location"`
}

type ApplyReq struct {
	Email string `json:"email"`
}
