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

type Candidate struct {
	Id       string
	FullName string
	Email    string
	Password string
	Role     string
	// IndexNo 学生的学号，不是学生时为空
	IndexNo string
}

type Employee struct {
	Id       string
	FullName string
	Email    string
	Password string
	Role     string
	JobId    string
	// IndexNo 不为空说明在学院读过书
	IndexNo string
}

func (e Employee) HasFaculty() bool {
	return e.IndexNo != ""
}

// Professor 学院的教授，就业服务只读
type Professor struct {
	Id       string
	FullName string
	Email    string
}

type Job struct {
	Id          string
	EmployerId  string
	Title       string
	Description string
	Location    string
	// RequiredFaculty 申请之前需要学院确认已经毕业
	RequiredFaculty bool
}

type JobApplication struct {
	Id          string
	JobId       string
	CandidateId string
}

// ApplyResult 申请需要验证学历的职位时 VerificationPending 为 true
type ApplyResult struct {
	Application         JobApplication
	VerificationPending bool
}

// JobCandidate 职位候选人排名
type JobCandidate struct {
	Id       string
	FullName string
	Email    string
	IndexNo  string
	AvgGrade *float64
}

type InterviewType string

const (
	InterviewOnline   InterviewType = "ONLINE"
	InterviewInPerson InterviewType = "IN_PERSON"
)

func (t InterviewType) Valid() bool {
	return t == InterviewOnline || t == InterviewInPerson
}

type Interview struct {
	Id               string
	JobApplicationId string
	CandidateId      string
	JobId            string
	// DateTime RFC3339
	DateTime string
	Type     InterviewType
	Location string
}

// Hire 录用某个候选人
type Hire struct {
	CandidateId string
	JobId       string
}
