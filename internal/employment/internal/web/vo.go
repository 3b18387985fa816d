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

	"github.com/fakultet-ssz/portal/internal/employment/internal/domain"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/fakultet-ssz/portal/internal/pkg/textx"
)

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

// InterviewActionReq 面试的操作会带上当前页，方便重新查询
type InterviewActionReq struct {
	Id string `json:"id"`
	ListReq
}

type HireReq struct {
	CandidateId string `json:"candidateId"`
	JobId       string `json:"jobId"`
	ListReq
}

type ScheduleReq struct {
	JobApplicationId string `json:"jobApplicationId"`
	CandidateId      string `json:"candidateId"`
	JobId            string `json:"jobId"`
	DateTime         string `json:"datetime"`
	Type             string `json:"type"`
	Location         string `json:"location"`
}

type Redirect struct {
	Redirect string `json:"redirect"`
}

type Candidate struct {
	Id       string `json:"id,omitempty"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	IndexNo  string `json:"indexno"`
}

func newCandidate(c domain.Candidate) Candidate {
	return Candidate{
		Id:       c.Id,
		FullName: c.FullName,
		Email:    c.Email,
		Role:     c.Role,
		IndexNo:  c.IndexNo,
	}
}

func (c Candidate) toDomain() domain.Candidate {
	return domain.Candidate{
		Id:       c.Id,
		FullName: c.FullName,
		Email:    c.Email,
		Password: c.Password,
		Role:     c.Role,
		IndexNo:  c.IndexNo,
	}
}

type CandidateRow struct {
	Id       string `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Index    string `json:"index"`
}

func newCandidateRow(c domain.Candidate) CandidateRow {
	return CandidateRow{
		Id:       c.Id,
		FullName: c.FullName,
		Email:    c.Email,
		Index:    textx.OrDash(c.IndexNo),
	}
}

type Employee struct {
	Id       string `json:"id,omitempty"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	JobId    string `json:"jobid,omitempty"`
	IndexNo  string `json:"indexno,omitempty"`
}

func newEmployee(e domain.Employee) Employee {
	return Employee{
		Id:       e.Id,
		FullName: e.FullName,
		Email:    e.Email,
		Role:     e.Role,
		JobId:    e.JobId,
		IndexNo:  e.IndexNo,
	}
}

func (e Employee) toDomain() domain.Employee {
	return domain.Employee{
		Id:       e.Id,
		FullName: e.FullName,
		Email:    e.Email,
		Password: e.Password,
		Role:     e.Role,
		JobId:    e.JobId,
		IndexNo:  e.IndexNo,
	}
}

type EmployeeRow struct {
	Id       string `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	// Faculty Ima 或者 Nema
	Faculty string `json:"faculty"`
}

func newEmployeeRow(e domain.Employee) EmployeeRow {
	return EmployeeRow{
		Id:       e.Id,
		FullName: e.FullName,
		Email:    e.Email,
		Faculty:  textx.HasHasNot.Of(e.HasFaculty()),
	}
}

type Professor struct {
	Id       string `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

func newProfessor(p domain.Professor) Professor {
	return Professor{Id: p.Id, FullName: p.FullName, Email: p.Email}
}

type Job struct {
	Id              string `json:"id,omitempty"`
	EmployerId      string `json:"employerid,omitempty"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	RequiredFaculty bool   `json:"requiredfaculty"`
}

func newJob(j domain.Job) Job {
	return Job{
		Id:              j.Id,
		EmployerId:      j.EmployerId,
		Title:           j.Title,
		Description:     j.Description,
		Location:        j.Location,
		RequiredFaculty: j.RequiredFaculty,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		Id:              j.Id,
		EmployerId:      j.EmployerId,
		Title:           j.Title,
		Description:     j.Description,
		Location:        j.Location,
		RequiredFaculty: j.RequiredFaculty,
	}
}

type JobRow struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	// RequiredFaculty Da 或者 Ne
	RequiredFaculty string `json:"requiredFaculty"`
	// NeedsVerification 前端申请之前提示需要等待学历验证
	NeedsVerification bool `json:"needsVerification"`
}

func newJobRow(j domain.Job) JobRow {
	return JobRow{
		Id:                j.Id,
		Title:             j.Title,
		Description:       textx.Summary(j.Description),
		Location:          j.Location,
		RequiredFaculty:   textx.TitleYesNo.Of(j.RequiredFaculty),
		NeedsVerification: j.RequiredFaculty,
	}
}

type ApplyResult struct {
	Application         JobApplication `json:"application"`
	VerificationPending bool           `json:"verificationPending"`
	// Notice 需要等待学历验证时的提示
	Notice string `json:"notice,omitempty"`
}

type JobCandidateRow struct {
	Rank     int    `json:"rank"`
	Id       string `json:"id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Index    string `json:"index"`
	AvgGrade string `json:"avgGrade"`
}

func newJobCandidateRow(rank int, c domain.JobCandidate) JobCandidateRow {
	avg := "-"
	if c.AvgGrade != nil {
		avg = strconv.FormatFloat(*c.AvgGrade, 'f', 2, 64)
	}
	return JobCandidateRow{
		Rank:     rank,
		Id:       c.Id,
		FullName: c.FullName,
		Email:    c.Email,
		Index:    textx.OrDash(c.IndexNo),
		AvgGrade: avg,
	}
}

type JobApplication struct {
	Id          string `json:"id"`
	JobId       string `json:"jobid"`
	CandidateId string `json:"candidateid"`
}

func newJobApplication(a domain.JobApplication) JobApplication {
	return JobApplication{Id: a.Id, JobId: a.JobId, CandidateId: a.CandidateId}
}

type Interview struct {
	Id               string `json:"id"`
	JobApplicationId string `json:"jobapplicationid"`
	CandidateId      string `json:"candidateid"`
	JobId            string `json:"jobid"`
	// DateTime 已经格式化好的时间
	DateTime string `json:"datetime"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

func newInterview(i domain.Interview) Interview {
	return Interview{
		Id:               i.Id,
		JobApplicationId: i.JobApplicationId,
		CandidateId:      i.CandidateId,
		JobId:            i.JobId,
		DateTime:         textx.FormatDateTime(i.DateTime),
		Type:             string(i.Type),
		Location:         i.Location,
	}
}
