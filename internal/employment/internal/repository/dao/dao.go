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
	CandidatePath      = "/employmentOffice/candidates"
	EmployeePath       = "/employmentOffice/employees"
	JobPath            = "/employmentOffice/jobs"
	JobApplicationPath = "/employmentOffice/jobapplications"
	InterviewPath      = "/employmentOffice/interviews"
	// ProfessorPath 就业服务转发的学院教授列表
	ProfessorPath = EmployeePath + "/professors/all"
)

type ResourceDAO[T any] interface {
	List(ctx context.Context, q pagination.Query) (backend.Page[T], error)
	FindById(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id string, entity T) (T, error)
	Delete(ctx context.Context, id string) error
}

// ListDAO 只读的列表
type ListDAO[T any] interface {
	List(ctx context.Context, q pagination.Query) (backend.Page[T], error)
}

type (
	CandidateDAO      ResourceDAO[Candidate]
	EmployeeDAO       ResourceDAO[Employee]
	JobDAO            ResourceDAO[Job]
	JobApplicationDAO ResourceDAO[JobApplication]
	InterviewDAO      ResourceDAO[Interview]
	ProfessorDAO      ListDAO[Professor]
)

func NewCandidateDAO(client *backend.Client) CandidateDAO {
	return backend.NewResource[Candidate](client, CandidatePath, "candidates")
}

func NewEmployeeDAO(client *backend.Client) EmployeeDAO {
	return backend.NewResource[Employee](client, EmployeePath, "employees")
}

func NewJobDAO(client *backend.Client) JobDAO {
	return backend.NewResource[Job](client, JobPath, "jobs")
}

func NewJobApplicationDAO(client *backend.Client) JobApplicationDAO {
	return backend.NewResource[JobApplication](client, JobApplicationPath, "jobapplications")
}

func NewInterviewDAO(client *backend.Client) InterviewDAO {
	return backend.NewResource[Interview](client, InterviewPath, "interviews")
}

func NewProfessorDAO(client *backend.Client) ProfessorDAO {
	return backend.NewResource[Professor](client, ProfessorPath, "professors")
}
