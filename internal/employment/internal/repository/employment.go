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
	"github.com/fakultet-ssz/portal/internal/employment/internal/domain"
	"github.com/fakultet-ssz/portal/internal/employment/internal/repository/dao"
)

type (
	CandidateRepository      ResourceRepository[domain.Candidate]
	EmployeeRepository       ResourceRepository[domain.Employee]
	JobRepository            ResourceRepository[domain.Job]
	JobApplicationRepository ResourceRepository[domain.JobApplication]
	InterviewRepository      ResourceRepository[domain.Interview]
)

func NewCandidateRepository(d dao.CandidateDAO) CandidateRepository {
	return newResourceRepository[dao.Candidate, domain.Candidate](d,
		func(src dao.Candidate) domain.Candidate {
			return domain.Candidate{
				Id:       src.Id,
				FullName: src.FullName,
				Email:    src.Email,
				Role:     src.Role,
				IndexNo:  deref(src.StudentId),
			}
		},
		func(src domain.Candidate) dao.Candidate {
			return dao.Candidate{
				Id:        src.Id,
				FullName:  src.FullName,
				Email:     src.Email,
				Password:  src.Password,
				Role:      src.Role,
				StudentId: ref(src.IndexNo),
			}
		})
}

func NewEmployeeRepository(d dao.EmployeeDAO) EmployeeRepository {
	return newResourceRepository[dao.Employee, domain.Employee](d,
		func(src dao.Employee) domain.Employee {
			return domain.Employee{
				Id:       src.Id,
				FullName: src.FullName,
				Email:    src.Email,
				Role:     src.Role,
				JobId:    deref(src.JobId),
				IndexNo:  deref(src.IndexNo),
			}
		},
		func(src domain.Employee) dao.Employee {
			return dao.Employee{
				Id:       src.Id,
				FullName: src.FullName,
				Email:    src.Email,
				Password: src.Password,
				Role:     src.Role,
				JobId:    ref(src.JobId),
				IndexNo:  ref(src.IndexNo),
			}
		})
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return newResourceRepository[dao.Job, domain.Job](d,
		func(src dao.Job) domain.Job {
			return domain.Job{
				Id:              src.Id,
				EmployerId:      src.EmployerId,
				Title:           src.Title,
				Description:     src.Description,
				Location:        src.Location,
				RequiredFaculty: deref(src.RequiredFaculty),
			}
		},
		func(src domain.Job) dao.Job {
			return dao.Job{
				Id:              src.Id,
				EmployerId:      src.EmployerId,
				Title:           src.Title,
				Description:     src.Description,
				Location:        src.Location,
				RequiredFaculty: &src.RequiredFaculty,
			}
		})
}

func NewJobApplicationRepository(d dao.JobApplicationDAO) JobApplicationRepository {
	return newResourceRepository[dao.JobApplication, domain.JobApplication](d,
		jobApplicationToDomain,
		func(src domain.JobApplication) dao.JobApplication {
			return dao.JobApplication{
				Id:          src.Id,
				JobId:       src.JobId,
				CandidateId: src.CandidateId,
			}
		})
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return newResourceRepository[dao.Interview, domain.Interview](d, interviewToDomain, interviewToEntity)
}

func jobApplicationToDomain(src dao.JobApplication) domain.JobApplication {
	return domain.JobApplication{
		Id:          src.Id,
		JobId:       src.JobId,
		CandidateId: src.CandidateId,
	}
}

func interviewToDomain(src dao.Interview) domain.Interview {
	return domain.Interview{
		Id:               src.Id,
		JobApplicationId: src.JobApplicationId,
		CandidateId:      src.CandidateId,
		JobId:            src.JobId,
		DateTime:         src.DateTime,
		Type:             domain.InterviewType(src.Type),
		Location:         src.Location,
	}
}

func interviewToEntity(src domain.Interview) dao.Interview {
	return dao.Interview{
		Id:               src.Id,
		JobApplicationId: src.JobApplicationId,
		CandidateId:      src.CandidateId,
		JobId:            src.JobId,
		DateTime:         src.DateTime,
		Type:             string(src.Type),
		Location:         src.Location,
	}
}
