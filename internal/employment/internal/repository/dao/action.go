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
	"net/url"

	"github.com/fakultet-ssz/portal/internal/pkg/backend"
)

// ActionDAO 增删改查之外的操作，当前用户由 token 决定
type ActionDAO interface {
	QuitJob(ctx context.Context) error
	Apply(ctx context.Context, jobId, email string) (JobApplication, error)
	JobCandidates(ctx context.Context, jobId string) ([]JobCandidate, error)
	ScheduleInterview(ctx context.Context, i Interview) (Interview, error)
	AcceptInterview(ctx context.Context, id string) error
	RejectInterview(ctx context.Context, id string) error
	Hire(ctx context.Context, candidateId, jobId string) error
}

type BackendActionDAO struct {
	client *backend.Client
}

func NewActionDAO(client *backend.Client) ActionDAO {
	return &BackendActionDAO{client: client}
}

func (dao *BackendActionDAO) QuitJob(ctx context.Context) error {
	return dao.client.Put(ctx, EmployeePath+"/quit/job", nil, nil)
}

func (dao *BackendActionDAO) Apply(ctx context.Context, jobId, email string) (JobApplication, error) {
	var res JobApplication
	err := dao.client.Post(ctx, JobPath+"/"+url.PathEscape(jobId)+"/"+url.PathEscape(email)+"/apply",
		ApplyReq{Email: email}, &res)
	return res, err
}

func (dao *BackendActionDAO) JobCandidates(ctx context.Context, jobId string) ([]JobCandidate, error) {
	var res []JobCandidate
	err := dao.client.Get(ctx, JobPath+"/"+url.PathEscape(jobId)+"/candidates", nil, &res)
	return res, err
}

func (dao *BackendActionDAO) ScheduleInterview(ctx context.Context, i Interview) (Interview, error) {
	var res Interview
	err := dao.client.Post(ctx, InterviewPath, i, &res)
	return res, err
}

func (dao *BackendActionDAO) AcceptInterview(ctx context.Context, id string) error {
	return dao.client.Patch(ctx, InterviewPath+"/"+url.PathEscape(id), nil, nil)
}

func (dao *BackendActionDAO) RejectInterview(ctx context.Context, id string) error {
	return dao.client.Delete(ctx, InterviewPath+"/"+url.PathEscape(id)+"/odbij", nil)
}

func (dao *BackendActionDAO) Hire(ctx context.Context, candidateId, jobId string) error {
	return dao.client.Patch(ctx, InterviewPath+"/"+url.PathEscape(candidateId)+"/zaposli/"+url.PathEscape(jobId), nil, nil)
}
