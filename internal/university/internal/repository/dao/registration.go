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

// RegistrationDAO 课程和考试的报名，学生身份由 token 决定
type RegistrationDAO interface {
	JoinCourse(ctx context.Context, courseId string) (CourseRegistration, error)
	MyCourseRegistrations(ctx context.Context) ([]CourseRegistration, error)
	EnterExam(ctx context.Context, examId string) (ExamRegistration, error)
	MyExamRegistrations(ctx context.Context) ([]ExamRegistration, error)
	// ExamRegistrations 某场考试的所有报名，只有教授可以看
	ExamRegistrations(ctx context.Context, examId string) ([]ExamRegistration, error)
	Grade(ctx context.Context, examId string, req GradeReq) (ExamRegistration, error)
}

type BackendRegistrationDAO struct {
	client *backend.Client
}

func NewRegistrationDAO(client *backend.Client) RegistrationDAO {
	return &BackendRegistrationDAO{client: client}
}

func (dao *BackendRegistrationDAO) JoinCourse(ctx context.Context, courseId string) (CourseRegistration, error) {
	var res CourseRegistration
	err := dao.client.Post(ctx, CoursePath+"/"+url.PathEscape(courseId)+"/register", nil, &res)
	return res, err
}

func (dao *BackendRegistrationDAO) MyCourseRegistrations(ctx context.Context) ([]CourseRegistration, error) {
	var res []CourseRegistration
	err := dao.client.Get(ctx, CoursePath+"/my-registrations", nil, &res)
	return res, err
}

func (dao *BackendRegistrationDAO) EnterExam(ctx context.Context, examId string) (ExamRegistration, error) {
	var res ExamRegistration
	err := dao.client.Post(ctx, ExamPath+"/"+url.PathEscape(examId)+"/register", nil, &res)
	return res, err
}

func (dao *BackendRegistrationDAO) MyExamRegistrations(ctx context.Context) ([]ExamRegistration, error) {
	var res []ExamRegistration
	err := dao.client.Get(ctx, ExamPath+"/my-registrations", nil, &res)
	return res, err
}

func (dao *BackendRegistrationDAO) ExamRegistrations(ctx context.Context, examId string) ([]ExamRegistration, error) {
	var res []ExamRegistration
	err := dao.client.Get(ctx, ExamPath+"/"+url.PathEscape(examId)+"/examregistrations", nil, &res)
	return res, err
}

func (dao *BackendRegistrationDAO) Grade(ctx context.Context, examId string, req GradeReq) (ExamRegistration, error) {
	var res ExamRegistration
	err := dao.client.Put(ctx, ExamPath+"/"+url.PathEscape(examId)+"/grade", req, &res)
	return res, err
}
