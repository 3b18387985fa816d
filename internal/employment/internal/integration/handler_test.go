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

package integration

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/fakultet-ssz/portal/internal/employment/internal/errs"
	"github.com/fakultet-ssz/portal/internal/employment/internal/repository"
	"github.com/fakultet-ssz/portal/internal/employment/internal/repository/dao"
	"github.com/fakultet-ssz/portal/internal/employment/internal/service"
	"github.com/fakultet-ssz/portal/internal/employment/internal/web"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/pkg/middleware"
	"github.com/fakultet-ssz/portal/internal/pkg/profile"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/fakultet-ssz/portal/internal/pkg/table"
	"github.com/fakultet-ssz/portal/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roleHead = "X-Test-Role"
	email    = "kandidat@gmail.com"
)

type HandlerTestSuite struct {
	suite.Suite
	server  *egin.Component
	backend *httptest.Server
	fake    *fakeEmploymentOffice
}

func (s *HandlerTestSuite) SetupTest() {
	s.fake = newFakeEmploymentOffice()
	s.backend = httptest.NewServer(s.fake.Handler())
	client := backend.NewClient("employmentOffice", backend.Config{Addr: s.backend.URL, Timeout: time.Second})

	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		role := ctx.GetHeader(roleHead)
		if role == "" {
			return
		}
		ctx.Set(test.SessionKey, test.NewSession(test.Claims(456, role,
			profile.KeyEmail, email,
		), map[string]any{profile.KeyToken: backendToken}))
	})
	server.Use(middleware.NewBackendTokenBuilder().Build())
	hdl := initHandler(client)
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	s.backend.Close()
}

func initHandler(client *backend.Client) *web.Handler {
	actions := repository.NewActionRepository(dao.NewActionDAO(client), dao.NewProfessorDAO(client))
	return web.NewHandler(
		web.NewCandidateHandler(service.NewCandidateService(
			repository.NewCandidateRepository(dao.NewCandidateDAO(client)))),
		web.NewEmployeeHandler(service.NewEmployeeService(
			repository.NewEmployeeRepository(dao.NewEmployeeDAO(client)), actions)),
		web.NewJobHandler(service.NewJobService(
			repository.NewJobRepository(dao.NewJobDAO(client)), actions)),
		web.NewJobApplicationHandler(service.NewJobApplicationService(
			repository.NewJobApplicationRepository(dao.NewJobApplicationDAO(client)), actions)),
		web.NewInterviewHandler(service.NewInterviewService(
			repository.NewInterviewRepository(dao.NewInterviewDAO(client)), actions)),
	)
}

func (s *HandlerTestSuite) newRequest(path, role string, body any) *http.Request {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(roleHead, role)
	}
	return req
}

func (s *HandlerTestSuite) TestRoleGate() {
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/jobs/list", roles.Student, web.ListReq{}))
	assert.Equal(s.T(), http.StatusForbidden, recorder.Code)
}

func (s *HandlerTestSuite) TestEmployeeList() {
	indexNo := "RA-1/2020"
	s.fake.employees = []dao.Employee{
		{Id: "emp-1", FullName: "Ana Anić", Email: "ana@firma.rs", IndexNo: &indexNo},
		{Id: "emp-2", FullName: "Jovan Jović", Email: "jovan@firma.rs"},
	}
	testCases := []struct {
		name        string
		path        string
		role        string
		wantEmpty   string
		wantActions table.Actions
	}{
		{
			name:        "就业服务管理员",
			path:        "/employment/employees/list",
			role:        roles.SSZAdmin,
			wantEmpty:   "Nema zaposlenih",
			wantActions: table.Actions{CanCreate: true, CanEdit: true, CanDelete: true},
		},
		{
			name:        "员工不能编辑",
			path:        "/employment/employees/list",
			role:        roles.Employee,
			wantEmpty:   "Nema zaposlenih",
			wantActions: table.Actions{CanCreate: true},
		},
		{
			name:      "同事",
			path:      "/employment/employees/colleagues",
			role:      roles.Employee,
			wantEmpty: "Nema kolega",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := test.NewJSONResponseRecorder[table.Table[web.EmployeeRow]]()
			s.server.ServeHTTP(recorder, s.newRequest(tc.path, tc.role, web.ListReq{}))
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan().Data
			assert.Equal(t, []web.EmployeeRow{
				{Id: "emp-1", FullName: "Ana Anić", Email: "ana@firma.rs", Faculty: "Ima"},
				{Id: "emp-2", FullName: "Jovan Jović", Email: "jovan@firma.rs", Faculty: "Nema"},
			}, res.Rows)
			assert.Equal(t, tc.wantEmpty, res.EmptyMessage)
			assert.Equal(t, tc.wantActions, res.Actions)
		})
	}
}

func (s *HandlerTestSuite) TestQuitJob() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[web.Redirect]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/employees/quit", roles.Employee, nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, web.Redirect{Redirect: roles.LoginPage}, res.Data)
	assert.Equal(t, 1, s.fake.Calls("PUT /api/v1/employmentOffice/employees/quit/job"))

	s.fake.quitErr = true
	recorder = test.NewJSONResponseRecorder[web.Redirect]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/employees/quit", roles.Employee, nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	res = recorder.MustScan()
	assert.Equal(t, errs.QuitFailed.Code, res.Code)
	assert.Equal(t, "not found", res.Msg)
}

func (s *HandlerTestSuite) TestProfessors() {
	recorder := test.NewJSONResponseRecorder[table.Table[web.Professor]]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/employees/professors", roles.SSZAdmin, web.ListReq{}))
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(s.T(), []web.Professor{{Id: "prof-1", FullName: "Petar Petrović", Email: "petar@uns.ac.rs"}}, res.Rows)
	assert.Equal(s.T(), "Nema profesora", res.EmptyMessage)
}

func (s *HandlerTestSuite) TestJobList() {
	yes := true
	s.fake.jobs["job-1"] = dao.Job{Id: "job-1", Title: "Backend developer",
		Description: "Rad u timu & mentorstvo", Location: "Novi Sad", RequiredFaculty: &yes}

	recorder := test.NewJSONResponseRecorder[table.Table[web.JobRow]]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/jobs/list", roles.Candidate, web.ListReq{}))
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), []web.JobRow{{
		Id:                "job-1",
		Title:             "Backend developer",
		Description:       "Rad u timu & me...",
		Location:          "Novi Sad",
		RequiredFaculty:   "Da",
		NeedsVerification: true,
	}}, recorder.MustScan().Data.Rows)
}

func (s *HandlerTestSuite) TestApply() {
	yes := true
	s.fake.jobs["job-1"] = dao.Job{Id: "job-1", Title: "Backend developer", RequiredFaculty: &yes}
	s.fake.jobs["job-2"] = dao.Job{Id: "job-2", Title: "Tester"}

	testCases := []struct {
		name        string
		req         web.IdReq
		wantCode    int
		wantMsg     string
		wantPending bool
		wantNotice  string
	}{
		{
			name:        "需要验证学历",
			req:         web.IdReq{Id: "job-1"},
			wantMsg:     "Prijava na posao uspjesno poslata!",
			wantPending: true,
			wantNotice:  "Poslali smo zahtjev i ceka se odobrenje za verifikaciju obrazovanja...",
		},
		{
			name:    "普通职位",
			req:     web.IdReq{Id: "job-2"},
			wantMsg: "Prijava na posao uspjesno poslata!",
		},
		{
			name:     "缺少职位",
			wantCode: errs.InvalidInput.Code,
			wantMsg:  errs.InvalidInput.Msg,
		},
		{
			name:     "职位不存在",
			req:      web.IdReq{Id: "job-3"},
			wantCode: errs.ApplyFailed.Code,
			wantMsg:  "job not found",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := test.NewJSONResponseRecorder[web.ApplyResult]()
			s.server.ServeHTTP(recorder, s.newRequest("/employment/jobs/apply", roles.Candidate, tc.req))
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
			assert.Equal(t, tc.wantPending, res.Data.VerificationPending)
			assert.Equal(t, tc.wantNotice, res.Data.Notice)
		})
	}
	assert.Equal(s.T(), email+"|"+email, s.fake.LastBody("apply"))
}

func (s *HandlerTestSuite) TestJobCandidates() {
	avg := 8.5
	indexNo := "RA-1/2020"
	s.fake.candidates["job-1"] = []dao.JobCandidate{
		{Id: "c-1", FullName: "Ana Anić", Email: "ana@gmail.com", IndexNo: &indexNo, AvgGrade: &avg},
		{Id: "c-2", FullName: "Jovan Jović", Email: "jovan@gmail.com"},
	}
	recorder := test.NewJSONResponseRecorder[table.Table[web.JobCandidateRow]]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/jobs/candidates", roles.Employee, web.IdReq{Id: "job-1"}))
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), []web.JobCandidateRow{
		{Rank: 1, Id: "c-1", FullName: "Ana Anić", Email: "ana@gmail.com", Index: "RA-1/2020", AvgGrade: "8.50"},
		{Rank: 2, Id: "c-2", FullName: "Jovan Jović", Email: "jovan@gmail.com", Index: "-", AvgGrade: "-"},
	}, recorder.MustScan().Data.Rows)

	recorder = test.NewJSONResponseRecorder[table.Table[web.JobCandidateRow]]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/jobs/candidates", roles.Employee, web.IdReq{Id: "job-2"}))
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Empty(s.T(), res.Rows)
	assert.Equal(s.T(), "Nema kandidata za ovaj posao", res.EmptyMessage)
}

func (s *HandlerTestSuite) TestSchedule() {
	testCases := []struct {
		name     string
		req      web.ScheduleReq
		wantCode int
		wantMsg  string
	}{
		{
			name: "非法类型",
			req: web.ScheduleReq{JobApplicationId: "app-1", CandidateId: "cand-1", JobId: "job-1",
				DateTime: "2025-06-10T09:30", Type: "PHONE", Location: "Zoom"},
			wantCode: errs.InvalidType.Code,
			wantMsg:  "Tip intervjua mora biti ONLINE ili IN_PERSON.",
		},
		{
			name: "缺少时间",
			req: web.ScheduleReq{JobApplicationId: "app-1", CandidateId: "cand-1", JobId: "job-1",
				Type: "ONLINE", Location: "Zoom"},
			wantCode: errs.InvalidInput.Code,
			wantMsg:  errs.InvalidInput.Msg,
		},
		{
			name: "安排成功",
			req: web.ScheduleReq{JobApplicationId: "app-1", CandidateId: "cand-1", JobId: "job-1",
				DateTime: "2025-06-10T09:30", Type: "ONLINE", Location: "Zoom"},
			wantMsg: "Intervju uspjesno zakazan!",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := test.NewJSONResponseRecorder[web.Interview]()
			s.server.ServeHTTP(recorder, s.newRequest("/employment/job-applications/schedule", roles.Candidate, tc.req))
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
		})
	}
	sent := s.fake.LastBody("schedule").(dao.Interview)
	assert.Equal(s.T(), "2025-06-10T09:30:00Z", sent.DateTime)
	assert.Equal(s.T(), "ONLINE", sent.Type)
	assert.Equal(s.T(), 1, s.fake.Calls("POST /api/v1/employmentOffice/interviews"))
}

func (s *HandlerTestSuite) TestInterviewActions() {
	s.fake.interviews = []dao.Interview{
		{Id: "int-1", JobApplicationId: "app-1", CandidateId: "cand-1", JobId: "job-1",
			DateTime: "2025-06-10T09:30:00Z", Type: "ONLINE", Location: "Zoom"},
		{Id: "int-2", JobApplicationId: "app-2", CandidateId: "cand-2", JobId: "job-1",
			DateTime: "2025-06-11T10:00:00Z", Type: "IN_PERSON", Location: "Novi Sad"},
	}
	t := s.T()

	recorder := test.NewJSONResponseRecorder[table.Table[web.Interview]]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/interviews/accept", roles.Candidate,
		web.InterviewActionReq{Id: "int-1", ListReq: web.ListReq{Page: 1, Limit: 10}}))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, "Intervju prihvacen!", res.Msg)
	assert.Len(t, res.Data.Rows, 2)
	assert.Equal(t, "June 10, 2025, 9:30 AM", res.Data.Rows[0].DateTime)

	// 拒绝之后重新查询，列表里少了一条
	recorder = test.NewJSONResponseRecorder[table.Table[web.Interview]]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/interviews/reject", roles.Employee,
		web.InterviewActionReq{Id: "int-2"}))
	require.Equal(t, http.StatusOK, recorder.Code)
	res = recorder.MustScan()
	assert.Equal(t, "Kandidat odbijen.", res.Msg)
	require.Len(t, res.Data.Rows, 1)
	assert.Equal(t, "int-1", res.Data.Rows[0].Id)

	recorder = test.NewJSONResponseRecorder[table.Table[web.Interview]]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/interviews/hire", roles.Employee,
		web.HireReq{CandidateId: "cand-1", JobId: "job-1"}))
	require.Equal(t, http.StatusOK, recorder.Code)
	res = recorder.MustScan()
	assert.Equal(t, "Kandidat uspjesno zaposlen!", res.Msg)
	assert.Equal(t, "cand-1|job-1", s.fake.LastBody("hire"))
	assert.Equal(t, 3, s.fake.Calls("GET /api/v1/employmentOffice/interviews"))

	recorder = test.NewJSONResponseRecorder[table.Table[web.Interview]]()
	s.server.ServeHTTP(recorder, s.newRequest("/employment/interviews/hire", roles.Employee,
		web.HireReq{CandidateId: "cand-1"}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.InvalidInput.Code, recorder.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
