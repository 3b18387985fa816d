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
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/pkg/middleware"
	"github.com/fakultet-ssz/portal/internal/pkg/profile"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/fakultet-ssz/portal/internal/pkg/table"
	"github.com/fakultet-ssz/portal/internal/test"
	"github.com/fakultet-ssz/portal/internal/university/internal/errs"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/dao"
	"github.com/fakultet-ssz/portal/internal/university/internal/service"
	"github.com/fakultet-ssz/portal/internal/university/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const roleHead = "X-Test-Role"

type HandlerTestSuite struct {
	suite.Suite
	server  *egin.Component
	backend *httptest.Server
	fake    *fakeUniversity
	options *memoryOptionCache
}

func (s *HandlerTestSuite) SetupTest() {
	s.fake = newFakeUniversity()
	s.backend = httptest.NewServer(s.fake.Handler())
	s.options = newMemoryOptionCache()

	client := backend.NewClient("university", backend.Config{Addr: s.backend.URL, Timeout: time.Second})
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		role := ctx.GetHeader(roleHead)
		if role == "" {
			return
		}
		ctx.Set(test.SessionKey, test.NewSession(test.Claims(123, role,
			profile.KeyEmail, "ana@uns.ac.rs",
		), map[string]any{profile.KeyToken: backendToken}))
	})
	server.Use(middleware.NewBackendTokenBuilder().Build())
	hdl := initHandler(client, s.options)
	hdl.PublicRoutes(server.Engine)
	hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	s.backend.Close()
}

func initHandler(client *backend.Client, oc *memoryOptionCache) *web.Handler {
	studentDAO := dao.NewStudentDAO(client)
	professorDAO := dao.NewProfessorDAO(client)
	courseDAO := dao.NewCourseDAO(client)
	programDAO := dao.NewProgramDAO(client)
	regRepo := repository.NewRegistrationRepository(dao.NewRegistrationDAO(client))
	options := repository.NewCachedOptionRepository(programDAO, courseDAO, professorDAO, oc)
	return web.NewHandler(
		web.NewStudentHandler(service.NewStudentService(repository.NewStudentRepository(studentDAO))),
		web.NewProfessorHandler(service.NewProfessorService(repository.NewProfessorRepository(professorDAO), options)),
		web.NewCourseHandler(service.NewCourseService(repository.NewCourseRepository(courseDAO), regRepo, options)),
		web.NewProgramHandler(service.NewProgramService(repository.NewProgramRepository(programDAO), options)),
		web.NewExamHandler(service.NewExamService(repository.NewExamRepository(dao.NewExamDAO(client)), regRepo, options)),
		web.NewExamRegistrationHandler(service.NewExamRegistrationService(regRepo)),
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
	testCases := []struct {
		name     string
		role     string
		wantCode int
	}{
		{name: "没有登录", wantCode: http.StatusUnauthorized},
		{name: "就业服务的角色", role: roles.Employee, wantCode: http.StatusForbidden},
		{name: "学生", role: roles.Student, wantCode: http.StatusOK},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := test.NewJSONResponseRecorder[table.Table[web.StudentRow]]()
			s.server.ServeHTTP(recorder, s.newRequest("/university/students/list", tc.role, web.ListReq{}))
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}

func (s *HandlerTestSuite) TestStudentList() {
	s.fake.students["stu-1"] = dao.Student{Id: "stu-1", FullName: "Ana Anić", Email: "ana@uns.ac.rs",
		IndexNo: "RA-1/2020", Status: "ACTIVE", Employed: true}

	testCases := []struct {
		name        string
		role        string
		wantActions table.Actions
	}{
		{
			name:        "学院管理员",
			role:        roles.FacultyAdmin,
			wantActions: table.Actions{CanCreate: true, CanEdit: true, CanDelete: true},
		},
		{
			name:        "学生不能新建",
			role:        roles.Student,
			wantActions: table.Actions{CanEdit: true, CanDelete: true},
		},
		{
			name:        "教授只能看",
			role:        roles.Professor,
			wantActions: table.Actions{},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			recorder := test.NewJSONResponseRecorder[table.Table[web.StudentRow]]()
			s.server.ServeHTTP(recorder, s.newRequest("/university/students/list", tc.role, web.ListReq{Page: 1, Limit: 10}))
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan().Data
			assert.Equal(t, []web.StudentRow{{
				Id: "stu-1", IndexNo: "RA-1/2020", FullName: "Ana Anić",
				Email: "ana@uns.ac.rs", Employed: "DA", Status: "ACTIVE",
			}}, res.Rows)
			assert.Equal(t, "Nema studenata", res.EmptyMessage)
			assert.Equal(t, tc.wantActions, res.Actions)
			assert.Equal(t, 1, res.Meta.TotalItems)
		})
	}
}

func (s *HandlerTestSuite) TestStudentSave() {
	t := s.T()
	// 新建
	recorder := test.NewJSONResponseRecorder[web.Student]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/students/save", roles.FacultyAdmin, web.Student{
		FullName: "Marko Marković", Email: "marko@uns.ac.rs", Password: "lozinka", IndexNo: "RA-2/2021",
	}))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, "Kreiranje studenta uspjesno!", res.Msg)
	created := s.fake.LastBody("POST /students").(dao.Student)
	assert.Equal(t, "ACTIVE", created.Status)
	assert.Equal(t, roles.Student, created.Role)
	assert.Equal(t, "lozinka", created.Password)

	// 更新的时候学号不能改
	recorder = test.NewJSONResponseRecorder[web.Student]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/students/save", roles.FacultyAdmin, web.Student{
		Id: res.Data.Id, FullName: "Marko M.", Email: "marko@uns.ac.rs", IndexNo: "HACK-1",
	}))
	require.Equal(t, http.StatusOK, recorder.Code)
	res = recorder.MustScan()
	assert.Equal(t, "Apdejtovanje studenta uspjesno!", res.Msg)
	updated := s.fake.LastBody("PUT /students").(dao.Student)
	assert.Equal(t, "RA-2/2021", updated.IndexNo)
	assert.Equal(t, "Marko M.", updated.FullName)
	assert.Equal(t, "ACTIVE", updated.Status)
}

func (s *HandlerTestSuite) TestStudentDelete() {
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/students/delete", roles.FacultyAdmin, web.IdReq{Id: "stu-1"}))
	// 后端的 4xx 直接提示给用户
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(s.T(), errs.DeleteFailed.Code, res.Code)
	assert.Equal(s.T(), "student ima prijavljene ispite", res.Msg)

	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/students/delete", roles.FacultyAdmin, web.IdReq{}))
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), errs.InvalidInput.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestProgramOptions() {
	t := s.T()
	s.fake.programs = []dao.Program{{Id: "prog-1", Name: "Računarstvo"}}

	for i := 0; i < 2; i++ {
		recorder := test.NewJSONResponseRecorder[[]web.Option]()
		s.server.ServeHTTP(recorder, s.newRequest("/university/programs/options", roles.FacultyAdmin, nil))
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, []web.Option{{Value: "prog-1", Label: "Računarstvo"}}, recorder.MustScan().Data)
	}
	// 第二次走缓存
	assert.Equal(t, 1, s.fake.Calls("GET /api/v1/university/programs"))

	// 新建专业之后缓存失效
	recorder := test.NewJSONResponseRecorder[web.Program]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/programs/save", roles.FacultyAdmin, web.Program{Name: "Mehatronika"}))
	require.Equal(t, http.StatusOK, recorder.Code)

	opts := test.NewJSONResponseRecorder[[]web.Option]()
	s.server.ServeHTTP(opts, s.newRequest("/university/programs/options", roles.FacultyAdmin, nil))
	require.Equal(t, http.StatusOK, opts.Code)
	assert.Len(t, opts.MustScan().Data, 2)
	assert.Equal(t, 2, s.fake.Calls("GET /api/v1/university/programs"))
}

func (s *HandlerTestSuite) TestExamSave() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[web.Exam]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/exams/save", roles.Professor, web.Exam{
		ExamTime: "2025-06-10T09:30", CourseId: "course-1", ProfessorId: "prof-1",
	}))
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, "Kreiranje ispita uspjesno!", res.Msg)
	assert.Equal(t, "2025-06-10T09:30:00Z", s.fake.LastBody("POST /exams").(dao.Exam).ExamTime)

	recorder = test.NewJSONResponseRecorder[web.Exam]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/exams/save", roles.Professor, web.Exam{
		ExamTime: "sutra", CourseId: "course-1", ProfessorId: "prof-1",
	}))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.InvalidInput.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestExamFormOptions() {
	s.fake.courses = []dao.Course{{Id: "course-1", Code: "P1", Name: "Programiranje"}}
	s.fake.professors = []dao.Professor{{Id: "prof-1", FullName: "Petar Petrović"}}

	recorder := test.NewJSONResponseRecorder[web.ExamFormOptions]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/exams/options", roles.Professor, nil))
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Equal(s.T(), web.ExamFormOptions{
		Courses:    []web.Option{{Value: "course-1", Label: "P1 Programiranje"}},
		Professors: []web.Option{{Value: "prof-1", Label: "Petar Petrović"}},
	}, recorder.MustScan().Data)
}

func (s *HandlerTestSuite) TestExamRegistrations() {
	grade := 8
	s.fake.examRegs["exam-1"] = []dao.ExamRegistration{
		{Id: "reg-1", ExamId: "exam-1", StudentId: "stu-1", Grade: &grade, Passed: true},
		{Id: "reg-2", ExamId: "exam-1", StudentId: "stu-2"},
	}
	recorder := test.NewJSONResponseRecorder[table.Table[web.ExamRegistrationRow]]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/exam-registrations/list", roles.Professor,
		web.ExamIdReq{ExamId: "exam-1"}))
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	res := recorder.MustScan().Data
	assert.Equal(s.T(), []web.ExamRegistrationRow{
		{Id: "reg-1", ExamId: "exam-1", StudentId: "stu-1", Grade: "8", Graded: true},
		{Id: "reg-2", ExamId: "exam-1", StudentId: "stu-2", Grade: "NIJE OCJENJEN"},
	}, res.Rows)

	recorder = test.NewJSONResponseRecorder[table.Table[web.ExamRegistrationRow]]()
	s.server.ServeHTTP(recorder, s.newRequest("/university/exam-registrations/list", roles.Professor,
		web.ExamIdReq{ExamId: "exam-2"}))
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	res = recorder.MustScan().Data
	assert.Empty(s.T(), res.Rows)
	assert.Equal(s.T(), "Nema ispitnih prijava za ovaj ispit", res.EmptyMessage)
}

func (s *HandlerTestSuite) TestGrade() {
	testCases := []struct {
		name     string
		req      web.GradeReq
		wantCode int
		wantMsg  string
		wantCall int
	}{
		{
			name:     "分数太低",
			req:      web.GradeReq{ExamId: "exam-1", StudentId: "stu-1", Grade: 4},
			wantCode: errs.InvalidGrade.Code,
			wantMsg:  "Ocjena mora biti izmedju 5 i 10.",
		},
		{
			name:     "分数太高",
			req:      web.GradeReq{ExamId: "exam-1", StudentId: "stu-1", Grade: 11},
			wantCode: errs.InvalidGrade.Code,
			wantMsg:  "Ocjena mora biti izmedju 5 i 10.",
		},
		{
			name:     "缺少学生",
			req:      web.GradeReq{ExamId: "exam-1", Grade: 7},
			wantCode: errs.InvalidInput.Code,
			wantMsg:  errs.InvalidInput.Msg,
		},
		{
			name:     "打分成功",
			req:      web.GradeReq{ExamId: "exam-1", StudentId: "stu-1", Grade: 9},
			wantMsg:  "Ocjena uspjesno unesena!",
			wantCall: 1,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			before := s.fake.Calls("PUT /api/v1/university/exams/:id/grade")
			recorder := test.NewJSONResponseRecorder[web.ExamRegistrationRow]()
			s.server.ServeHTTP(recorder, s.newRequest("/university/exam-registrations/grade", roles.Professor, tc.req))
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantMsg, res.Msg)
			assert.Equal(t, tc.wantCall, s.fake.Calls("PUT /api/v1/university/exams/:id/grade")-before)
		})
	}
	req := s.fake.LastBody("PUT /grade").(dao.GradeReq)
	assert.Equal(s.T(), dao.GradeReq{StudentId: "stu-1", Grade: 9}, req)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
