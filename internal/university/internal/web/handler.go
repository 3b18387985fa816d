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
	"github.com/ecodeclub/ginx"
	"github.com/fakultet-ssz/portal/internal/pkg/middleware"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 大学相关的全部接口，只有 Faculty 的角色可以访问
type Handler struct {
	students      *StudentHandler
	professors    *ProfessorHandler
	courses       *CourseHandler
	programs      *ProgramHandler
	exams         *ExamHandler
	registrations *ExamRegistrationHandler
}

func NewHandler(students *StudentHandler,
	professors *ProfessorHandler,
	courses *CourseHandler,
	programs *ProgramHandler,
	exams *ExamHandler,
	registrations *ExamRegistrationHandler) *Handler {
	return &Handler{
		students:      students,
		professors:    professors,
		courses:       courses,
		programs:      programs,
		exams:         exams,
		registrations: registrations,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/university", middleware.NewCheckRoleMiddlewareBuilder(roles.Faculty...).Build())
	h.students.RegisterRoutes(g.Group("/students"))
	h.professors.RegisterRoutes(g.Group("/professors"))
	h.courses.RegisterRoutes(g.Group("/courses"))
	h.programs.RegisterRoutes(g.Group("/programs"))
	h.exams.RegisterRoutes(g.Group("/exams"))
	h.registrations.RegisterRoutes(g.Group("/exam-registrations"))
}
