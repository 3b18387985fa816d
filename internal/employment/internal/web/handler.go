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

// Handler 就业服务的全部接口，只有 EmploymentOffice 的角色可以访问
type Handler struct {
	candidates   *CandidateHandler
	employees    *EmployeeHandler
	jobs         *JobHandler
	applications *JobApplicationHandler
	interviews   *InterviewHandler
}

func NewHandler(candidates *CandidateHandler,
	employees *EmployeeHandler,
	jobs *JobHandler,
	applications *JobApplicationHandler,
	interviews *InterviewHandler) *Handler {
	return &Handler{
		candidates:   candidates,
		employees:    employees,
		jobs:         jobs,
		applications: applications,
		interviews:   interviews,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/employment", middleware.NewCheckRoleMiddlewareBuilder(roles.EmploymentOffice...).Build())
	h.candidates.RegisterRoutes(g.Group("/candidates"))
	h.employees.RegisterRoutes(g.Group("/employees"))
	h.jobs.RegisterRoutes(g.Group("/jobs"))
	h.applications.RegisterRoutes(g.Group("/job-applications"))
	h.interviews.RegisterRoutes(g.Group("/interviews"))
}
