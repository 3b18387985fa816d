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
	"github.com/fakultet-ssz/portal/internal/pkg/table"
	"github.com/fakultet-ssz/portal/internal/pkg/toast"
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/errs"
	"github.com/fakultet-ssz/portal/internal/university/internal/service"
	"github.com/gin-gonic/gin"
)

type ExamRegistrationHandler struct {
	svc service.ExamRegistrationService
}

func NewExamRegistrationHandler(svc service.ExamRegistrationService) *ExamRegistrationHandler {
	return &ExamRegistrationHandler{svc: svc}
}

func (h *ExamRegistrationHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/list", ginx.B[ExamIdReq](h.List))
	g.POST("/grade", ginx.B[GradeReq](h.Grade))
}

func (h *ExamRegistrationHandler) List(ctx *ginx.Context, req ExamIdReq) (ginx.Result, error) {
	regs, err := h.svc.List(ctx.Request.Context(), req.ExamId)
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.Plain(regs, "Nema ispitnih prijava za ovaj ispit", newExamRegistrationRow),
	}, nil
}

func (h *ExamRegistrationHandler) Grade(ctx *ginx.Context, req GradeReq) (ginx.Result, error) {
	reg, err := h.svc.Grade(ctx.Request.Context(), domain.Grade{
		ExamId:    req.ExamId,
		StudentId: req.StudentId,
		Value:     req.Grade,
	})
	if err != nil {
		return failure(errs.GradeFailed, err)
	}
	return toast.OK("Ocjena uspjesno unesena!", newExamRegistrationRow(reg)), nil
}
