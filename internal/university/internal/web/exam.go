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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/fakultet-ssz/portal/internal/pkg/table"
	"github.com/fakultet-ssz/portal/internal/pkg/toast"
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/errs"
	"github.com/fakultet-ssz/portal/internal/university/internal/service"
	"github.com/gin-gonic/gin"
)

type ExamHandler struct {
	svc service.ExamService
}

func NewExamHandler(svc service.ExamService) *ExamHandler {
	return &ExamHandler{svc: svc}
}

func (h *ExamHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/save", ginx.B[Exam](h.Save))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/enter", ginx.B[IdReq](h.Enter))
	g.POST("/registrations", ginx.W(h.MyRegistrations))
	g.POST("/options", ginx.W(h.FormOptions))
}

func (h *ExamHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page, err := h.svc.List(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.New(page.Items, page.Meta(), "Nema ispita", table.AllActions, newExamRow),
	}, nil
}

func (h *ExamHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	e, err := h.svc.Detail(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.NotFound, err)
	}
	return ginx.Result{Data: newExam(e)}, nil
}

func (h *ExamHandler) Save(ctx *ginx.Context, req Exam) (ginx.Result, error) {
	fallback, msg := errs.CreateFailed, "Kreiranje ispita uspjesno!"
	if req.Id != "" {
		fallback, msg = errs.UpdateFailed, "Ispit apdejtovan uspjesno!"
	}
	e, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return failure(fallback, err)
	}
	return toast.OK(msg, newExam(e)), nil
}

func (h *ExamHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.DeleteFailed, err)
	}
	return toast.OK("Ispit obrisan uspjesno!", nil), nil
}

func (h *ExamHandler) Enter(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	reg, err := h.svc.Enter(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.EnterFailed, err)
	}
	return toast.OK("Ispit prijavljen uspjesno!", newExamRegistrationRow(reg)), nil
}

// MyRegistrations 当前学生报名的考试
func (h *ExamHandler) MyRegistrations(ctx *ginx.Context) (ginx.Result, error) {
	regs, err := h.svc.MyRegistrations(ctx.Request.Context())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.Plain(regs, "Niste prijavili nijedan ispit", newExamRegistrationRow),
	}, nil
}

func (h *ExamHandler) FormOptions(ctx *ginx.Context) (ginx.Result, error) {
	opts, err := h.svc.FormOptions(ctx.Request.Context())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: ExamFormOptions{
			Courses:    slice.Map(opts.Courses, func(idx int, src domain.Option) Option { return newOption(src) }),
			Professors: slice.Map(opts.Professors, func(idx int, src domain.Option) Option { return newOption(src) }),
		},
	}, nil
}
