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
	"github.com/fakultet-ssz/portal/internal/university/internal/errs"
	"github.com/fakultet-ssz/portal/internal/university/internal/service"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	svc service.CourseService
}

func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

func (h *CourseHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/save", ginx.B[Course](h.Save))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/join", ginx.B[IdReq](h.Join))
	g.POST("/registrations", ginx.W(h.MyRegistrations))
}

func (h *CourseHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page, err := h.svc.List(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.New(page.Items, page.Meta(), "Nema kurseva", table.AllActions, newCourse),
	}, nil
}

func (h *CourseHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.NotFound, err)
	}
	return ginx.Result{Data: newCourse(c)}, nil
}

func (h *CourseHandler) Save(ctx *ginx.Context, req Course) (ginx.Result, error) {
	fallback, msg := errs.CreateFailed, "Kreiranje kursa uspjesno!"
	if req.Id != "" {
		fallback, msg = errs.UpdateFailed, "Apdejtovanje kursa uspjesno!"
	}
	c, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return failure(fallback, err)
	}
	return toast.OK(msg, newCourse(c)), nil
}

func (h *CourseHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.DeleteFailed, err)
	}
	return toast.OK("Brisanje kursa uspjesno!", nil), nil
}

func (h *CourseHandler) Join(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	reg, err := h.svc.Join(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.JoinFailed, err)
	}
	return toast.OK("Upis na kurs uspjesan!", newCourseRegistration(reg)), nil
}

// MyRegistrations 当前学生报名的课程
func (h *CourseHandler) MyRegistrations(ctx *ginx.Context) (ginx.Result, error) {
	regs, err := h.svc.MyRegistrations(ctx.Request.Context())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.Plain(regs, "Niste upisani ni na jedan kurs", newCourseRegistration),
	}, nil
}
