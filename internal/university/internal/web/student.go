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
	"github.com/ecodeclub/ginx/session"
	"github.com/fakultet-ssz/portal/internal/pkg/profile"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/fakultet-ssz/portal/internal/pkg/table"
	"github.com/fakultet-ssz/portal/internal/pkg/toast"
	"github.com/fakultet-ssz/portal/internal/university/internal/errs"
	"github.com/fakultet-ssz/portal/internal/university/internal/service"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	svc service.StudentService
}

func NewStudentHandler(svc service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

func (h *StudentHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/save", ginx.B[Student](h.Save))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
}

func (h *StudentHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	page, err := h.svc.List(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.New(page.Items, page.Meta(), "Nema studenata",
			h.actions(profile.Role(sess)), newStudentRow),
	}, nil
}

// actions 只有学院管理员可以新建学生
func (h *StudentHandler) actions(role string) table.Actions {
	canEdit := roles.Is(role, roles.Student, roles.FacultyAdmin)
	return table.Actions{
		CanCreate: role == roles.FacultyAdmin,
		CanEdit:   canEdit,
		CanDelete: canEdit,
	}
}

func (h *StudentHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	stu, err := h.svc.Detail(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.NotFound, err)
	}
	return ginx.Result{Data: newStudent(stu)}, nil
}

func (h *StudentHandler) Save(ctx *ginx.Context, req Student) (ginx.Result, error) {
	fallback, msg := errs.CreateFailed, "Kreiranje studenta uspjesno!"
	if req.Id != "" {
		fallback, msg = errs.UpdateFailed, "Apdejtovanje studenta uspjesno!"
	}
	stu, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return failure(fallback, err)
	}
	return toast.OK(msg, newStudent(stu)), nil
}

func (h *StudentHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.DeleteFailed, err)
	}
	return toast.OK("Brisanje studenta uspjesno!", nil), nil
}
