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
	"fmt"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fakultet-ssz/portal/internal/employment/internal/errs"
	"github.com/fakultet-ssz/portal/internal/employment/internal/service"
	"github.com/fakultet-ssz/portal/internal/pkg/profile"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/fakultet-ssz/portal/internal/pkg/table"
	"github.com/fakultet-ssz/portal/internal/pkg/toast"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type EmployeeHandler struct {
	svc    service.EmployeeService
	logger *elog.Component
}

func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *EmployeeHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/save", ginx.B[Employee](h.Save))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/colleagues", ginx.B[ListReq](h.Colleagues))
	g.POST("/quit", ginx.S(h.QuitJob))
	g.POST("/professors", ginx.B[ListReq](h.Professors))
}

func (h *EmployeeHandler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	page, err := h.svc.List(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	isAdmin := profile.Role(sess) == roles.SSZAdmin
	return ginx.Result{
		Data: table.New(page.Items, page.Meta(), "Nema zaposlenih", table.Actions{
			CanCreate: true,
			CanEdit:   isAdmin,
			CanDelete: isAdmin,
		}, newEmployeeRow),
	}, nil
}

func (h *EmployeeHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	e, err := h.svc.Detail(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.NotFound, err)
	}
	return ginx.Result{Data: newEmployee(e)}, nil
}

func (h *EmployeeHandler) Save(ctx *ginx.Context, req Employee) (ginx.Result, error) {
	fallback, msg := errs.CreateFailed, "Kreiranje zaposlenog uspjesno!"
	if req.Id != "" {
		fallback, msg = errs.UpdateFailed, "Apdejtovanje zaposlenog uspjesno!"
	}
	e, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return failure(fallback, err)
	}
	return toast.OK(msg, newEmployee(e)), nil
}

func (h *EmployeeHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	if err := h.svc.Delete(ctx.Request.Context(), req.Id); err != nil {
		return failure(errs.DeleteFailed, err)
	}
	return toast.OK("Brisanje zaposlenog uspjesno!", nil), nil
}

func (h *EmployeeHandler) Colleagues(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page, err := h.svc.Colleagues(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.New(page.Items, page.Meta(), "Nema kolega", table.Actions{}, newEmployeeRow),
	}, nil
}

// QuitJob 离职之后需要重新登录
func (h *EmployeeHandler) QuitJob(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.svc.QuitJob(ctx.Request.Context()); err != nil {
		return failure(errs.QuitFailed, err)
	}
	uid := sess.Claims().Uid
	if err := sess.Destroy(ctx.Request.Context()); err != nil {
		return systemErrorResult, fmt.Errorf("离职之后退出登录失败 uid: %d: %w", uid, err)
	}
	h.logger.Info("员工离职", elog.Int64("uid", uid))
	return toast.OK("Uspješno ste napustili posao.", Redirect{Redirect: roles.LoginPage}), nil
}

func (h *EmployeeHandler) Professors(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page, err := h.svc.Professors(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.New(page.Items, page.Meta(), "Nema profesora", table.Actions{}, newProfessor),
	}, nil
}
