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

type ProgramHandler struct {
	svc service.ProgramService
}

func NewProgramHandler(svc service.ProgramService) *ProgramHandler {
	return &ProgramHandler{svc: svc}
}

func (h *ProgramHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/save", ginx.B[Program](h.Save))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/options", ginx.W(h.Options))
}

func (h *ProgramHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page, err := h.svc.List(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.New(page.Items, page.Meta(), "Nema programa", table.AllActions, newProgram),
	}, nil
}

func (h *ProgramHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.NotFound, err)
	}
	return ginx.Result{Data: newProgram(p)}, nil
}

func (h *ProgramHandler) Save(ctx *ginx.Context, req Program) (ginx.Result, error) {
	fallback, msg := errs.CreateFailed, "Kreiranje programa uspjesno!"
	if req.Id != "" {
		fallback, msg = errs.UpdateFailed, "Apdejtovanje programa uspjesno!"
	}
	p, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return failure(fallback, err)
	}
	return toast.OK(msg, newProgram(p)), nil
}

func (h *ProgramHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.DeleteFailed, err)
	}
	return toast.OK("Brisanje programa uspjesno!", nil), nil
}

func (h *ProgramHandler) Options(ctx *ginx.Context) (ginx.Result, error) {
	opts, err := h.svc.Options(ctx.Request.Context())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: slice.Map(opts, func(idx int, src domain.Option) Option {
			return newOption(src)
		}),
	}, nil
}
