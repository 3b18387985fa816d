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
	"github.com/fakultet-ssz/portal/internal/employment/internal/domain"
	"github.com/fakultet-ssz/portal/internal/employment/internal/errs"
	"github.com/fakultet-ssz/portal/internal/employment/internal/service"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/fakultet-ssz/portal/internal/pkg/table"
	"github.com/gin-gonic/gin"
)

const noInterviews = "Nema intervjua"

type InterviewHandler struct {
	svc service.InterviewService
}

func NewInterviewHandler(svc service.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

func (h *InterviewHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/delete", ginx.B[InterviewActionReq](h.Delete))
	g.POST("/accept", ginx.B[InterviewActionReq](h.Accept))
	g.POST("/reject", ginx.B[InterviewActionReq](h.Reject))
	g.POST("/hire", ginx.B[HireReq](h.Hire))
}

func (h *InterviewHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page, err := h.svc.List(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{Data: h.toTable(page)}, nil
}

func (h *InterviewHandler) Delete(ctx *ginx.Context, req InterviewActionReq) (ginx.Result, error) {
	page, err := h.svc.Delete(ctx.Request.Context(), req.Id, req.Query())
	return h.refreshed(page, err, errs.DeleteFailed, "Brisanje intervjua uspjesno!")
}

func (h *InterviewHandler) Accept(ctx *ginx.Context, req InterviewActionReq) (ginx.Result, error) {
	page, err := h.svc.Accept(ctx.Request.Context(), req.Id, req.Query())
	return h.refreshed(page, err, errs.AcceptFailed, "Intervju prihvacen!")
}

func (h *InterviewHandler) Reject(ctx *ginx.Context, req InterviewActionReq) (ginx.Result, error) {
	page, err := h.svc.Reject(ctx.Request.Context(), req.Id, req.Query())
	return h.refreshed(page, err, errs.RejectFailed, "Kandidat odbijen.")
}

func (h *InterviewHandler) Hire(ctx *ginx.Context, req HireReq) (ginx.Result, error) {
	page, err := h.svc.Hire(ctx.Request.Context(), domain.Hire{
		CandidateId: req.CandidateId,
		JobId:       req.JobId,
	}, req.Query())
	return h.refreshed(page, err, errs.HireFailed, "Kandidat uspjesno zaposlen!")
}

func (h *InterviewHandler) refreshed(page pagination.Page[domain.Interview], err error,
	fallback errs.ErrorCode, msg string) (ginx.Result, error) {
	if err != nil {
		return failure(fallback, err)
	}
	return ginx.Result{Msg: msg, Data: h.toTable(page)}, nil
}

func (h *InterviewHandler) toTable(page pagination.Page[domain.Interview]) table.Table[Interview] {
	return table.New(page.Items, page.Meta(), noInterviews, table.Actions{
		CanEdit:   true,
		CanDelete: true,
	}, newInterview)
}
