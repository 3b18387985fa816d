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
	"github.com/fakultet-ssz/portal/internal/pkg/table"
	"github.com/fakultet-ssz/portal/internal/pkg/toast"
	"github.com/gin-gonic/gin"
)

type JobApplicationHandler struct {
	svc service.JobApplicationService
}

func NewJobApplicationHandler(svc service.JobApplicationService) *JobApplicationHandler {
	return &JobApplicationHandler{svc: svc}
}

func (h *JobApplicationHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/schedule", ginx.B[ScheduleReq](h.Schedule))
}

func (h *JobApplicationHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page, err := h.svc.List(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.New(page.Items, page.Meta(), "Nema prijava na poslove", table.Actions{
			CanEdit:   true,
			CanDelete: true,
		}, newJobApplication),
	}, nil
}

func (h *JobApplicationHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	if err := h.svc.Delete(ctx.Request.Context(), req.Id); err != nil {
		return failure(errs.DeleteFailed, err)
	}
	return toast.OK("Brisanje prijave uspjesno!", nil), nil
}

func (h *JobApplicationHandler) Schedule(ctx *ginx.Context, req ScheduleReq) (ginx.Result, error) {
	i, err := h.svc.Schedule(ctx.Request.Context(), domain.Interview{
		JobApplicationId: req.JobApplicationId,
		CandidateId:      req.CandidateId,
		JobId:            req.JobId,
		DateTime:         req.DateTime,
		Type:             domain.InterviewType(req.Type),
		Location:         req.Location,
	})
	if err != nil {
		return failure(errs.ScheduleFailed, err)
	}
	return toast.OK("Intervju uspjesno zakazan!", newInterview(i)), nil
}
