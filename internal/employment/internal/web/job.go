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
	"github.com/fakultet-ssz/portal/internal/employment/internal/domain"
	"github.com/fakultet-ssz/portal/internal/employment/internal/errs"
	"github.com/fakultet-ssz/portal/internal/employment/internal/service"
	"github.com/fakultet-ssz/portal/internal/pkg/profile"
	"github.com/fakultet-ssz/portal/internal/pkg/table"
	"github.com/fakultet-ssz/portal/internal/pkg/toast"
	"github.com/gin-gonic/gin"
)

const verificationNotice = "Poslali smo zahtjev i ceka se odobrenje za verifikaciju obrazovanja..."

type JobHandler struct {
	svc service.JobService
}

func NewJobHandler(svc service.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/save", ginx.B[Job](h.Save))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
	g.POST("/apply", ginx.BS[IdReq](h.Apply))
	g.POST("/candidates", ginx.B[IdReq](h.Candidates))
}

func (h *JobHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	page, err := h.svc.List(ctx.Request.Context(), req.Query())
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	return ginx.Result{
		Data: table.New(page.Items, page.Meta(), "Nema poslova", table.AllActions, newJobRow),
	}, nil
}

func (h *JobHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	j, err := h.svc.Detail(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.NotFound, err)
	}
	return ginx.Result{Data: newJob(j)}, nil
}

func (h *JobHandler) Save(ctx *ginx.Context, req Job) (ginx.Result, error) {
	fallback, msg := errs.CreateFailed, "Kreiranje posla uspjesno!"
	if req.Id != "" {
		fallback, msg = errs.UpdateFailed, "Apdejtovanje posla uspjesno!"
	}
	j, err := h.svc.Save(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return failure(fallback, err)
	}
	return toast.OK(msg, newJob(j)), nil
}

func (h *JobHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	if err := h.svc.Delete(ctx.Request.Context(), req.Id); err != nil {
		return failure(errs.DeleteFailed, err)
	}
	return toast.OK("Brisanje posla uspjesno!", nil), nil
}

// Apply 使用 session 里面的邮箱申请
func (h *JobHandler) Apply(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	email := profile.FromSession(sess).Email
	res, err := h.svc.Apply(ctx.Request.Context(), req.Id, email)
	if err != nil {
		return failure(errs.ApplyFailed, err)
	}
	vo := ApplyResult{
		Application:         newJobApplication(res.Application),
		VerificationPending: res.VerificationPending,
	}
	if res.VerificationPending {
		vo.Notice = verificationNotice
	}
	return toast.OK("Prijava na posao uspjesno poslata!", vo), nil
}

// Candidates 职位的候选人排名
func (h *JobHandler) Candidates(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	cs, err := h.svc.Candidates(ctx.Request.Context(), req.Id)
	if err != nil {
		return failure(errs.ListFailed, err)
	}
	rank := 0
	return ginx.Result{
		Data: table.Plain(cs, "Nema kandidata za ovaj posao", func(src domain.JobCandidate) JobCandidateRow {
			rank++
			return newJobCandidateRow(rank, src)
		}),
	}, nil
}
