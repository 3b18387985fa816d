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

package integration

import (
	"net/http"
	"sync"

	"github.com/fakultet-ssz/portal/internal/employment/internal/repository/dao"
	"github.com/gin-gonic/gin"
)

const backendToken = "backend-token"

// fakeEmploymentOffice 内存版的就业服务
type fakeEmploymentOffice struct {
	mu         sync.Mutex
	employees  []dao.Employee
	jobs       map[string]dao.Job
	interviews []dao.Interview
	candidates map[string][]dao.JobCandidate
	calls      map[string]int
	lastBody   map[string]any
	quitErr    bool
}

func newFakeEmploymentOffice() *fakeEmploymentOffice {
	return &fakeEmploymentOffice{
		jobs:       map[string]dao.Job{},
		candidates: map[string][]dao.JobCandidate{},
		calls:      map[string]int{},
		lastBody:   map[string]any{},
	}
}

func (f *fakeEmploymentOffice) Calls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeEmploymentOffice) LastBody(key string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBody[key]
}

func (f *fakeEmploymentOffice) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		if ctx.GetHeader("Authorization") != "Bearer "+backendToken {
			ctx.String(http.StatusUnauthorized, "missing or invalid token")
			ctx.Abort()
			return
		}
		f.mu.Lock()
		f.calls[ctx.Request.Method+" "+ctx.FullPath()]++
		f.mu.Unlock()
	})
	g := r.Group("/api/v1/employmentOffice")
	g.GET("/employees", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		ctx.JSON(http.StatusOK, gin.H{"employees": f.employees, "page": 1,
			"totalItems": len(f.employees), "totalPages": 1})
	})
	g.PUT("/employees/quit/job", func(ctx *gin.Context) {
		if f.quitErr {
			ctx.String(http.StatusNotFound, "not found")
			return
		}
		ctx.Status(http.StatusNoContent)
	})
	g.GET("/employees/professors/all", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"professors": []dao.Professor{{Id: "prof-1", FullName: "Petar Petrović", Email: "petar@uns.ac.rs"}},
			"page":       1, "totalItems": 1, "totalPages": 1,
		})
	})
	g.GET("/jobs", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		res := make([]dao.Job, 0, len(f.jobs))
		for _, j := range f.jobs {
			res = append(res, j)
		}
		ctx.JSON(http.StatusOK, gin.H{"jobs": res, "page": 1, "totalItems": len(res), "totalPages": 1})
	})
	g.GET("/jobs/:id", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		j, ok := f.jobs[ctx.Param("id")]
		if !ok {
			ctx.String(http.StatusNotFound, "job not found")
			return
		}
		ctx.JSON(http.StatusOK, j)
	})
	g.POST("/jobs/:id/:email/apply", func(ctx *gin.Context) {
		var req dao.ApplyReq
		if err := ctx.BindJSON(&req); err != nil {
			return
		}
		f.mu.Lock()
		f.lastBody["apply"] = ctx.Param("email") + "|" + req.Email
		f.mu.Unlock()
		ctx.JSON(http.StatusOK, dao.JobApplication{Id: "app-1", JobId: ctx.Param("id"), CandidateId: "cand-1"})
	})
	g.GET("/jobs/:id/candidates", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		res := f.candidates[ctx.Param("id")]
		if res == nil {
			res = []dao.JobCandidate{}
		}
		ctx.JSON(http.StatusOK, res)
	})
	g.GET("/interviews", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		ctx.JSON(http.StatusOK, gin.H{"interviews": f.interviews, "page": 1,
			"totalItems": len(f.interviews), "totalPages": 1})
	})
	g.POST("/interviews", func(ctx *gin.Context) {
		var i dao.Interview
		if err := ctx.BindJSON(&i); err != nil {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		i.Id = "int-1"
		f.lastBody["schedule"] = i
		f.interviews = append(f.interviews, i)
		ctx.JSON(http.StatusOK, i)
	})
	g.PATCH("/interviews/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	g.DELETE("/interviews/:id/odbij", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		res := f.interviews[:0]
		for _, i := range f.interviews {
			if i.Id != ctx.Param("id") {
				res = append(res, i)
			}
		}
		f.interviews = res
		ctx.Status(http.StatusNoContent)
	})
	g.PATCH("/interviews/:id/zaposli/:jobid", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.lastBody["hire"] = ctx.Param("id") + "|" + ctx.Param("jobid")
		ctx.Status(http.StatusNoContent)
	})
	return r
}
