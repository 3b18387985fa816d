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
	"context"
	"net/http"
	"strconv"
	"sync"

	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/cache"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/dao"
	"github.com/gin-gonic/gin"
)

const backendToken = "backend-token"

// fakeUniversity 内存版的大学服务，只实现测试用到的接口
type fakeUniversity struct {
	mu         sync.Mutex
	students   map[string]dao.Student
	programs   []dao.Program
	courses    []dao.Course
	professors []dao.Professor
	exams      map[string]dao.Exam
	examRegs   map[string][]dao.ExamRegistration
	// calls 每个路径被调用的次数
	calls    map[string]int
	lastBody map[string]any
}

func newFakeUniversity() *fakeUniversity {
	return &fakeUniversity{
		students: map[string]dao.Student{},
		exams:    map[string]dao.Exam{},
		examRegs: map[string][]dao.ExamRegistration{},
		calls:    map[string]int{},
		lastBody: map[string]any{},
	}
}

func (f *fakeUniversity) Calls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeUniversity) LastBody(key string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastBody[key]
}

func (f *fakeUniversity) Handler() http.Handler {
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
	g := r.Group("/api/v1/university")
	g.GET("/students", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		res := make([]dao.Student, 0, len(f.students))
		for _, s := range f.students {
			res = append(res, s)
		}
		ctx.JSON(http.StatusOK, gin.H{
			"students":   res,
			"page":       1,
			"totalItems": len(res),
			"totalPages": 1,
			"error":      nil,
		})
	})
	g.GET("/students/:id", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		s, ok := f.students[ctx.Param("id")]
		if !ok {
			ctx.String(http.StatusNotFound, "not found")
			return
		}
		ctx.JSON(http.StatusOK, s)
	})
	g.POST("/students", func(ctx *gin.Context) {
		var s dao.Student
		if err := ctx.BindJSON(&s); err != nil {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		s.Id = "stu-" + strconv.Itoa(len(f.students)+1)
		f.students[s.Id] = s
		f.lastBody["POST /students"] = s
		ctx.JSON(http.StatusOK, s)
	})
	g.PUT("/students/:id", func(ctx *gin.Context) {
		var s dao.Student
		if err := ctx.BindJSON(&s); err != nil {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		s.Id = ctx.Param("id")
		f.students[s.Id] = s
		f.lastBody["PUT /students"] = s
		ctx.JSON(http.StatusOK, s)
	})
	g.DELETE("/students/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "student ima prijavljene ispite"})
	})
	g.GET("/programs", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		ctx.JSON(http.StatusOK, gin.H{"programs": f.programs, "page": 1,
			"totalItems": len(f.programs), "totalPages": 1})
	})
	g.POST("/programs", func(ctx *gin.Context) {
		var p dao.Program
		if err := ctx.BindJSON(&p); err != nil {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		p.Id = "prog-" + strconv.Itoa(len(f.programs)+1)
		f.programs = append(f.programs, p)
		ctx.JSON(http.StatusOK, p)
	})
	g.GET("/courses", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		ctx.JSON(http.StatusOK, gin.H{"courses": f.courses, "page": 1,
			"totalItems": len(f.courses), "totalPages": 1})
	})
	g.GET("/professors", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		ctx.JSON(http.StatusOK, gin.H{"professors": f.professors, "page": 1,
			"totalItems": len(f.professors), "totalPages": 1})
	})
	g.POST("/exams", func(ctx *gin.Context) {
		var e dao.Exam
		if err := ctx.BindJSON(&e); err != nil {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		e.Id = "exam-" + strconv.Itoa(len(f.exams)+1)
		f.exams[e.Id] = e
		f.lastBody["POST /exams"] = e
		ctx.JSON(http.StatusOK, e)
	})
	g.GET("/exams/:id/examregistrations", func(ctx *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		res := f.examRegs[ctx.Param("id")]
		if res == nil {
			res = []dao.ExamRegistration{}
		}
		ctx.JSON(http.StatusOK, res)
	})
	g.PUT("/exams/:id/grade", func(ctx *gin.Context) {
		var req dao.GradeReq
		if err := ctx.BindJSON(&req); err != nil {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		f.lastBody["PUT /grade"] = req
		grade := req.Grade
		ctx.JSON(http.StatusOK, dao.ExamRegistration{
			Id:        "reg-1",
			ExamId:    ctx.Param("id"),
			StudentId: req.StudentId,
			Grade:     &grade,
			Passed:    grade > 5,
		})
	})
	return r
}

// memoryOptionCache 代替 redis
type memoryOptionCache struct {
	mu   sync.Mutex
	data map[domain.OptionKind][]domain.Option
}

var _ cache.OptionCache = &memoryOptionCache{}

func newMemoryOptionCache() *memoryOptionCache {
	return &memoryOptionCache{data: map[domain.OptionKind][]domain.Option{}}
}

func (c *memoryOptionCache) Get(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.data[kind]
	if !ok {
		return nil, cache.ErrOptionsNotFound
	}
	return res, nil
}

func (c *memoryOptionCache) Set(ctx context.Context, kind domain.OptionKind, opts []domain.Option) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[kind] = opts
	return nil
}

func (c *memoryOptionCache) Del(ctx context.Context, kind domain.OptionKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, kind)
	return nil
}
