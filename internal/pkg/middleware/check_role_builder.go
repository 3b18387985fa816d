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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fakultet-ssz/portal/internal/pkg/profile"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	// RoleCtxKey 校验通过之后，角色会放进 gin.Context
	RoleCtxKey = "role"

	codeUnauthorized = 400001
	codeForbidden    = 400003
)

// Redirect 前端根据 redirect 跳转页面
type Redirect struct {
	Redirect string `json:"redirect"`
}

// CheckRoleMiddlewareBuilder 只允许指定角色访问某一块页面，
// 例如 /fakultet 只允许 student, professor, facultyadmin
type CheckRoleMiddlewareBuilder struct {
	allowed []string
	logger  *elog.Component
	sp      session.Provider
}

func NewCheckRoleMiddlewareBuilder(allowed ...string) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		allowed: allowed,
		logger:  elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
				Code: codeUnauthorized,
				Msg:  "Morate biti prijavljeni.",
				Data: Redirect{Redirect: roles.LoginPage},
			})
			return
		}
		claims := sess.Claims()
		role := claims.Get(profile.KeyRole).StringOrDefault("")
		if !roles.Is(role, c.allowed...) {
			c.logger.Debug("角色无权访问",
				elog.Int64("uid", claims.Uid),
				elog.String("role", role),
				elog.String("path", ctx.Request.URL.Path))
			ctx.AbortWithStatusJSON(http.StatusForbidden, ginx.Result{
				Code: codeForbidden,
				Msg:  "Nemate pristup ovoj stranici.",
				Data: Redirect{Redirect: roles.NotAuthorizedPage},
			})
			return
		}
		ctx.Set(RoleCtxKey, role)
	}
}
