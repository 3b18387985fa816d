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
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/pkg/ectx"
	"github.com/fakultet-ssz/portal/internal/pkg/profile"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const codeTokenExpired = 400002

// BackendTokenBuilder 把 session 里面后端签发的 token 放进 request 的 context，
// backend.Client 会自动带上。token 过期了直接要求重新登录
type BackendTokenBuilder struct {
	logger *elog.Component
	sp     session.Provider
	now    func() time.Time
}

func NewBackendTokenBuilder() *BackendTokenBuilder {
	return &BackendTokenBuilder{
		logger: elog.DefaultLogger,
		now:    time.Now,
	}
}

func (b *BackendTokenBuilder) Build() gin.HandlerFunc {
	if b.sp == nil {
		b.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := b.sp.Get(gctx)
		if err != nil {
			// 交给 CheckLoginMiddleware 处理
			return
		}
		token := profile.Token(ctx.Request.Context(), sess)
		if token == "" {
			return
		}
		if backend.TokenExpired(token, b.now()) {
			b.logger.Debug("后端 token 已过期", elog.Int64("uid", sess.Claims().Uid))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
				Code: codeTokenExpired,
				Msg:  "Sesija je istekla. Prijavite se ponovo.",
				Data: Redirect{Redirect: roles.LoginPage},
			})
			return
		}
		ctx.Request = ctx.Request.WithContext(ectx.CtxWithToken(ctx.Request.Context(), token))
	}
}
