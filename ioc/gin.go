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

package ioc

import (
	"net/http"
	"slices"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/fakultet-ssz/portal/config"
	"github.com/fakultet-ssz/portal/internal/auth"
	"github.com/fakultet-ssz/portal/internal/employment"
	"github.com/fakultet-ssz/portal/internal/pkg/middleware"
	"github.com/fakultet-ssz/portal/internal/university"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	authHdl *auth.Handler,
	universityHdl *university.Handler,
	employmentHdl *employment.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	var corsCfg config.CorsConfig
	err := econf.UnmarshalKey("cors", &corsCfg)
	if err != nil {
		panic(err)
	}
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder("portal").Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return slices.ContainsFunc(corsCfg.AllowedOrigins, func(allowed string) bool {
				return strings.Contains(origin, allowed)
			})
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	authHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	// 把后端的 token 带到下游请求
	res.Use(middleware.NewBackendTokenBuilder().Build())
	authHdl.PrivateRoutes(res.Engine)
	universityHdl.PrivateRoutes(res.Engine)
	employmentHdl.PrivateRoutes(res.Engine)
	return res
}
