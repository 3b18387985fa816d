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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/fakultet-ssz/portal/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRoleMiddlewareBuilder(t *testing.T) {
	testCases := []struct {
		name         string
		before       func(t *testing.T, ctx *gin.Context)
		wantCode     int
		wantRedirect string
		wantRole     string
	}{
		{
			name:         "未登录",
			before:       func(t *testing.T, ctx *gin.Context) {},
			wantCode:     http.StatusUnauthorized,
			wantRedirect: roles.LoginPage,
		},
		{
			name: "角色不允许",
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Set(test.SessionKey, session.NewMemorySession(test.Claims(1, roles.SSZAdmin)))
			},
			wantCode:     http.StatusForbidden,
			wantRedirect: roles.NotAuthorizedPage,
		},
		{
			name: "没有角色",
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{Uid: 1, Data: map[string]string{}}))
			},
			wantCode:     http.StatusForbidden,
			wantRedirect: roles.NotAuthorizedPage,
		},
		{
			name: "大小写敏感",
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Set(test.SessionKey, session.NewMemorySession(test.Claims(1, "Student")))
			},
			wantCode:     http.StatusForbidden,
			wantRedirect: roles.NotAuthorizedPage,
		},
		{
			name: "允许",
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Set(test.SessionKey, session.NewMemorySession(test.Claims(1, roles.Professor)))
			},
			wantCode: http.StatusOK,
			wantRole: roles.Professor,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/university/students/list", nil)
			tc.before(t, c)
			builder := NewCheckRoleMiddlewareBuilder(roles.Faculty...)
			builder.sp = &test.SessionProvider{}
			builder.Build()(c)

			assert.Equal(t, tc.wantCode, c.Writer.Status())
			assert.Equal(t, tc.wantRole, c.GetString(RoleCtxKey))
			if tc.wantRedirect == "" {
				assert.False(t, c.IsAborted())
				return
			}
			assert.True(t, c.IsAborted())
			var res test.Result[Redirect]
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tc.wantRedirect, res.Data.Redirect)
			assert.NotEmpty(t, res.Msg)
		})
	}
}
