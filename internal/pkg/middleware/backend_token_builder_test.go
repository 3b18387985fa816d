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
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/fakultet-ssz/portal/internal/pkg/ectx"
	"github.com/fakultet-ssz/portal/internal/pkg/profile"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/fakultet-ssz/portal/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestBackendTokenBuilder(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	valid := signToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})
	expired := signToken(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()})

	testCases := []struct {
		name      string
		before    func(t *testing.T, ctx *gin.Context)
		wantCode  int
		wantToken string
		wantAbort bool
	}{
		{
			name:     "未登录",
			before:   func(t *testing.T, ctx *gin.Context) {},
			wantCode: http.StatusOK,
		},
		{
			name: "没有 token",
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Set(test.SessionKey, session.NewMemorySession(test.Claims(1, roles.Student)))
			},
			wantCode: http.StatusOK,
		},
		{
			name: "token 有效",
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Set(test.SessionKey, test.NewSession(test.Claims(1, roles.Student), map[string]any{profile.KeyToken: valid}))
			},
			wantCode:  http.StatusOK,
			wantToken: valid,
		},
		{
			name: "不是 JWT",
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Set(test.SessionKey, test.NewSession(test.Claims(1, roles.Student), map[string]any{profile.KeyToken: "opaque"}))
			},
			wantCode:  http.StatusOK,
			wantToken: "opaque",
		},
		{
			name: "token 过期",
			before: func(t *testing.T, ctx *gin.Context) {
				ctx.Set(test.SessionKey, test.NewSession(test.Claims(1, roles.Student), map[string]any{profile.KeyToken: expired}))
			},
			wantCode:  http.StatusUnauthorized,
			wantAbort: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/university/students/list", nil)
			tc.before(t, c)
			builder := NewBackendTokenBuilder()
			builder.sp = &test.SessionProvider{}
			builder.now = func() time.Time { return now }
			builder.Build()(c)

			assert.Equal(t, tc.wantCode, c.Writer.Status())
			assert.Equal(t, tc.wantAbort, c.IsAborted())
			token, _ := ectx.GetTokenFromCtx(c.Request.Context())
			assert.Equal(t, tc.wantToken, token)
		})
	}
}
