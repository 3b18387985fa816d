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

package profile

import (
	"context"

	"github.com/ecodeclub/ginx/session"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
)

// JWT 里面的字段，前端可以看到
const (
	KeyUserId   = "userId"
	KeyFullName = "fullName"
	KeyEmail    = "email"
	KeyRole     = "role"
)

// 只放在服务端 session 里面的字段
const (
	KeyToken    = "token"
	KeyTokenExp = "tokenExp"
)

type Profile struct {
	Id       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Home     string `json:"home"`
}

func (p Profile) JwtData() map[string]string {
	return map[string]string{
		KeyUserId:   p.Id,
		KeyFullName: p.FullName,
		KeyEmail:    p.Email,
		KeyRole:     p.Role,
	}
}

func FromClaims(claims session.Claims) Profile {
	role := claims.Get(KeyRole).StringOrDefault("")
	return Profile{
		Id:       claims.Get(KeyUserId).StringOrDefault(""),
		FullName: claims.Get(KeyFullName).StringOrDefault(""),
		Email:    claims.Get(KeyEmail).StringOrDefault(""),
		Role:     role,
		Home:     roles.Home(role),
	}
}

func FromSession(sess session.Session) Profile {
	return FromClaims(sess.Claims())
}

func Role(sess session.Session) string {
	return sess.Claims().Get(KeyRole).StringOrDefault("")
}

// Token 后端签发的 token
func Token(ctx context.Context, sess session.Session) string {
	return sess.Get(ctx, KeyToken).StringOrDefault("")
}
