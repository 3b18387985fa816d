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

package domain

import (
	"encoding/binary"
	"math"

	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/google/uuid"
)

type User struct {
	// Id 认证服务使用 UUID
	Id       string
	FullName string
	Email    string
	Role     string
}

// SessionUid ginx 的 session 需要 int64 的 uid，取 UUID 的前 8 个字节
func (u User) SessionUid() (int64, error) {
	id, err := uuid.Parse(u.Id)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(id[:8]) & math.MaxInt64), nil
}

func (u User) Home() string {
	return roles.Home(u.Role)
}

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	FullName string
	Email    string
	Password string
	Role     string
}

// Session 登录或者注册成功之后的结果
type Session struct {
	Token string
	// TokenExp 毫秒，token 不是 JWT 的时候为 0
	TokenExp int64
	User     User
}

// Verification 认证服务对 token 的校验结果
type Verification struct {
	Ok    bool
	Email string
	Role  string
}
