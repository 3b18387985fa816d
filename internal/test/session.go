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

package test

import (
	"context"
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/lithammer/shortuuid/v4"
)

// SessionKey 测试里把 session 直接放进 gin.Context
const SessionKey = "_session"

var errNoSession = errors.New("测试 session 不存在")

// 初始化一下 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 基于内存的 session，不需要 redis
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64,
	jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := NewSession(session.Claims{
		Uid:  uid,
		SSID: shortuuid.New(),
		Data: jwtData,
	}, sessData)
	ctx.Set(SessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(SessionKey)
	if !ok {
		return nil, errNoSession
	}
	sess, ok := val.(session.Session)
	if !ok {
		return nil, errNoSession
	}
	return sess, nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	ctx.Set(SessionKey, session.NewMemorySession(claims))
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

// Claims 构造测试用的 session 数据
func Claims(uid int64, role string, kvs ...string) session.Claims {
	data := map[string]string{
		"role": role,
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		data[kvs[i]] = kvs[i+1]
	}
	return session.Claims{
		Uid:  uid,
		SSID: shortuuid.New(),
		Data: data,
	}
}

// NewSession sessData 对应服务端 session 里面的数据
func NewSession(claims session.Claims, sessData map[string]any) session.Session {
	sess := session.NewMemorySession(claims)
	for key, val := range sessData {
		_ = sess.Set(context.Background(), key, val)
	}
	return sess
}
