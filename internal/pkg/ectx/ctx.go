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

package ectx

import "context"

type tokenContextType string

var (
	tokenCtxKey tokenContextType = "backend-token"
)

// GetTokenFromCtx 取出调用后端服务时使用的 bearer token
func GetTokenFromCtx(ctx context.Context) (string, bool) {
	val := ctx.Value(tokenCtxKey)
	if val == nil {
		return "", false
	}
	v, ok := val.(string)
	return v, ok && v != ""
}

func CtxWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey, token)
}
