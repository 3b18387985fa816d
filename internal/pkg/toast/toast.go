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

package toast

import (
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
)

// OK 成功提示
func OK(msg string, data any) ginx.Result {
	return ginx.Result{Msg: msg, Data: data}
}

// Fail 后端返回的错误信息优先，没有的话使用 fallback。
// 后端的 4xx 是业务错误，直接展示给用户，不再往上返回 error；
// 401 要求重新登录；其余情况返回 error，由 ginx 记录日志并返回 500
func Fail(code int, fallback string, err error) (ginx.Result, error) {
	res := ginx.Result{
		Code: code,
		Msg:  backend.Message(err, fallback),
	}
	status := backend.Status(err)
	switch {
	case status == http.StatusUnauthorized:
		return res, fmt.Errorf("%w: %w", ginx.ErrUnauthorized, err)
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return res, nil
	case status == http.StatusOK:
		// 列表接口在 200 的响应里带了 error
		return res, nil
	default:
		return res, err
	}
}

// Invalid 参数校验失败，不需要记录错误
func Invalid(code int, msg string) (ginx.Result, error) {
	return ginx.Result{Code: code, Msg: msg}, nil
}
