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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/fakultet-ssz/portal/internal/employment/internal/errs"
	"github.com/fakultet-ssz/portal/internal/employment/internal/service"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/pkg/toast"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func failure(fallback errs.ErrorCode, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrMissingId), errors.Is(err, service.ErrInvalidInterview):
		return toast.Invalid(errs.InvalidInput.Code, errs.InvalidInput.Msg)
	case errors.Is(err, service.ErrMissingEmail):
		return toast.Invalid(fallback.Code, fallback.Msg)
	case errors.Is(err, service.ErrInvalidInterviewType):
		return toast.Invalid(errs.InvalidType.Code, errs.InvalidType.Msg)
	case errors.Is(err, backend.ErrUnavailable):
		return systemErrorResult, err
	}
	return toast.Fail(fallback.Code, fallback.Msg, err)
}
