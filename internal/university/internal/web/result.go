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
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/pkg/toast"
	"github.com/fakultet-ssz/portal/internal/university/internal/errs"
	"github.com/fakultet-ssz/portal/internal/university/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func failure(fallback errs.ErrorCode, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrMissingId):
		return toast.Invalid(errs.InvalidInput.Code, errs.InvalidInput.Msg)
	case errors.Is(err, service.ErrInvalidGrade):
		return toast.Invalid(errs.InvalidGrade.Code, errs.InvalidGrade.Msg)
	case errors.Is(err, service.ErrInvalidExamTime):
		return toast.Invalid(errs.InvalidInput.Code, "Neispravno vrijeme ispita.")
	case errors.Is(err, backend.ErrNotFound):
		return toast.Invalid(errs.NotFound.Code, errs.NotFound.Msg)
	case errors.Is(err, backend.ErrUnavailable):
		return systemErrorResult, err
	}
	return toast.Fail(fallback.Code, fallback.Msg, err)
}
