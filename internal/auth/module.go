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

package auth

import (
	"github.com/fakultet-ssz/portal/internal/auth/internal/domain"
	"github.com/fakultet-ssz/portal/internal/auth/internal/service"
	"github.com/fakultet-ssz/portal/internal/auth/internal/web"
)

type (
	Handler = web.Handler
	Service = service.AuthService
	User    = domain.User
)

type Module struct {
	Hdl *Handler
	Svc Service
}
