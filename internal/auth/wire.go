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

//go:build wireinject

package auth

import (
	"github.com/fakultet-ssz/portal/internal/auth/internal/repository"
	"github.com/fakultet-ssz/portal/internal/auth/internal/repository/dao"
	"github.com/fakultet-ssz/portal/internal/auth/internal/service"
	"github.com/fakultet-ssz/portal/internal/auth/internal/web"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	InitService,
	web.NewHandler,
)

func InitModule(client *backend.Client) *Module {
	wire.Build(HandlerSet, wire.Struct(new(Module), "*"))
	return new(Module)
}

func InitService(client *backend.Client) Service {
	wire.Build(
		dao.NewBackendAuthDAO,
		repository.NewAuthRepository,
		service.NewAuthService,
	)
	return nil
}
