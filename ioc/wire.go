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

package ioc

import (
	"github.com/fakultet-ssz/portal/internal/auth"
	"github.com/fakultet-ssz/portal/internal/employment"
	"github.com/fakultet-ssz/portal/internal/university"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitAuthModule,
		InitUniversityModule,
		InitEmploymentModule,
		wire.FieldsOf(new(*auth.Module), "Hdl"),
		wire.FieldsOf(new(*university.Module), "Hdl"),
		wire.FieldsOf(new(*employment.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
