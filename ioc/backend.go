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

package ioc

import (
	"github.com/ecodeclub/ecache"
	"github.com/fakultet-ssz/portal/internal/auth"
	"github.com/fakultet-ssz/portal/internal/employment"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/university"
)

// 每个模块使用自己的后端服务，client 不共享

func InitAuthModule() *auth.Module {
	return auth.InitModule(backend.Load("backend.auth").Build())
}

func InitUniversityModule(ec ecache.Cache) *university.Module {
	return university.InitModule(backend.Load("backend.university").Build(), ec)
}

func InitEmploymentModule() *employment.Module {
	return employment.InitModule(backend.Load("backend.employment").Build())
}
