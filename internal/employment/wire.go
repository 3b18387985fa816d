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

package employment

import (
	"github.com/fakultet-ssz/portal/internal/employment/internal/repository"
	"github.com/fakultet-ssz/portal/internal/employment/internal/repository/dao"
	"github.com/fakultet-ssz/portal/internal/employment/internal/service"
	"github.com/fakultet-ssz/portal/internal/employment/internal/web"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/google/wire"
)

var daoSet = wire.NewSet(
	dao.NewCandidateDAO,
	dao.NewEmployeeDAO,
	dao.NewJobDAO,
	dao.NewJobApplicationDAO,
	dao.NewInterviewDAO,
	dao.NewProfessorDAO,
	dao.NewActionDAO,
)

var repositorySet = wire.NewSet(
	repository.NewCandidateRepository,
	repository.NewEmployeeRepository,
	repository.NewJobRepository,
	repository.NewJobApplicationRepository,
	repository.NewInterviewRepository,
	repository.NewActionRepository,
)

var serviceSet = wire.NewSet(
	service.NewCandidateService,
	service.NewEmployeeService,
	service.NewJobService,
	service.NewJobApplicationService,
	service.NewInterviewService,
)

var handlerSet = wire.NewSet(
	web.NewCandidateHandler,
	web.NewEmployeeHandler,
	web.NewJobHandler,
	web.NewJobApplicationHandler,
	web.NewInterviewHandler,
	web.NewHandler,
)

func InitModule(client *backend.Client) *Module {
	wire.Build(
		daoSet,
		repositorySet,
		serviceSet,
		handlerSet,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
