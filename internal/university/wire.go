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

package university

import (
	"github.com/ecodeclub/ecache"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/cache"
	"github.com/fakultet-ssz/portal/internal/university/internal/repository/dao"
	"github.com/fakultet-ssz/portal/internal/university/internal/service"
	"github.com/fakultet-ssz/portal/internal/university/internal/web"
	"github.com/google/wire"
)

var daoSet = wire.NewSet(
	dao.NewStudentDAO,
	dao.NewProfessorDAO,
	dao.NewCourseDAO,
	dao.NewProgramDAO,
	dao.NewExamDAO,
	dao.NewRegistrationDAO,
)

var repositorySet = wire.NewSet(
	cache.NewOptionCache,
	repository.NewStudentRepository,
	repository.NewProfessorRepository,
	repository.NewCourseRepository,
	repository.NewProgramRepository,
	repository.NewExamRepository,
	repository.NewRegistrationRepository,
	repository.NewCachedOptionRepository,
)

var serviceSet = wire.NewSet(
	service.NewStudentService,
	service.NewProfessorService,
	service.NewCourseService,
	service.NewProgramService,
	service.NewExamService,
	service.NewExamRegistrationService,
)

var handlerSet = wire.NewSet(
	web.NewStudentHandler,
	web.NewProfessorHandler,
	web.NewCourseHandler,
	web.NewProgramHandler,
	web.NewExamHandler,
	web.NewExamRegistrationHandler,
	web.NewHandler,
)

func InitModule(client *backend.Client, ec ecache.Cache) *Module {
	wire.Build(
		daoSet,
		repositorySet,
		serviceSet,
		handlerSet,
		wire.Struct(new(Module), "Hdl", "StudentSvc", "ExamSvc"),
	)
	return new(Module)
}
