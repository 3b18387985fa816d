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

package repository

import (
	"context"

	"github.com/fakultet-ssz/portal/internal/auth/internal/domain"
	"github.com/fakultet-ssz/portal/internal/auth/internal/repository/dao"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
)

type AuthRepository interface {
	Login(ctx context.Context, c domain.Credentials) (domain.Session, error)
	Register(ctx context.Context, r domain.Registration) (domain.Session, error)
	Verify(ctx context.Context) (domain.Verification, error)
}

type authRepository struct {
	dao dao.AuthDAO
}

func NewAuthRepository(d dao.AuthDAO) AuthRepository {
	return &authRepository{dao: d}
}

func (repo *authRepository) Login(ctx context.Context, c domain.Credentials) (domain.Session, error) {
	res, err := repo.dao.Login(ctx, dao.LoginReq{
		Email:    c.Email,
		Password: c.Password,
	})
	return repo.toDomain(res), err
}

func (repo *authRepository) Register(ctx context.Context, r domain.Registration) (domain.Session, error) {
	res, err := repo.dao.Register(ctx, dao.RegisterReq{
		FullName: r.FullName,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	})
	return repo.toDomain(res), err
}

func (repo *authRepository) Verify(ctx context.Context) (domain.Verification, error) {
	res, err := repo.dao.Verify(ctx)
	return domain.Verification{
		Ok:    res.Ok,
		Email: res.Email,
		Role:  res.Role,
	}, err
}

func (repo *authRepository) toDomain(res dao.AuthResp) domain.Session {
	var exp int64
	if t, ok := backend.TokenExpiresAt(res.Token); ok {
		exp = t.UnixMilli()
	}
	return domain.Session{
		Token:    res.Token,
		TokenExp: exp,
		User: domain.User{
			Id:       res.User.Id,
			FullName: res.User.FullName,
			Email:    res.User.Email,
			Role:     res.User.Role,
		},
	}
}
