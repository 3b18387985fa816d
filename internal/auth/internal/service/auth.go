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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fakultet-ssz/portal/internal/auth/internal/domain"
	"github.com/fakultet-ssz/portal/internal/auth/internal/repository"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
)

var (
	ErrMissingCredentials  = errors.New("缺少邮箱或者密码")
	ErrMissingRegistration = errors.New("缺少姓名、邮箱或者密码")
	ErrInvalidRole         = errors.New("不允许注册的角色")
	ErrMissingToken        = errors.New("认证服务没有返回 token")
)

//go:generate mockgen -source=./auth.go -package=authmocks -destination=../../mocks/auth.mock.go -typed AuthService
type AuthService interface {
	Login(ctx context.Context, c domain.Credentials) (domain.Session, error)
	// Register 注册成功之后直接登录
	Register(ctx context.Context, r domain.Registration) (domain.Session, error)
	Verify(ctx context.Context) (domain.Verification, error)
}

type authService struct {
	repo repository.AuthRepository
}

func NewAuthService(repo repository.AuthRepository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Login(ctx context.Context, c domain.Credentials) (domain.Session, error) {
	c.Email = strings.TrimSpace(c.Email)
	// 密码原样发给后端，只有空白也算没填
	if c.Email == "" || strings.TrimSpace(c.Password) == "" {
		return domain.Session{}, ErrMissingCredentials
	}
	sess, err := s.repo.Login(ctx, c)
	if err != nil {
		return domain.Session{}, fmt.Errorf("登录失败 email: %s: %w", c.Email, err)
	}
	return s.checkToken(sess)
}

func (s *authService) Register(ctx context.Context, r domain.Registration) (domain.Session, error) {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	if r.FullName == "" || r.Email == "" || strings.TrimSpace(r.Password) == "" {
		return domain.Session{}, ErrMissingRegistration
	}
	if r.Role == "" {
		r.Role = roles.DefaultRegistrable()
	}
	if !roles.IsRegistrable(r.Role) {
		return domain.Session{}, fmt.Errorf("%w: %s", ErrInvalidRole, r.Role)
	}
	sess, err := s.repo.Register(ctx, r)
	if err != nil {
		return domain.Session{}, fmt.Errorf("注册失败 email: %s: %w", r.Email, err)
	}
	return s.checkToken(sess)
}

func (s *authService) Verify(ctx context.Context) (domain.Verification, error) {
	return s.repo.Verify(ctx)
}

func (s *authService) checkToken(sess domain.Session) (domain.Session, error) {
	if sess.Token == "" {
		return domain.Session{}, ErrMissingToken
	}
	return sess, nil
}
