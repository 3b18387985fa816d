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

package dao

import (
	"context"

	"github.com/fakultet-ssz/portal/internal/pkg/backend"
)

const authPath = "/auth"

type AuthDAO interface {
	Login(ctx context.Context, req LoginReq) (AuthResp, error)
	Register(ctx context.Context, req RegisterReq) (AuthResp, error)
	// Verify 校验 context 里面的 token
	Verify(ctx context.Context) (VerifyResp, error)
}

type BackendAuthDAO struct {
	client *backend.Client
}

func NewBackendAuthDAO(client *backend.Client) AuthDAO {
	return &BackendAuthDAO{client: client}
}

func (dao *BackendAuthDAO) Login(ctx context.Context, req LoginReq) (AuthResp, error) {
	var res AuthResp
	err := dao.client.Post(ctx, authPath+"/login", req, &res)
	return res, err
}

func (dao *BackendAuthDAO) Register(ctx context.Context, req RegisterReq) (AuthResp, error) {
	var res AuthResp
	err := dao.client.Post(ctx, authPath+"/register", req, &res)
	return res, err
}

func (dao *BackendAuthDAO) Verify(ctx context.Context) (VerifyResp, error) {
	var res VerifyResp
	err := dao.client.Get(ctx, authPath+"/verify", nil, &res)
	return res, err
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterReq struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type AuthResp struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	Id       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type VerifyResp struct {
	Ok    bool   `json:"ok"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
