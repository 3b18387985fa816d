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
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/fakultet-ssz/portal/internal/auth/internal/domain"
	"github.com/fakultet-ssz/portal/internal/auth/internal/errs"
	"github.com/fakultet-ssz/portal/internal/auth/internal/service"
	"github.com/fakultet-ssz/portal/internal/pkg/backend"
	"github.com/fakultet-ssz/portal/internal/pkg/middleware"
	"github.com/fakultet-ssz/portal/internal/pkg/profile"
	"github.com/fakultet-ssz/portal/internal/pkg/roles"
	"github.com/fakultet-ssz/portal/internal/pkg/toast"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.AuthService
	logger *elog.Component
}

func NewHandler(svc service.AuthService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/auth")
	g.POST("/login", ginx.B[LoginReq](h.Login))
	g.POST("/register", ginx.B[RegisterReq](h.Register))
	g.GET("/roles", ginx.W(h.RegistrableRoles))
	g.POST("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/auth")
	g.POST("/logout", ginx.S(h.Logout))
	g.GET("/profile", ginx.S(h.Profile))
	g.GET("/verify", ginx.W(h.Verify))

	server.GET("/home", ginx.S(h.Home))
	server.GET(roles.FacultyHome+"/menu",
		middleware.NewCheckRoleMiddlewareBuilder(roles.Faculty...).Build(),
		ginx.S(h.FacultyMenu))
	server.GET(roles.EmploymentOfficeHome+"/menu",
		middleware.NewCheckRoleMiddlewareBuilder(roles.EmploymentOffice...).Build(),
		ginx.S(h.EmploymentOfficeMenu))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	sess, err := h.svc.Login(ctx.Request.Context(), domain.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.failure(errs.LoginFailed, err)
	}
	return h.startSession(ctx, sess, "Uspešno logovanje. Preusmeravam…")
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	sess, err := h.svc.Register(ctx.Request.Context(), domain.Registration{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return h.failure(errs.RegisterFailed, err)
	}
	return h.startSession(ctx, sess, "Uspešna registracija. Preusmeravam…")
}

// RegistrableRoles 注册页面的角色下拉框
func (h *Handler) RegistrableRoles(ctx *ginx.Context) (ginx.Result, error) {
	def := roles.DefaultRegistrable()
	return ginx.Result{
		Data: slice.Map(roles.Registrable, func(idx int, src string) RoleOption {
			return RoleOption{Value: src, Label: src, Default: src == def}
		}),
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := sess.Destroy(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, fmt.Errorf("退出登录失败 uid: %d: %w", sess.Claims().Uid, err)
	}
	return ginx.Result{
		Msg:  "OK",
		Data: Redirect{Redirect: roles.LoginPage},
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return ginx.Result{
		Data: profile.FromSession(sess),
	}, nil
}

// Verify 让认证服务校验当前 session 里面的 token
func (h *Handler) Verify(ctx *ginx.Context) (ginx.Result, error) {
	res, err := h.svc.Verify(ctx.Request.Context())
	if err != nil {
		if backend.Status(err) == http.StatusUnauthorized {
			return ginx.Result{Code: errs.VerifyFailed.Code, Msg: errs.VerifyFailed.Msg},
				fmt.Errorf("%w: %w", ginx.ErrUnauthorized, err)
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Verification{
			Ok:    res.Ok,
			Email: res.Email,
			Role:  res.Role,
		},
	}, nil
}

func (h *Handler) Home(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return ginx.Result{
		Data: Redirect{Redirect: roles.Home(profile.Role(sess))},
	}, nil
}

func (h *Handler) FacultyMenu(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return ginx.Result{
		Data: roles.FacultyMenu(profile.Role(sess)),
	}, nil
}

func (h *Handler) EmploymentOfficeMenu(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return ginx.Result{
		Data: roles.EmploymentOfficeMenu(profile.Role(sess)),
	}, nil
}

func (h *Handler) startSession(ctx *ginx.Context, sess domain.Session, msg string) (ginx.Result, error) {
	uid, err := sess.User.SessionUid()
	if err != nil {
		return systemErrorResult, fmt.Errorf("用户 id 不是 UUID %s: %w", sess.User.Id, err)
	}
	p := profile.Profile{
		Id:       sess.User.Id,
		FullName: sess.User.FullName,
		Email:    sess.User.Email,
		Role:     sess.User.Role,
		Home:     sess.User.Home(),
	}
	_, err = session.NewSessionBuilder(ctx, uid).
		SetJwtData(p.JwtData()).
		SetSessData(map[string]any{
			profile.KeyToken:    sess.Token,
			profile.KeyTokenExp: strconv.FormatInt(sess.TokenExp, 10),
		}).Build()
	if err != nil {
		return systemErrorResult, fmt.Errorf("创建 session 失败 uid: %d: %w", uid, err)
	}
	h.logger.Info("用户登录", elog.Int64("uid", uid), elog.String("role", p.Role))
	return ginx.Result{
		Msg:  msg,
		Data: p,
	}, nil
}

func (h *Handler) failure(fallback errs.ErrorCode, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return toast.Invalid(errs.InvalidInput.Code, "Email i lozinka su obavezni.")
	case errors.Is(err, service.ErrMissingRegistration):
		return toast.Invalid(errs.InvalidInput.Code, "Ime, email i lozinka su obavezni.")
	case errors.Is(err, service.ErrInvalidRole):
		return toast.Invalid(errs.InvalidRole.Code, errs.InvalidRole.Msg)
	case errors.Is(err, service.ErrMissingToken):
		return ginx.Result{Code: errs.MissingToken.Code, Msg: errs.MissingToken.Msg}, err
	case errors.Is(err, backend.ErrUnavailable):
		return ginx.Result{Code: errs.NetworkError.Code, Msg: errs.NetworkError.Msg}, err
	}
	// 登录失败的 401 也是业务错误，直接展示后端的信息
	if status := backend.Status(err); status >= http.StatusBadRequest && status < http.StatusInternalServerError {
		return ginx.Result{Code: fallback.Code, Msg: backend.Message(err, fallback.Msg)}, nil
	}
	return toast.Fail(fallback.Code, fallback.Msg, err)
}
