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

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fakultet-ssz/portal/internal/pkg/ectx"
	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const requestIdHeader = "X-Request-Id"

// Client 指向某一个后端服务的 HTTP 客户端。
// 如果 context 里面有 token，会自动带上 Authorization: Bearer <token>
type Client struct {
	name   string
	client *resty.Client
	tracer trace.Tracer
	logger *elog.Component
}

func NewClient(name string, cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.Addr, "/") + basePath).
		SetTimeout(cfg.Timeout).
		SetDebug(cfg.Debug).
		SetHeader("Content-Type", "application/json")
	c := &Client{
		name:   name,
		client: rc,
		tracer: otel.Tracer("github.com/fakultet-ssz/portal/internal/pkg/backend"),
		logger: elog.DefaultLogger,
	}
	rc.OnBeforeRequest(c.attachHeaders)
	return c
}

func (c *Client) attachHeaders(_ *resty.Client, req *resty.Request) error {
	if token, ok := ectx.GetTokenFromCtx(req.Context()); ok {
		req.SetAuthToken(token)
	}
	req.SetHeader(requestIdHeader, shortuuid.New())
	return nil
}

func (c *Client) Get(ctx context.Context, path string, params map[string]string, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string,
	params map[string]string, body, out any) error {
	ctx, span := c.tracer.Start(ctx, method+" "+path, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.String("backend.name", c.name))

	req := c.client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("调用后端服务失败",
			elog.FieldErr(err),
			elog.String("backend", c.name),
			elog.String("method", method),
			elog.String("path", path))
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if resp.IsError() {
		apiErr := newAPIError(resp.StatusCode(), resp.Body())
		span.SetStatus(codes.Error, apiErr.Message)
		return apiErr
	}
	payload := bytes.TrimSpace(resp.Body())
	if out == nil || len(payload) == 0 {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(payload, out), "解析后端响应失败 %s %s", method, path)
}
