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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/fakultet-ssz/portal/internal/university/internal/domain"
	"github.com/pkg/errors"
)

const expiration = 10 * time.Minute

var ErrOptionsNotFound = errors.New("下拉框选项没有缓存")

// OptionCache 表单下拉框的选项，变更之后需要删除
type OptionCache interface {
	Get(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error)
	Set(ctx context.Context, kind domain.OptionKind, opts []domain.Option) error
	Del(ctx context.Context, kind domain.OptionKind) error
}

type optionCache struct {
	ec ecache.Cache
}

func NewOptionCache(ec ecache.Cache) OptionCache {
	return &optionCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "university:options:",
		},
	}
}

func (c *optionCache) Get(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	val := c.ec.Get(ctx, string(kind))
	if val.KeyNotFound() {
		return nil, ErrOptionsNotFound
	}
	if val.Err != nil {
		return nil, val.Err
	}
	str, err := val.String()
	if err != nil {
		return nil, err
	}
	var res []domain.Option
	err = json.Unmarshal([]byte(str), &res)
	return res, errors.Wrap(err, "反序列化下拉框选项失败")
}

func (c *optionCache) Set(ctx context.Context, kind domain.OptionKind, opts []domain.Option) error {
	bytes, err := json.Marshal(opts)
	if err != nil {
		return errors.Wrap(err, "序列化下拉框选项失败")
	}
	return c.ec.Set(ctx, string(kind), string(bytes), expiration)
}

func (c *optionCache) Del(ctx context.Context, kind domain.OptionKind) error {
	_, err := c.ec.Delete(ctx, string(kind))
	return err
}
