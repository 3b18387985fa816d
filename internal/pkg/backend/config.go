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
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

const basePath = "/api/v1"

type Config struct {
	// Addr 后端服务地址，例如 http://localhost:8081
	Addr    string        `yaml:"addr"`
	Timeout time.Duration `yaml:"timeout"`
	Debug   bool          `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Timeout: 5 * time.Second,
	}
}

type Container struct {
	name   string
	config Config
}

// Load 按照 ego 组件的习惯从配置中读取，例如 Load("backend.university")
func Load(key string) *Container {
	cfg := DefaultConfig()
	if err := econf.UnmarshalKey(key, &cfg); err != nil {
		elog.Panic("解析后端服务配置失败", elog.FieldErr(err), elog.String("key", key))
	}
	if cfg.Addr == "" {
		elog.Panic("后端服务地址未配置", elog.String("key", key))
	}
	return &Container{name: key, config: cfg}
}

func (c *Container) Build() *Client {
	return NewClient(c.name, c.config)
}
