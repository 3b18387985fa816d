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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

// NewMetricsBuilder 同一个 namespace 只能创建一次，重复注册 prometheus 会 panic
func NewMetricsBuilder(namespace string) *MetricsBuilder {
	labels := []string{"method", "path", "status_code", "role"}
	summaryVec := promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "portal 请求耗时，包含调用后端服务的时间",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		},
		labels,
	)

	counterVec := promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "portal 请求数",
		},
		labels,
	)

	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (a *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		duration := time.Since(start).Seconds()

		path := ctx.FullPath()
		if path == "" {
			// 没有匹配上路由的用一个固定值，避免 label 爆炸
			path = "unmatched"
		}
		role := ctx.GetString(RoleCtxKey)
		if role == "" {
			role = "anonymous"
		}
		labels := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status()), role}
		a.summaryVec.WithLabelValues(labels...).Observe(duration)
		a.counterVec.WithLabelValues(labels...).Inc()
	}
}
