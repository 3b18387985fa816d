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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fakultet-ssz/portal/internal/pkg/ectx"
	"github.com/fakultet-ssz/portal/internal/pkg/pagination"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type student struct {
	Id       string `json:"id"`
	Fullname string `json:"fullname"`
}

func TestClient_Token(t *testing.T) {
	var (
		gotAuth      string
		gotRequestId string
		gotPath      string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestId = r.Header.Get(requestIdHeader)
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"1","fullname":"Ana"}`))
	}))
	defer server.Close()

	client := NewClient("test", Config{Addr: server.URL, Timeout: time.Second})

	var res student
	err := client.Get(ectx.CtxWithToken(context.Background(), "abc"), "/university/students/1", nil, &res)
	require.NoError(t, err)
	assert.Equal(t, student{Id: "1", Fullname: "Ana"}, res)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.NotEmpty(t, gotRequestId)
	assert.Equal(t, "/api/v1/university/students/1", gotPath)

	err = client.Get(context.Background(), "/university/students/1", nil, &res)
	require.NoError(t, err)
	assert.Equal(t, "", gotAuth)
}

func TestClient_Error(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		body      string
		wantMsg   string
		wantFound bool
	}{
		{
			name:    "纯文本",
			status:  http.StatusBadRequest,
			body:    "student already exists\n",
			wantMsg: "student already exists",
		},
		{
			name:    "error 字段",
			status:  http.StatusUnauthorized,
			body:    `{"error":"invalid credentials"}`,
			wantMsg: "invalid credentials",
		},
		{
			name:    "message 字段",
			status:  http.StatusInternalServerError,
			body:    `{"message":"db down"}`,
			wantMsg: "db down",
		},
		{
			name:      "不存在",
			status:    http.StatusNotFound,
			body:      "not found",
			wantMsg:   "not found",
			wantFound: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()
			client := NewClient("test", Config{Addr: server.URL})
			err := client.Delete(context.Background(), "/university/students/1", nil)
			require.Error(t, err)
			assert.Equal(t, tc.wantMsg, Message(err, "fallback"))
			assert.Equal(t, tc.status, Status(err))
			assert.Equal(t, tc.wantFound, errors.Is(err, ErrNotFound))
		})
	}
}

func TestClient_Unavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	client := NewClient("test", Config{Addr: addr, Timeout: time.Second})
	err := client.Get(context.Background(), "/university/students", nil, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, "fallback", Message(err, "fallback"))
	assert.Equal(t, 0, Status(err))
}

func TestResource(t *testing.T) {
	var (
		gotMethod string
		gotQuery  string
		gotBody   string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/university/students":
			_, _ = w.Write([]byte(`{"students":[{"id":"1","fullname":"Ana"}],"page":2,"totalItems":11,"totalPages":2}`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			_, _ = w.Write(body)
		}
	}))
	defer server.Close()

	res := NewResource[student](NewClient("test", Config{Addr: server.URL}), "/university/students", "students")

	page, err := res.List(context.Background(), pagination.Query{Page: 2, Limit: 10, Search: "an"})
	require.NoError(t, err)
	assert.Equal(t, Page[student]{
		Items:      []student{{Id: "1", Fullname: "Ana"}},
		Page:       2,
		TotalItems: 11,
		TotalPages: 2,
	}, page)
	assert.Equal(t, "max=10&page=2&search=an", gotQuery)

	updated, err := res.Update(context.Background(), "1", student{Id: "1", Fullname: "Ana M"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "Ana M", updated.Fullname)

	created, err := res.Create(context.Background(), student{Fullname: "Nina"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Nina", created.Fullname)
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(gotBody), &sent))
	assert.Equal(t, "Nina", sent["fullname"])

	err = res.Delete(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestResource_Path(t *testing.T) {
	res := NewResource[student](nil, "/employmentOffice/jobs", "jobs")
	assert.Equal(t, "/employmentOffice/jobs", res.Path())
	assert.Equal(t, "/employmentOffice/jobs/1/a%40b.rs/apply", res.Path("1", "a@b.rs", "apply"))
}

func TestDecodePage(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    Page[student]
		wantErr string
	}{
		{
			name: "空列表",
			body: `{"students":null,"page":1,"totalItems":0,"totalPages":0}`,
			want: Page[student]{Items: []student{}, Page: 1},
		},
		{
			name: "没有 listKey",
			body: `{"page":1}`,
			want: Page[student]{Items: []student{}, Page: 1},
		},
		{
			name:    "error 字段",
			body:    `{"students":[],"error":"search failed"}`,
			wantErr: "search failed",
		},
		{
			name: "空 error 字段",
			body: `{"students":[{"id":"2"}],"error":"","totalItems":1,"totalPages":1}`,
			want: Page[student]{Items: []student{{Id: "2"}}, TotalItems: 1, TotalPages: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var raw map[string]json.RawMessage
			require.NoError(t, json.Unmarshal([]byte(tc.body), &raw))
			page, err := DecodePage[student](raw, "students")
			if tc.wantErr != "" {
				assert.Equal(t, tc.wantErr, Message(err, ""))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, page)
		})
	}
}
