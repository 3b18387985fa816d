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

package textx

import (
	"regexp"
	"strings"
)

var (
	tagRegexp        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegexp = regexp.MustCompile(`\s+`)
	entityReplacer   = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", "\"",
		"&#39;", "'",
		"&nbsp;", " ",
	)
)

// StripHTML 去掉 HTML 标签和实体，压缩空白。
// 招聘描述可能是富文本，表格里只展示纯文本
func StripHTML(content string) string {
	content = tagRegexp.ReplaceAllString(content, " ")
	content = entityReplacer.Replace(content)
	content = whitespaceRegexp.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}
