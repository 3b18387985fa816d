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

const (
	Ellipsis = "..."
	// DescriptionLimit 表格里描述列最多展示的字符数
	DescriptionLimit = 15
)

// Truncate 按字符而不是字节截断，超长时追加 ...
func Truncate(text string, limit int) string {
	if text == "" || limit <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + Ellipsis
}

// Summary 表格里的描述列
func Summary(content string) string {
	return Truncate(StripHTML(content), DescriptionLimit)
}
