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
	"strings"
	"time"
)

const (
	DisplayLayout = "January 2, 2006, 3:04 PM"
	// InputLayout <input type="datetime-local"> 的格式
	InputLayout = "2006-01-02T15:04"
)

// FormatDateTime 无法解析的原样返回
func FormatDateTime(s string) string {
	t, ok := ParseDateTime(s)
	if !ok {
		return s
	}
	return t.Format(DisplayLayout)
}

func ParseDateTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, InputLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDateTime 把 YYYY-MM-DDTHH:MM 补全成 RFC3339，其余原样返回
func NormalizeDateTime(s string) string {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(InputLayout, s); err == nil {
		return s + ":00Z"
	}
	return s
}

type YesNoLabels struct {
	Yes string
	No  string
}

var (
	UpperYesNo = YesNoLabels{Yes: "DA", No: "NE"}
	TitleYesNo = YesNoLabels{Yes: "Da", No: "Ne"}
	HasHasNot  = YesNoLabels{Yes: "Ima", No: "Nema"}
)

func (l YesNoLabels) Of(val bool) string {
	if val {
		return l.Yes
	}
	return l.No
}

// OrDash 空值展示成 -
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
