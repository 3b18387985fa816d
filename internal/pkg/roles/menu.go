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

package roles

// MenuItem 首页的入口
type MenuItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

type Menu struct {
	Items []MenuItem `json:"items"`
	// CanQuitJob 员工可以 "Daj otkaz"
	CanQuitJob bool `json:"canQuitJob"`
}

type menuEntry struct {
	item    MenuItem
	allowed []string
}

var facultyMenu = []menuEntry{
	{item: MenuItem{Title: "Studenti", Path: FacultyHome + "/studenti"}, allowed: Faculty},
	{item: MenuItem{Title: "Profesori", Path: FacultyHome + "/profesori"}, allowed: Faculty},
	{item: MenuItem{Title: "Kursevi", Path: FacultyHome + "/kursevi"}, allowed: Faculty},
	{item: MenuItem{Title: "Ispiti", Path: FacultyHome + "/ispiti"}, allowed: Faculty},
}

var employmentOfficeMenu = []menuEntry{
	{item: MenuItem{Title: "Kandidati", Path: EmploymentOfficeHome + "/kandidati"}, allowed: []string{SSZAdmin}},
	{item: MenuItem{Title: "Zaposleni", Path: EmploymentOfficeHome + "/zaposleni"}, allowed: []string{SSZAdmin}},
	{item: MenuItem{Title: "Vidi Kolege", Path: EmploymentOfficeHome + "/kolege"}, allowed: []string{Employee}},
	{item: MenuItem{Title: "Svi Poslovi", Path: EmploymentOfficeHome + "/poslovi"}, allowed: []string{SSZAdmin, Candidate}},
	{item: MenuItem{Title: "Prijave za posao", Path: EmploymentOfficeHome + "/prijave-za-posao"}, allowed: []string{SSZAdmin}},
	{item: MenuItem{Title: "Intervjui", Path: EmploymentOfficeHome + "/intervjui"}, allowed: []string{SSZAdmin}},
}

func FacultyMenu(role string) Menu {
	return Menu{Items: filter(facultyMenu, role)}
}

func EmploymentOfficeMenu(role string) Menu {
	return Menu{
		Items:      filter(employmentOfficeMenu, role),
		CanQuitJob: role == Employee,
	}
}

func filter(entries []menuEntry, role string) []MenuItem {
	res := make([]MenuItem, 0, len(entries))
	for _, e := range entries {
		if Is(role, e.allowed...) {
			res = append(res, e.item)
		}
	}
	return res
}
