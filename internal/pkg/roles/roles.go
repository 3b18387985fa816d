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

import "slices"

const (
	Student      = "student"
	Professor    = "professor"
	FacultyAdmin = "facultyadmin"
	Employee     = "employee"
	Candidate    = "candidate"
	SSZAdmin     = "sszadmin"
)

const (
	FacultyHome          = "/fakultet"
	EmploymentOfficeHome = "/sluzba-za-zaposljavanje"
	LoginPage            = "/auth/login"
	NotAuthorizedPage    = "/not-authorized"
)

var (
	Faculty          = []string{Student, Professor, FacultyAdmin}
	EmploymentOffice = []string{Employee, Candidate, SSZAdmin}
	// Registrable 注册页面可选的角色，第一个是默认值
	Registrable = []string{SSZAdmin, FacultyAdmin}
)

// Is 大小写敏感
func Is(role string, allowed ...string) bool {
	return slices.Contains(allowed, role)
}

func IsFaculty(role string) bool {
	return Is(role, Faculty...)
}

func IsEmploymentOffice(role string) bool {
	return Is(role, EmploymentOffice...)
}

func Home(role string) string {
	if IsFaculty(role) {
		return FacultyHome
	}
	return EmploymentOfficeHome
}

func IsRegistrable(role string) bool {
	return Is(role, Registrable...)
}

// DefaultRegistrable 注册时没有选角色就用这个
func DefaultRegistrable() string {
	return Registrable[0]
}
