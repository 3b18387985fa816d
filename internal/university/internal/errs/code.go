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

package errs

var (
	SystemError  = ErrorCode{Code: 402001, Msg: "Greška u sistemu."}
	InvalidInput = ErrorCode{Code: 402002, Msg: "Neispravan zahtjev."}
	NotFound     = ErrorCode{Code: 402003, Msg: "Zapis ne postoji."}
	CreateFailed = ErrorCode{Code: 402004, Msg: "Kreiranje nije uspjelo"}
	UpdateFailed = ErrorCode{Code: 402005, Msg: "Update nije uspio"}
	DeleteFailed = ErrorCode{Code: 402006, Msg: "Brisanje nije uspjelo."}
	JoinFailed   = ErrorCode{Code: 402007, Msg: "Upis na kurs nije uspio."}
	EnterFailed  = ErrorCode{Code: 402008, Msg: "Prijava ispita nije uspjela."}
	GradeFailed  = ErrorCode{Code: 402009, Msg: "Ocjenjivanje nije uspjelo."}
	InvalidGrade = ErrorCode{Code: 402010, Msg: "Ocjena mora biti izmedju 5 i 10."}
	ListFailed   = ErrorCode{Code: 402011, Msg: "Učitavanje podataka nije uspjelo."}
)

type ErrorCode struct {
	Code int
	Msg  string
}
