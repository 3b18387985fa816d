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
	SystemError    = ErrorCode{Code: 403001, Msg: "Greška u sistemu."}
	InvalidInput   = ErrorCode{Code: 403002, Msg: "Neispravan zahtjev."}
	NotFound       = ErrorCode{Code: 403003, Msg: "Zapis ne postoji."}
	CreateFailed   = ErrorCode{Code: 403004, Msg: "Kreiranje nije uspjelo"}
	UpdateFailed   = ErrorCode{Code: 403005, Msg: "Update nije uspio"}
	DeleteFailed   = ErrorCode{Code: 403006, Msg: "Brisanje nije uspjelo."}
	ApplyFailed    = ErrorCode{Code: 403007, Msg: "Slanje ponude nije uspjelo."}
	ScheduleFailed = ErrorCode{Code: 403008, Msg: "Zakazivanje nije uspjelo"}
	AcceptFailed   = ErrorCode{Code: 403009, Msg: "Prihvatanje intervjua nije uspjelo."}
	RejectFailed   = ErrorCode{Code: 403010, Msg: "Odbijanje nije uspjelo."}
	HireFailed     = ErrorCode{Code: 403011, Msg: "Zaposlenje nije uspjelo."}
	QuitFailed     = ErrorCode{Code: 403012, Msg: "Napuštanje posla nije uspjelo."}
	ListFailed     = ErrorCode{Code: 403013, Msg: "Učitavanje podataka nije uspjelo."}
	InvalidType    = ErrorCode{Code: 403014, Msg: "Tip intervjua mora biti ONLINE ili IN_PERSON."}
)

type ErrorCode struct {
	Code int
	Msg  string
}
