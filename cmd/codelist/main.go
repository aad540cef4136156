/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command codelist validates clinical code lists against the grammar of their
// coding system.
//
//	codelist validate --system opcs procedures.csv
//	codelist check --system icd10 A00.1 A0
//	codelist systems --describe
//
// Configuration comes from CODELIST_* environment variables (optionally from
// a .env file) and is overridden by flags. The exit status is 0 when every
// list is valid, 1 when a list or code is invalid and 2 on usage, config or
// I/O errors.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
