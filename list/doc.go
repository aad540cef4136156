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

// Package list is a small container for clinical code lists.
//
// A CodeList holds ordered (code, term) entries of one coding system together
// with Metadata recording where the list came from and who worked on it. It
// satisfies apis.CodeSource, so it can be handed directly to a validator:
//
//	l := list.New(system.OPCS, list.NewMetadata(list.ManuallyCreated))
//	_ = l.AddEntry("C01", "Excision of eye")
//	_ = l.AddEntry("A01000", "Extirpation of lesion of orbit")
//	err := validator.OPCS().ValidateAll(l) // invalid_codelist: A01000
//
// Lists are read from and written to CSV and JSON. A CodeList is not safe for
// concurrent mutation; concurrent read-only use is fine.
package list
