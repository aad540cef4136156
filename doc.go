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

// Package codelist is the error taxonomy of the clinical code-list toolkit.
//
// Every failure the toolkit reports is a *codelist.Error tagged with a
// kind.Kind. The three validation variants are:
//
//   - kind.InvalidCodeLength: a code is too short or too long for its
//     coding system;
//   - kind.InvalidCodeContents: a code has an acceptable length but does not
//     match the coding system's grammar;
//   - kind.InvalidCodelist: the aggregate result of validating a whole list,
//     with one (code, reason) pair per invalid entry.
//
// Grammars live in codelist/grammar, the list-level protocol in
// codelist/validator, and the registry of coding systems in
// codelist/registry.
//
//	v, _ := reg.Validator(system.OPCS)
//	if err := v.ValidateAll(list); err != nil {
//		var cerr *codelist.Error
//		if errors.As(err, &cerr) {
//			for _, f := range cerr.Reasons {
//				fmt.Println(f.Code, f.Reason)
//			}
//		}
//	}
package codelist
