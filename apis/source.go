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

package apis

import "iter"

// CodeSource is the read-only view of a code list consumed by validators.
//
// Codes yields the code of every entry in the list's natural order (usually
// insertion order). Codes that occur more than once are yielded once per
// entry. Implementations must not assume the caller looks at terms, metadata
// or mutation operations, and the caller never mutates the source.
type CodeSource interface {
	Codes() iter.Seq[string]
}

// Validator is the uniform two-operation contract every coding system
// implements.
//
// ValidateCode returns nil for a valid code, or an error whose kind is
// invalid_code_length or invalid_code_contents.
//
// ValidateAll scans a whole source without stopping at the first failure. It
// returns nil when every code is valid, otherwise a single invalid_codelist
// error holding one (code, reason) pair per invalid entry, in scan order.
type Validator interface {
	ValidateCode(code string) error
	ValidateAll(src CodeSource) error
}
