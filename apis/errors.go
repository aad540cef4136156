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

// KindedError represents an error classified by a machine-readable kind,
// such as "invalid_code_length" or "entry_not_found".
//
// Kinds are stable and enumerable; adapters use them to pick transport
// statuses. Implementations return a canonical kind as enforced by the
// codelist/kind package.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable kind. It MUST be non-empty.
	ErrorKind() string
}

// SystemError represents an error attributed to one coding system, such as a
// code rejected by the OPCS grammar.
type SystemError interface {
	error

	// ErrorSystem returns the canonical coding system, or "" when the error
	// is not tied to one.
	ErrorSystem() string
}

// DetailedError represents an error that exposes zero or more structured
// details. An aggregate list failure exposes one detail per invalid code so
// callers can show *all* of them.
//
// Implementations SHOULD return a fresh slice. Returning nil means "no extra
// details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}
