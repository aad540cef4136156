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

// Package kind provides parsing, normalization and validation for codelist
// failure kinds.
//
// A "kind" is the machine-readable tag of a codelist error, such as
// "invalid_code_length", "invalid_codelist" or "entry_not_found". Kinds are:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for JSON/proto payloads and for lookup in status mappers.
//
// The set of kinds the module itself produces is closed and declared in
// kinds.go. Callers branch on these values instead of on rendered messages.
package kind
