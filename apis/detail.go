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

// Detail is a single structured piece of information attached to an error.
// It is a *view type*: small, transport-friendly and safe to marshal.
//
// For list validation one Detail describes one invalid entry.
type Detail struct {
	// Type is the kind of the underlying per-code failure, e.g.
	// "invalid_code_length" or "invalid_code_contents".
	Type string `json:"type,omitempty"`

	// Code is the offending code exactly as it was stored in the list.
	Code string `json:"code,omitempty"`

	// Reason is the human-readable explanation of why Code is invalid.
	Reason string `json:"reason,omitempty"`

	// Info carries optional extra data (for example, the coding system).
	Info map[string]string `json:"info,omitempty"`
}
