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

// ViewProvider is implemented by errors that can produce a transport-friendly
// representation of themselves.
type ViewProvider interface {
	error

	// ErrorView returns a transport-friendly snapshot of the error.
	ErrorView() ErrorView
}

// ErrorView is a minimal, serializable representation of an error. It is the
// shape exposed over HTTP and in logs, not the concrete error type.
type ErrorView struct {
	// Kind is the canonical failure kind.
	Kind string `json:"kind"`

	// System is the coding system that rejected the input, if any.
	System string `json:"system,omitempty"`

	// Message is the rendered error string.
	Message string `json:"message,omitempty"`

	// Details lists every invalid entry for aggregate failures, or the single
	// offending code for per-code failures.
	Details []Detail `json:"details,omitempty"`
}
