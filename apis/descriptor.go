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

// ErrorDescriptor is a flat description of an error together with the
// transport statuses it resolved to. It is meant for structured logging and
// message-bus propagation.
type ErrorDescriptor struct {
	// Kind is the canonical failure kind.
	Kind string `json:"kind"`

	// System is the coding system, when the error is attributed to one.
	System string `json:"system,omitempty"`

	// HTTPStatus is the resolved HTTP status. 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status code as an integer.
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the rendered error string.
	Message string `json:"message,omitempty"`

	// Invalid is the number of invalid entries for aggregate failures.
	Invalid int `json:"invalid,omitempty"`
}
