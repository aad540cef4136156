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

import (
	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe view of the status mapping rules.
// It resolves a failure kind (optionally refined by coding system) into
// transport statuses for HTTP and gRPC.
type Mapper interface {
	// HTTPStatus returns the HTTP status for the given kind and system.
	// Without a system-specific rule it falls back to the kind-level rule.
	HTTPStatus(k kind.Kind, s system.System) int

	// GRPCStatus returns the gRPC status code for the given kind and system.
	GRPCStatus(k kind.Kind, s system.System) codes.Code

	// Status resolves both HTTP and gRPC in one call.
	Status(k kind.Kind, s system.System) Status

	// Explain returns a human-readable description of which rule matched.
	Explain(k kind.Kind, s system.System) string
}

// Status is a resolved pair of transport statuses for a single error.
type Status struct {
	HTTP int        // Resolved HTTP status code (net/http compatible).
	GRPC codes.Code // Resolved gRPC status code.
}
