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

package mapper

import (
	"net/http"

	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
	"google.golang.org/grpc/codes"
)

// ruleKey addresses a system-specific rule.
type ruleKey struct {
	kind   kind.Kind
	system system.System
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-kind HTTP defaults that override library defaults.
	httpDefaults map[kind.Kind]int
	// grpcDefaults holds per-kind gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[kind.Kind]int

	// httpOverride holds exact per-kind HTTP overrides. They win over
	// everything else, system rules included.
	httpOverride map[kind.Kind]int
	// grpcOverride holds exact per-kind gRPC overrides as ints.
	grpcOverride map[kind.Kind]int

	// httpSystem holds (kind, system) HTTP rules.
	httpSystem map[ruleKey]int
	// grpcSystem holds (kind, system) gRPC rules as ints.
	grpcSystem map[ruleKey]int

	// global fallbacks used when a kind has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[kind.Kind]int, len(defaultHTTP)),
		grpcDefaults: make(map[kind.Kind]int, len(defaultGRPC)),

		// overrides and system rules are usually few
		httpOverride: make(map[kind.Kind]int),
		grpcOverride: make(map[kind.Kind]int),
		httpSystem:   make(map[ruleKey]int),
		grpcSystem:   make(map[ruleKey]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
