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

// Package mapper provides deterministic, immutable mappings from failure
// kinds (dirpx.dev/codelist/kind), optionally refined by coding system
// (dirpx.dev/codelist/system), to transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// A codelist error is classified by two values:
//
//  1. a Kind (e.g. kind.InvalidCodeLength, kind.InvalidCodelist),
//  2. an optional System (e.g. system.OPCS) naming the grammar that
//     rejected the input.
//
// Transport layers (HTTP handlers, gRPC servers) need to turn this pair into
// concrete status codes. A Mapper is an immutable snapshot, safe for
// concurrent reuse, that resolves HTTP and gRPC with the same logic.
//
// # Resolution model
//
//  1. exact override for the Kind;
//  2. (Kind, System) rule;
//  3. per-Kind default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// # Library defaults
//
// Validation kinds map to 400 / InvalidArgument, except the aggregate
// invalid_codelist which maps to 422 / InvalidArgument. Not-found kinds map to
// 404 / NotFound, comment_already_exists to 409 / AlreadyExists, and the
// wrapped json, csv and io kinds to 500 / Internal.
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(kind.InvalidCodelist, http.StatusBadRequest),
//	    mapper.WithHTTPSystem(kind.InvalidCodeContents, system.SNOMED, http.StatusNotFound),
//	)
//	if err != nil {
//	    // unknown kind, bad status value, etc.
//	}
//
//	st := m.Status(kind.InvalidCodeContents, system.SNOMED)
//	// st.HTTP == 404, st.GRPC == codes.InvalidArgument
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of which tier matched. It is
// intended for inspection and logging, not for stable machine parsing.
package mapper
