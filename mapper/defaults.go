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
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the built-in HTTP mappings for every known kind.
// Callers adjust them at the boundary where HTTP is actually produced.
var defaultHTTP = map[kind.Kind]int{
	// Validation failures: the client sent codes that do not fit the grammar.
	kind.InvalidCodeLength:   http.StatusBadRequest,
	kind.InvalidCodeContents: http.StatusBadRequest,
	// The list as a whole is well formed but its contents are not acceptable.
	kind.InvalidCodelist:     http.StatusUnprocessableEntity,
	kind.InvalidCodelistType: http.StatusBadRequest,

	// Missing resources.
	kind.EntryNotFound:        http.StatusNotFound,
	kind.ContributorNotFound:  http.StatusNotFound,
	kind.CommentDoesNotExist:  http.StatusNotFound,
	kind.MetadataDoesNotExist: http.StatusNotFound,
	kind.ReviewDateIsNone:     http.StatusNotFound,

	// Conflicts.
	kind.CommentAlreadyExists:  http.StatusConflict,
	kind.MetadataAlreadyExists: http.StatusConflict,

	// Malformed arguments.
	kind.InvalidInput:           http.StatusBadRequest,
	kind.EmptyCode:              http.StatusBadRequest,
	kind.EmptyTerm:              http.StatusBadRequest,
	kind.ColumnIndexOutOfBounds: http.StatusBadRequest,
	kind.InvalidMetadataSource:  http.StatusBadRequest,
	kind.InvalidFilePath:        http.StatusBadRequest,
	kind.InvalidCodeField:       http.StatusBadRequest,
	kind.InvalidTermField:       http.StatusBadRequest,
	kind.InvalidCodeType:        http.StatusBadRequest,
	kind.InvalidTermType:        http.StatusBadRequest,

	// Wrapped lower-level failures; do not expose internals.
	kind.JSON: http.StatusInternalServerError,
	kind.CSV:  http.StatusInternalServerError,
	kind.IO:   http.StatusInternalServerError,
}

// defaultGRPC defines the built-in gRPC mappings, aligned with defaultHTTP.
var defaultGRPC = map[kind.Kind]codes.Code{
	kind.InvalidCodeLength:   codes.InvalidArgument,
	kind.InvalidCodeContents: codes.InvalidArgument,
	kind.InvalidCodelist:     codes.InvalidArgument, // gRPC has no 422
	kind.InvalidCodelistType: codes.InvalidArgument,

	kind.EntryNotFound:        codes.NotFound,
	kind.ContributorNotFound:  codes.NotFound,
	kind.CommentDoesNotExist:  codes.NotFound,
	kind.MetadataDoesNotExist: codes.NotFound,
	kind.ReviewDateIsNone:     codes.NotFound,

	kind.CommentAlreadyExists:  codes.AlreadyExists,
	kind.MetadataAlreadyExists: codes.AlreadyExists,

	kind.InvalidInput:           codes.InvalidArgument,
	kind.EmptyCode:              codes.InvalidArgument,
	kind.EmptyTerm:              codes.InvalidArgument,
	kind.ColumnIndexOutOfBounds: codes.InvalidArgument,
	kind.InvalidMetadataSource:  codes.InvalidArgument,
	kind.InvalidFilePath:        codes.InvalidArgument,
	kind.InvalidCodeField:       codes.InvalidArgument,
	kind.InvalidTermField:       codes.InvalidArgument,
	kind.InvalidCodeType:        codes.InvalidArgument,
	kind.InvalidTermType:        codes.InvalidArgument,

	kind.JSON: codes.Internal,
	kind.CSV:  codes.Internal,
	kind.IO:   codes.Internal,
}
