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

package kind

// Validation kinds
//
// These are produced by grammars and by the list validator.
const (
	// InvalidCodeLength indicates that a code is shorter or longer than the
	// bounds of its coding system. It is always reported before any
	// structural check.
	//
	// Can be mapped to an HTTP 400.
	InvalidCodeLength Kind = "invalid_code_length"

	// InvalidCodeContents indicates that a code has an acceptable length but
	// does not match the structural pattern of its coding system.
	//
	// Can be mapped to an HTTP 400.
	InvalidCodeContents Kind = "invalid_code_contents"

	// InvalidCodelist is the aggregate failure of a whole list. It carries
	// one (code, reason) pair per invalid entry, in scan order, and is never
	// produced with zero pairs.
	//
	// Can be mapped to an HTTP 422.
	InvalidCodelist Kind = "invalid_codelist"

	// InvalidCodelistType indicates that a coding system is unknown to the
	// registry or cannot be parsed.
	//
	// Can be mapped to an HTTP 400.
	InvalidCodelistType Kind = "invalid_codelist_type"
)

// Container kinds
//
// These are produced by the code-list container and its metadata.
const (
	// EntryNotFound indicates that no entry with the given code exists.
	EntryNotFound Kind = "entry_not_found"

	// InvalidInput indicates a malformed argument that has no more specific
	// kind.
	InvalidInput Kind = "invalid_input"

	// EmptyCode indicates an entry whose code is empty after trimming.
	EmptyCode Kind = "empty_code"

	// EmptyTerm indicates an entry whose term is empty after trimming.
	EmptyTerm Kind = "empty_term"

	// ColumnIndexOutOfBounds indicates that a CSV row has fewer columns than
	// the configured code or term column.
	ColumnIndexOutOfBounds Kind = "column_index_out_of_bounds"

	// CommentAlreadyExists indicates an attempt to add a comment to an entry
	// that already has one.
	CommentAlreadyExists Kind = "comment_already_exists"

	// CommentDoesNotExist indicates an attempt to update or remove a comment
	// that was never added.
	CommentDoesNotExist Kind = "comment_does_not_exist"

	// ContributorNotFound indicates an attempt to remove an unknown
	// contributor from a provenance record.
	ContributorNotFound Kind = "contributor_not_found"

	// InvalidMetadataSource indicates an unknown metadata source string.
	InvalidMetadataSource Kind = "invalid_metadata_source"

	// MetadataAlreadyExists indicates an attempt to add a metadata value
	// (purpose, reviewer, status, ...) that is already set. The field is in
	// Details["field"].
	MetadataAlreadyExists Kind = "metadata_already_exists"

	// MetadataDoesNotExist indicates an attempt to update or remove a
	// metadata value that was never set.
	MetadataDoesNotExist Kind = "metadata_does_not_exist"

	// ReviewDateIsNone indicates a read of a review date that is not set.
	ReviewDateIsNone Kind = "review_date_is_none"

	// InvalidFilePath indicates a path whose extension names no supported
	// list format.
	InvalidFilePath Kind = "invalid_file_path"

	// InvalidCodeField and InvalidTermField indicate a CSV header without the
	// requested code or term column.
	InvalidCodeField Kind = "invalid_code_field"
	InvalidTermField Kind = "invalid_term_field"

	// InvalidCodeType and InvalidTermType indicate a JSON entry whose code or
	// term is not a string.
	InvalidCodeType Kind = "invalid_code_type"
	InvalidTermType Kind = "invalid_term_type"
)

// Serialization kinds
//
// These wrap lower-level errors; the original error is kept as the cause.
const (
	// JSON wraps an encoding/json failure.
	JSON Kind = "json"

	// CSV wraps an encoding/csv failure.
	CSV Kind = "csv"

	// IO wraps a read or write failure.
	IO Kind = "io"
)

var known = map[Kind]struct{}{
	InvalidCodeLength:      {},
	InvalidCodeContents:    {},
	InvalidCodelist:        {},
	InvalidCodelistType:    {},
	EntryNotFound:          {},
	InvalidInput:           {},
	EmptyCode:              {},
	EmptyTerm:              {},
	ColumnIndexOutOfBounds: {},
	CommentAlreadyExists:   {},
	CommentDoesNotExist:    {},
	ContributorNotFound:    {},
	InvalidMetadataSource:  {},
	MetadataAlreadyExists:  {},
	MetadataDoesNotExist:   {},
	ReviewDateIsNone:       {},
	InvalidFilePath:        {},
	InvalidCodeField:       {},
	InvalidTermField:       {},
	InvalidCodeType:        {},
	InvalidTermType:        {},
	JSON:                   {},
	CSV:                    {},
	IO:                     {},
}
