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

package codelist

import (
	"fmt"
	"maps"
	"strings"

	"dirpx.dev/codelist/apis"
	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
)

// Failure is one invalid entry of an aggregate list failure.
type Failure struct {
	// Code is the offending code, exactly as stored in the list.
	Code string

	// Kind is the kind of the per-code failure (invalid_code_length or
	// invalid_code_contents).
	Kind kind.Kind

	// Reason is the display string of the per-code failure.
	Reason string
}

// Error is the single error type of the codelist module.
//
// It is a tagged variant: Kind selects which of the payload fields are
// meaningful.
//
//   - kind.InvalidCodeLength, kind.InvalidCodeContents: Code and Reason;
//   - kind.InvalidCodelist: Reasons (never empty);
//   - container kinds: Message, and Code when the failure is about an entry;
//   - kind.JSON, kind.CSV, kind.IO: Message and Cause.
//
// Callers match structurally with errors.As and a switch on Kind, or with
// errors.Is against the sentinels below. All mutation helpers (WithX) return
// a shallow copy, so Error values can be shared freely.
type Error struct {
	// Kind is the primary classification. Must be a canonical kind.
	Kind kind.Kind

	// System is the coding system that produced the failure, if any.
	System system.System

	// Code is the offending code for per-code and per-entry failures.
	Code string

	// Reason is the mechanically derived explanation for per-code failures,
	// e.g. "OPCS code A0 is less than 3 characters in length".
	Reason string

	// Reasons holds one Failure per invalid entry, in scan order.
	// Only set for kind.InvalidCodelist.
	Reasons []Failure

	// Message is the human-readable text of container failures.
	Message string

	// Details is an optional, shallow map of extra fields (line numbers,
	// column indexes, file names). WithDetail/WithDetails always copy it.
	Details map[string]any

	// Cause holds the wrapped underlying error (if any).
	Cause error
}

// Sentinels for errors.Is. They match any Error of the same Kind.
var (
	ErrInvalidCodeLength   = &Error{Kind: kind.InvalidCodeLength}
	ErrInvalidCodeContents = &Error{Kind: kind.InvalidCodeContents}
	ErrInvalidCodelist     = &Error{Kind: kind.InvalidCodelist}
	ErrInvalidCodelistType = &Error{Kind: kind.InvalidCodelistType}
	ErrEntryNotFound       = &Error{Kind: kind.EntryNotFound}
	ErrContributorNotFound = &Error{Kind: kind.ContributorNotFound}
)

var (
	_ apis.KindedError   = (*Error)(nil)
	_ apis.SystemError   = (*Error)(nil)
	_ apis.DetailedError = (*Error)(nil)
	_ apis.ViewProvider  = (*Error)(nil)
)

// E is a convenience constructor for container-style errors.
//
//	return codelist.E(kind.InvalidInput, "Invalid input: code column must differ from term column",
//	    codelist.WithDetailOption("column", 0),
//	)
//
// It always returns a new Error and applies all options in order.
func E(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{Kind: k, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// InvalidCodeLength reports a code whose length is outside the bounds of its
// coding system.
func InvalidCodeLength(code, reason string) *Error {
	return &Error{Kind: kind.InvalidCodeLength, Code: code, Reason: reason}
}

// InvalidCodeContents reports a code that fails the structural pattern of its
// coding system.
func InvalidCodeContents(code, reason string) *Error {
	return &Error{Kind: kind.InvalidCodeContents, Code: code, Reason: reason}
}

// InvalidCodelist reports every invalid entry of a list at once.
//
// reasons must be non-empty: an empty failure set means the list is valid and
// is represented by a nil error. Passing an empty slice panics.
// The slice is copied.
func InvalidCodelist(reasons []Failure) *Error {
	if len(reasons) == 0 {
		panic("codelist: InvalidCodelist requires at least one failure")
	}
	return &Error{Kind: kind.InvalidCodelist, Reasons: append([]Failure(nil), reasons...)}
}

// InvalidCodelistType reports an unknown or unparsable coding system.
func InvalidCodelistType(name string) *Error {
	return &Error{Kind: kind.InvalidCodelistType, Message: fmt.Sprintf("Invalid codelist type: %s", name)}
}

// EntryNotFound reports that no entry with code exists.
func EntryNotFound(code string) *Error {
	return &Error{Kind: kind.EntryNotFound, Code: code, Message: fmt.Sprintf("Entry not found: %s", code)}
}

// InvalidInput reports a malformed argument.
func InvalidInput(msg string) *Error {
	return &Error{Kind: kind.InvalidInput, Message: "Invalid input: " + msg}
}

// EmptyCode reports an entry with an empty code.
func EmptyCode(msg string) *Error {
	return &Error{Kind: kind.EmptyCode, Message: "Empty code: " + msg}
}

// EmptyTerm reports an entry with an empty term.
func EmptyTerm(msg string) *Error {
	return &Error{Kind: kind.EmptyTerm, Message: "Empty term: " + msg}
}

// ColumnIndexOutOfBounds reports a CSV row that is shorter than a configured
// column index.
func ColumnIndexOutOfBounds(msg string) *Error {
	return &Error{Kind: kind.ColumnIndexOutOfBounds, Message: "Column index out of bounds: " + msg}
}

// CommentAlreadyExists reports an attempt to add a second comment to an entry.
func CommentAlreadyExists(code, term string) *Error {
	return &Error{
		Kind: kind.CommentAlreadyExists,
		Code: code,
		Message: fmt.Sprintf("Comment for CodeEntry with code %s and term %s already exists. "+
			"Please update comment instead.", code, term),
	}
}

// CommentDoesNotExist reports an attempt to update or remove a missing comment.
func CommentDoesNotExist(code, term string) *Error {
	return &Error{
		Kind: kind.CommentDoesNotExist,
		Code: code,
		Message: fmt.Sprintf("Comment for CodeEntry with code %s and term %s does not exist. "+
			"Please use add comment instead if you are trying to add a comment.", code, term),
	}
}

// ContributorNotFound reports an unknown contributor.
func ContributorNotFound(contributor string) *Error {
	return &Error{Kind: kind.ContributorNotFound, Message: fmt.Sprintf("Contributor %s not found", contributor)}
}

// InvalidMetadataSource reports an unknown metadata source string.
func InvalidMetadataSource(source string) *Error {
	return &Error{Kind: kind.InvalidMetadataSource, Message: fmt.Sprintf("Invalid metadata source: %s", source)}
}

// MetadataAlreadyExists reports an attempt to add a metadata value that is
// already set. field is the snake_case field name ("target_audience",
// "validation_notes", ...):
//
//	Target audience already exists: Clinicians
func MetadataAlreadyExists(field, msg string) *Error {
	verb := "already exists"
	if plural(field) {
		verb = "already exist"
	}
	return &Error{
		Kind:    kind.MetadataAlreadyExists,
		Message: fmt.Sprintf("%s %s: %s", fieldLabel(field), verb, msg),
		Details: map[string]any{"field": field},
	}
}

// MetadataDoesNotExist reports an attempt to update or remove a metadata value
// that is not set.
func MetadataDoesNotExist(field, msg string) *Error {
	verb := "does not exist"
	if plural(field) {
		verb = "do not exist"
	}
	return &Error{
		Kind:    kind.MetadataDoesNotExist,
		Message: fmt.Sprintf("%s %s: %s", fieldLabel(field), verb, msg),
		Details: map[string]any{"field": field},
	}
}

// ReviewDateIsNone reports a read of an unset review date.
func ReviewDateIsNone() *Error {
	return &Error{Kind: kind.ReviewDateIsNone, Message: "Review date is none."}
}

// InvalidFilePath reports a path that names no supported list format.
func InvalidFilePath(msg string) *Error {
	return &Error{Kind: kind.InvalidFilePath, Message: "Invalid file path: " + msg}
}

// InvalidCodeField reports a CSV header without the requested code column.
func InvalidCodeField(msg string) *Error {
	return &Error{Kind: kind.InvalidCodeField, Message: "Invalid code field: " + msg}
}

// InvalidTermField reports a CSV header without the requested term column.
func InvalidTermField(msg string) *Error {
	return &Error{Kind: kind.InvalidTermField, Message: "Invalid term field: " + msg}
}

// InvalidCodeType reports an entry code of the wrong type.
func InvalidCodeType(msg string) *Error {
	return &Error{Kind: kind.InvalidCodeType, Message: "Invalid code type: " + msg}
}

// InvalidTermType reports an entry term of the wrong type.
func InvalidTermType(msg string) *Error {
	return &Error{Kind: kind.InvalidTermType, Message: "Invalid term type: " + msg}
}

// fieldLabel turns "target_audience" into "Target audience".
func fieldLabel(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func plural(field string) bool { return strings.HasSuffix(field, "notes") }

// JSONError wraps an encoding/json failure.
func JSONError(err error) *Error {
	return &Error{Kind: kind.JSON, Message: fmt.Sprintf("JSON error: %v", err), Cause: err}
}

// CSVError wraps an encoding/csv failure.
func CSVError(err error) *Error {
	return &Error{Kind: kind.CSV, Message: fmt.Sprintf("CSV error: %v", err), Cause: err}
}

// IOError wraps a read or write failure.
func IOError(err error) *Error {
	return &Error{Kind: kind.IO, Message: fmt.Sprintf("IO error: %v", err), Cause: err}
}

// Error implements the built-in error interface.
//
// Per-code failures render as
//
//	Code <code> is an invalid length. Reason: <reason>
//	Code <code> contents is invalid. Reason: <reason>
//
// and the aggregate as
//
//	Some codes in the list are invalid. Details: <code>: <reason>; ...
//
// The wording is stable; tests and downstream tooling assert on it.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case kind.InvalidCodeLength:
		return fmt.Sprintf("Code %s is an invalid length. Reason: %s", e.Code, e.Reason)
	case kind.InvalidCodeContents:
		return fmt.Sprintf("Code %s contents is invalid. Reason: %s", e.Code, e.Reason)
	case kind.InvalidCodelist:
		var b strings.Builder
		b.WriteString("Some codes in the list are invalid. Details: ")
		for i, f := range e.Reasons {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(f.Code)
			b.WriteString(": ")
			b.WriteString(f.Reason)
		}
		return b.String()
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error describing the same failure.
//
// Only non-zero fields of target take part in the comparison, so the
// package sentinels match by Kind alone and
// &Error{Kind: kind.InvalidCodeLength, Code: "A0"} matches that exact code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil || e == nil {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	if t.System != "" && t.System != e.System {
		return false
	}
	if t.Code != "" && t.Code != e.Code {
		return false
	}
	return true
}

// ErrorKind implements apis.KindedError.
func (e *Error) ErrorKind() string { return string(e.Kind) }

// ErrorSystem implements apis.SystemError.
func (e *Error) ErrorSystem() string { return string(e.System) }

// ErrorDetails implements apis.DetailedError.
//
// An aggregate failure yields one Detail per invalid entry in scan order; a
// per-code failure yields a single Detail; other kinds yield nil.
func (e *Error) ErrorDetails() []apis.Detail {
	var info map[string]string
	if e.System != "" {
		info = map[string]string{"system": string(e.System)}
	}
	switch e.Kind {
	case kind.InvalidCodeLength, kind.InvalidCodeContents:
		return []apis.Detail{{Type: string(e.Kind), Code: e.Code, Reason: e.Reason, Info: info}}
	case kind.InvalidCodelist:
		ds := make([]apis.Detail, 0, len(e.Reasons))
		for _, f := range e.Reasons {
			ds = append(ds, apis.Detail{Type: string(f.Kind), Code: f.Code, Reason: f.Reason, Info: maps.Clone(info)})
		}
		return ds
	}
	return nil
}

// ErrorView implements apis.ViewProvider.
func (e *Error) ErrorView() apis.ErrorView {
	return apis.ErrorView{
		Kind:    string(e.Kind),
		System:  string(e.System),
		Message: e.Error(),
		Details: e.ErrorDetails(),
	}
}

// InvalidCodes returns the offending codes of an aggregate failure in scan
// order, or the single offending code of a per-code failure.
func (e *Error) InvalidCodes() []string {
	switch e.Kind {
	case kind.InvalidCodeLength, kind.InvalidCodeContents:
		return []string{e.Code}
	case kind.InvalidCodelist:
		out := make([]string, len(e.Reasons))
		for i, f := range e.Reasons {
			out[i] = f.Code
		}
		return out
	}
	return nil
}

// WithSystem returns a shallow copy of e attributed to the given coding system.
func (e *Error) WithSystem(s system.System) *Error {
	cp := *e
	cp.System = s
	return &cp
}

// WithCode returns a shallow copy of e with the offending code set.
func (e *Error) WithCode(code string) *Error {
	cp := *e
	cp.Code = code
	return &cp
}

// WithDetail returns a shallow copy of e with one extra key/value in Details.
// The map is always copied.
func (e *Error) WithDetail(k string, v any) *Error {
	cp := *e
	if len(cp.Details) == 0 {
		cp.Details = map[string]any{k: v}
		return &cp
	}
	m := make(map[string]any, len(cp.Details)+1)
	maps.Copy(m, cp.Details)
	m[k] = v
	cp.Details = m
	return &cp
}

// WithDetails returns a shallow copy of e with kv merged into Details, kv
// taking precedence on key conflicts.
func (e *Error) WithDetails(kv map[string]any) *Error {
	if len(kv) == 0 {
		return e
	}
	cp := *e
	m := make(map[string]any, len(cp.Details)+len(kv))
	maps.Copy(m, cp.Details)
	maps.Copy(m, kv)
	cp.Details = m
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause.
// If err is nil, e is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
