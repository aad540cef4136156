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

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Kind is the canonical, validated tag of a codelist failure.
//
// It is a separate type (not just string) so that mappers and adapters can
// declare which values they expect, and so raw user input is never mixed
// with normalized values.
//
// Empty kinds ("") are NOT allowed on errors. Every codelist error carries
// a non-empty kind.
type Kind string

// MinLength and MaxLength define the allowed length range for a canonical
// kind.
const (
	// MinLength is the minimum length for a valid kind ("io" is the
	// shortest kind the module emits).
	MinLength = 2

	// MaxLength is the maximum length for a valid kind.
	MaxLength = 48
)

const (
	// kindFmt is the canonical regular expression used to validate kinds.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[a-z] - first character must be a lowercase ASCII letter;
	//	[a-z0-9_]{1,47} - the remaining characters may be lowercase letters,
	//	                  digits or underscore; total length 2..48;
	//	$ - end of string.
	//
	// The quantifier {1,47} is tied to MinLength / MaxLength above.
	kindFmt = `^[a-z][a-z0-9_]{1,47}$`
)

// kindRe is compiled once at package init and shared read-only.
var kindRe = regexp.MustCompile(kindFmt)

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as a codelist kind.
	ErrKindInvalid = errors.New("codelist: invalid kind")
)

var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It means "not provided" and never
// validates.
var Empty Kind = ""

// Parse normalizes and validates a user-provided string.
// On success it returns a canonical Kind value.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse, for package-level
// declarations.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize brings an arbitrary string closer to the canonical kind form.
//
// It trims surrounding spaces, lowercases, and replaces '-' and ' ' with
// '_'. The result still has to go through Parse or Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// Validate checks whether k is in canonical form.
// The empty kind is invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// Known reports whether k is one of the kinds declared by this package.
func Known(k Kind) bool {
	_, ok := known[k]
	return ok
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The text is normalized and validated before assignment.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func validate(s string) error {
	if !kindRe.MatchString(s) {
		return ErrKindInvalid
	}
	return nil
}
