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

package system

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// System is the canonical, validated identifier of a coding system.
type System string

// Built-in coding systems.
const (
	// OPCS is OPCS-4, the NHS classification of interventions and procedures.
	OPCS System = "opcs"

	// ICD10 is the WHO International Classification of Diseases, 10th revision.
	ICD10 System = "icd10"

	// SNOMED is SNOMED CT, identified by numeric concept identifiers.
	SNOMED System = "snomed"
)

// MinLength and MaxLength define the allowed length range for a canonical
// system identifier.
const (
	// MinLength is the minimum length of a system identifier.
	MinLength = 2

	// MaxLength is the maximum length of a system identifier.
	MaxLength = 32
)

const (
	// systemFmt accepts a lowercase ASCII letter followed by lowercase
	// letters or digits. Separators are stripped by Normalize, so "icd10"
	// and "ICD-10" end up identical.
	//
	// Examples that match:
	//
	//	"opcs"
	//	"icd10"
	//	"read2"
	//
	// Examples that DO NOT match:
	//
	//	"10icd"  (digit first)
	//	"icd.10" (punctuation survives normalization)
	systemFmt = `^[a-z][a-z0-9]*$`
)

var systemRe = regexp.MustCompile(systemFmt)

var (
	// ErrSystemInvalidFormat is returned when a system identifier does not
	// conform to the expected format.
	ErrSystemInvalidFormat = errors.New("codelist: invalid coding system format")
	// ErrSystemInvalidLength is returned when a system identifier is too
	// short or too long.
	ErrSystemInvalidLength = errors.New("codelist: invalid coding system length")
)

var (
	_ encoding.TextMarshaler   = (*System)(nil)
	_ encoding.TextUnmarshaler = (*System)(nil)
)

// Empty is the zero-value system. It means "not provided".
var Empty System = ""

// aliases maps normalized spellings to their canonical system.
var aliases = map[string]System{
	"opcs4":    OPCS,
	"icd":      ICD10,
	"snomedct": SNOMED,
	"sct":      SNOMED,
}

// Normalize brings an arbitrary string closer to the canonical form.
//
// It trims and lowercases, then removes '-', '_' and ' ' separators and
// resolves well-known aliases ("OPCS-4" -> "opcs", "SNOMED CT" -> "snomed").
// It does NOT guarantee validity.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	if canon, ok := aliases[s]; ok {
		return string(canon)
	}
	return s
}

// Parse normalizes and validates a user-provided string.
//
// A system is never optional: the empty string is rejected with
// ErrSystemInvalidLength.
func Parse(s string) (System, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return System(s), nil
}

// MustParse is the panic-on-error variant of Parse.
func MustParse(s string) System {
	sys, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sys
}

// Validate checks whether sys is in canonical form.
func Validate(sys System) error {
	return validate(string(sys))
}

// Builtin reports whether sys is one of the coding systems the module ships
// a grammar for.
func Builtin(sys System) bool {
	switch sys {
	case OPCS, ICD10, SNOMED:
		return true
	}
	return false
}

// String returns the canonical string representation.
func (s System) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s System) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrSystemInvalidLength
	}
	if !systemRe.MatchString(s) {
		return ErrSystemInvalidFormat
	}
	return nil
}
