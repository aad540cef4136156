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
	"encoding"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  invalid_codelist  ", "invalid_codelist"},
		{"to lower", "Entry_Not_Found", "entry_not_found"},
		{"dash to underscore", "invalid-code-length", "invalid_code_length"},
		{"space to underscore", "empty code", "empty_code"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"simple", "invalid_codelist", InvalidCodelist},
		{"upper", "INVALID_CODE_LENGTH", InvalidCodeLength},
		{"dash", "invalid-code-contents", InvalidCodeContents},
		{"min length", "io", IO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "x"},
		{"starts with digit", "1invalid"},
		{"punctuation", "invalid.code"},
		{"too long", strings.Repeat("a", MaxLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if err != ErrKindInvalid {
				t.Fatalf("Parse(%q) error = %v, want ErrKindInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestDeclaredKindsAreCanonical(t *testing.T) {
	for k := range known {
		if err := Validate(k); err != nil {
			t.Fatalf("declared kind %q is not canonical: %v", k, err)
		}
		if !Known(k) {
			t.Fatalf("Known(%q) = false", k)
		}
	}
	if Known("made_up") {
		t.Fatalf("Known must reject undeclared kinds")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("NOT A KIND ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	if k := MustParse("entry-not-found"); k != EntryNotFound {
		t.Fatalf("MustParse(valid) = %q, want %q", k, EntryNotFound)
	}
}

func TestKind_MarshalText(t *testing.T) {
	text, err := InvalidCodelist.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "invalid_codelist" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "invalid_codelist")
	}

	if _, err := Kind("Not-Canonical").MarshalText(); err == nil {
		t.Fatalf("MarshalText() on invalid kind must return error")
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("  ENTRY-NOT-FOUND  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if k != EntryNotFound {
		t.Fatalf("UnmarshalText() = %q, want %q", k, EntryNotFound)
	}

	var bad Kind
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestKind_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Kind)(nil)
	var _ encoding.TextUnmarshaler = (*Kind)(nil)
}
