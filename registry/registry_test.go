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

package registry

import (
	"errors"
	"iter"
	"slices"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/grammar"
	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
)

var read2 = grammar.Definition{
	System:      "read2",
	Name:        "Read v2",
	MinLength:   5,
	MaxLength:   5,
	Pattern:     "[A-Za-z0-9.]{5}",
	Description: "Read codes version 2",
}

type typedList struct {
	typ   system.System
	codes []string
}

func (l typedList) Type() system.System     { return l.typ }
func (l typedList) Codes() iter.Seq[string] { return slices.Values(l.codes) }

func TestNew_Defaults(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := r.Systems()
	want := []system.System{system.ICD10, system.OPCS, system.SNOMED}
	if !slices.Equal(got, want) {
		t.Fatalf("Systems() = %v; want %v", got, want)
	}
	g, ok := r.Lookup(system.OPCS)
	if !ok || g != grammar.OPCS() {
		t.Fatalf("Lookup(opcs) must return the shared built-in grammar")
	}
}

func TestNew_WithoutDefaults(t *testing.T) {
	r, err := New(WithoutDefaults(), WithGrammar(read2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := r.Systems(); !slices.Equal(got, []system.System{"read2"}) {
		t.Fatalf("Systems() = %v", got)
	}
	if _, ok := r.Lookup(system.OPCS); ok {
		t.Fatalf("built-ins must be absent")
	}
}

func TestValidator_UnknownSystem(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = r.Validator("ctv3")
	if !errors.Is(err, codelist.ErrInvalidCodelistType) {
		t.Fatalf("want invalid_codelist_type, got %v", err)
	}
	if err.Error() != "Invalid codelist type: ctv3" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestValidatorFor(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, name := range []string{"OPCS-4", "opcs", " OPCS "} {
		v, err := r.ValidatorFor(name)
		if err != nil {
			t.Fatalf("ValidatorFor(%q): %v", name, err)
		}
		if v.System() != system.OPCS {
			t.Fatalf("ValidatorFor(%q).System() = %q", name, v.System())
		}
	}
	v, err := r.ValidatorFor("SNOMED CT")
	if err != nil || v.System() != system.SNOMED {
		t.Fatalf("ValidatorFor(SNOMED CT) = %v, %v", v, err)
	}

	for _, name := range []string{"", "Read v2", "10x"} {
		_, err := r.ValidatorFor(name)
		var cerr *codelist.Error
		if !errors.As(err, &cerr) || cerr.Kind != kind.InvalidCodelistType {
			t.Fatalf("ValidatorFor(%q) want invalid_codelist_type, got %v", name, err)
		}
		if !strings.Contains(cerr.Error(), name) {
			t.Fatalf("message must carry the original name %q: %q", name, cerr.Error())
		}
	}
}

func TestWithGrammar_ReplacesExisting(t *testing.T) {
	strict := grammar.Definition{System: system.OPCS, MinLength: 3, MaxLength: 3, Pattern: "[A-Z][0-9]{2}"}
	r, err := New(WithGrammar(strict))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v, err := r.Validator(system.OPCS)
	if err != nil {
		t.Fatalf("Validator: %v", err)
	}
	if err := v.ValidateCode("A01.1"); !errors.Is(err, codelist.ErrInvalidCodeLength) {
		t.Fatalf("replacement grammar not used: %v", err)
	}
	if grammar.OPCS().MaxLength() != 5 {
		t.Fatalf("built-in grammar mutated")
	}
}

func TestWithBounds(t *testing.T) {
	r, err := New(WithBounds(system.OPCS, 3, 4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = r.ValidateList(typedList{system.OPCS, []string{"A01", "A01.1", "A011"}})
	var cerr *codelist.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("want *codelist.Error, got %v", err)
	}
	if len(cerr.Reasons) != 1 || cerr.Reasons[0].Code != "A01.1" {
		t.Fatalf("Reasons = %+v", cerr.Reasons)
	}
	want := "Code A01.1 is an invalid length. Reason: OPCS code A01.1 is greater than 4 characters in length"
	if cerr.Reasons[0].Reason != want {
		t.Fatalf("Reason = %q; want %q", cerr.Reasons[0].Reason, want)
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"bounds for unknown system", []Option{WithBounds("read2", 5, 5)}},
		{"bounds inverted", []Option{WithBounds(system.OPCS, 5, 3)}},
		{"bad definition", []Option{WithGrammar(grammar.Definition{System: "read2"})}},
		{"bounds without defaults", []Option{WithoutDefaults(), WithBounds(system.OPCS, 3, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.opts...)
			if err == nil {
				t.Fatalf("expected error, got registry with %v", r.Systems())
			}
			if !strings.HasPrefix(err.Error(), "registry: ") {
				t.Fatalf("error should be prefixed with package name: %v", err)
			}
		})
	}
}

func TestValidateList(t *testing.T) {
	r, err := New(WithGrammars(read2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.ValidateList(typedList{"read2", []string{"7L1..", "XaBCD"}}); err != nil {
		t.Fatalf("valid read2 list: %v", err)
	}
	err = r.ValidateList(typedList{system.OPCS, []string{"C01", "A01000", "C03", "AA1", "C05", "A01.", "L35.3", "A010A"}})
	var cerr *codelist.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("want *codelist.Error, got %v", err)
	}
	if got := cerr.InvalidCodes(); !slices.Equal(got, []string{"A01000", "AA1", "A01.", "A010A"}) {
		t.Fatalf("InvalidCodes() = %v", got)
	}
	if err := r.ValidateList(typedList{"ctv3", nil}); !errors.Is(err, codelist.ErrInvalidCodelistType) {
		t.Fatalf("unknown type: %v", err)
	}
}

func TestSystems_ReturnsCopy(t *testing.T) {
	r, _ := New()
	s := r.Systems()
	s[0] = "mutated"
	if r.Systems()[0] != system.ICD10 {
		t.Fatalf("Systems() leaked internal slice")
	}
}

func TestConcurrentUse(t *testing.T) {
	r, err := New(WithGrammar(read2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, sys := range r.Systems() {
				if _, err := r.Validator(sys); err != nil {
					t.Errorf("Validator(%q): %v", sys, err)
				}
				_ = r.Describe(sys)
			}
		}()
	}
	wg.Wait()
}
