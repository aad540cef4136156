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

package grammar

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/system"
)

// ErrInvalidDefinition is returned (wrapped) when a Definition cannot be
// compiled into a Grammar.
var ErrInvalidDefinition = errors.New("grammar: invalid definition")

// Definition is the declarative form of a grammar.
type Definition struct {
	// System is the canonical coding system the grammar validates.
	System system.System `yaml:"system" toml:"system" json:"system"`

	// Name is the display name used in failure reasons, e.g. "OPCS".
	// Defaults to the upper-cased system.
	Name string `yaml:"name,omitempty" toml:"name,omitempty" json:"name,omitempty"`

	// MinLength and MaxLength bound the code length in bytes, inclusive.
	MinLength int `yaml:"min_length" toml:"min_length" json:"min_length"`
	MaxLength int `yaml:"max_length" toml:"max_length" json:"max_length"`

	// Pattern is an RE2 expression the whole code must match.
	Pattern string `yaml:"pattern" toml:"pattern" json:"pattern"`

	// Description is free text shown by diagnostics.
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
}

// Grammar is a compiled, immutable Definition. It is safe for concurrent use.
type Grammar struct {
	def Definition
	re  *regexp.Regexp
}

// New validates def and compiles its pattern.
func New(def Definition) (*Grammar, error) {
	if err := system.Validate(def.System); err != nil {
		return nil, fmt.Errorf("%w: system %q: %w", ErrInvalidDefinition, def.System, err)
	}
	if def.MinLength < 1 {
		return nil, fmt.Errorf("%w: %s: min_length must be at least 1, got %d", ErrInvalidDefinition, def.System, def.MinLength)
	}
	if def.MaxLength < def.MinLength {
		return nil, fmt.Errorf("%w: %s: max_length %d is below min_length %d", ErrInvalidDefinition, def.System, def.MaxLength, def.MinLength)
	}
	if strings.TrimSpace(def.Pattern) == "" {
		return nil, fmt.Errorf("%w: %s: empty pattern", ErrInvalidDefinition, def.System)
	}
	re, err := regexp.Compile(anchor(def.Pattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, def.System, err)
	}
	if def.Name == "" {
		def.Name = strings.ToUpper(string(def.System))
	}
	return &Grammar{def: def, re: re}, nil
}

// MustNew is the panic-on-error variant of New.
func MustNew(def Definition) *Grammar {
	g, err := New(def)
	if err != nil {
		panic(err)
	}
	return g
}

// ValidateCode checks code against the grammar.
//
// The code is used as-is (no trimming). Length is checked first and takes
// precedence over structure:
//
//	"<Name> code <code> is greater than <Max> characters in length"
//	"<Name> code <code> is less than <Min> characters in length"
//	"<Name> code <code> does not match the expected format"
//
// The returned error is a *codelist.Error attributed to the grammar's system.
func (g *Grammar) ValidateCode(code string) error {
	if len(code) > g.def.MaxLength {
		return g.fail(codelist.InvalidCodeLength(code,
			fmt.Sprintf("%s code %s is greater than %d characters in length", g.def.Name, code, g.def.MaxLength)))
	}
	if len(code) < g.def.MinLength {
		return g.fail(codelist.InvalidCodeLength(code,
			fmt.Sprintf("%s code %s is less than %d characters in length", g.def.Name, code, g.def.MinLength)))
	}
	if !g.re.MatchString(code) {
		return g.fail(codelist.InvalidCodeContents(code,
			fmt.Sprintf("%s code %s does not match the expected format", g.def.Name, code)))
	}
	return nil
}

// WithBounds returns a copy of g with different length bounds. The compiled
// pattern is shared.
func (g *Grammar) WithBounds(minLength, maxLength int) (*Grammar, error) {
	if minLength < 1 || maxLength < minLength {
		return nil, fmt.Errorf("%w: %s: bounds %d..%d", ErrInvalidDefinition, g.def.System, minLength, maxLength)
	}
	cp := *g
	cp.def.MinLength = minLength
	cp.def.MaxLength = maxLength
	return &cp, nil
}

// System returns the coding system the grammar validates.
func (g *Grammar) System() system.System { return g.def.System }

// Name returns the display name used in reasons.
func (g *Grammar) Name() string { return g.def.Name }

// MinLength returns the inclusive lower length bound.
func (g *Grammar) MinLength() int { return g.def.MinLength }

// MaxLength returns the inclusive upper length bound.
func (g *Grammar) MaxLength() int { return g.def.MaxLength }

// Pattern returns the pattern as it was defined (without added anchors).
func (g *Grammar) Pattern() string { return g.def.Pattern }

// Definition returns a copy of the definition the grammar was built from,
// with defaults applied.
func (g *Grammar) Definition() Definition { return g.def }

func (g *Grammar) fail(e *codelist.Error) *codelist.Error {
	e.System = g.def.System
	return e
}

// anchor makes p match whole strings. Existing anchors are harmless inside
// the group.
func anchor(p string) string {
	return `^(?:` + p + `)$`
}
