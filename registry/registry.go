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
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/apis"
	"dirpx.dev/codelist/grammar"
	"dirpx.dev/codelist/system"
	"dirpx.dev/codelist/validator"
)

// origin records where a grammar and its bounds came from, for Describe.
type origin struct {
	grammar string // "builtin" or "definition"
	bounds  string // "grammar" or "override"
}

type entry struct {
	grammar   *grammar.Grammar
	validator *validator.Validator
	origin    origin
}

// Registry resolves coding systems to grammars and validators. It is
// immutable and safe for concurrent use.
type Registry struct {
	entries map[system.System]entry
	systems []system.System
	logger  *slog.Logger
}

// TypedSource is a code list that knows its coding system.
type TypedSource interface {
	apis.CodeSource
	Type() system.System
}

// New builds a Registry snapshot. Errors indicate invalid definitions or
// bounds for unregistered systems.
func New(opts ...Option) (*Registry, error) {
	b := newBuilder()
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	grammars := make(map[system.System]*grammar.Grammar)
	origins := make(map[system.System]origin)
	if b.defaults {
		for _, g := range grammar.Builtins() {
			grammars[g.System()] = g
			origins[g.System()] = origin{grammar: "builtin", bounds: "grammar"}
		}
	}

	for i, def := range b.defs {
		g, err := grammar.New(def)
		if err != nil {
			return nil, fmt.Errorf("registry: grammar %d: %w", i, err)
		}
		grammars[g.System()] = g
		origins[g.System()] = origin{grammar: "definition", bounds: "grammar"}
	}

	for sys, bd := range b.bounds {
		g, ok := grammars[sys]
		if !ok {
			return nil, fmt.Errorf("registry: bounds for unregistered system %q", sys)
		}
		rebound, err := g.WithBounds(bd.min, bd.max)
		if err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		grammars[sys] = rebound
		o := origins[sys]
		o.bounds = "override"
		origins[sys] = o
	}

	r := &Registry{
		entries: make(map[system.System]entry, len(grammars)),
		systems: slices.Sorted(maps.Keys(grammars)),
		logger:  b.logger,
	}
	for sys, g := range grammars {
		r.entries[sys] = entry{
			grammar:   g,
			validator: validator.New(g, validator.WithLogger(b.logger)),
			origin:    origins[sys],
		}
	}

	r.logger.Debug("registry built", slog.Any("systems", r.systems))
	return r, nil
}

// Lookup returns the grammar registered for sys.
func (r *Registry) Lookup(sys system.System) (*grammar.Grammar, bool) {
	e, ok := r.entries[sys]
	return e.grammar, ok
}

// Validator returns the validator for sys, or an invalid_codelist_type error.
func (r *Registry) Validator(sys system.System) (*validator.Validator, error) {
	e, ok := r.entries[sys]
	if !ok {
		return nil, codelist.InvalidCodelistType(string(sys))
	}
	return e.validator, nil
}

// ValidatorFor parses a user-supplied system name ("OPCS-4", "icd10",
// "SNOMED CT") and returns its validator. Unparsable or unregistered names
// yield an invalid_codelist_type error carrying the original name.
func (r *Registry) ValidatorFor(name string) (*validator.Validator, error) {
	sys, err := system.Parse(name)
	if err != nil {
		return nil, codelist.InvalidCodelistType(name).WithCause(err)
	}
	e, ok := r.entries[sys]
	if !ok {
		return nil, codelist.InvalidCodelistType(name)
	}
	return e.validator, nil
}

// Systems returns the registered systems in sorted order.
func (r *Registry) Systems() []system.System {
	return slices.Clone(r.systems)
}

// ValidateList validates every code of l with the grammar of l.Type().
func (r *Registry) ValidateList(l TypedSource) error {
	v, err := r.Validator(l.Type())
	if err != nil {
		return err
	}
	return v.ValidateAll(l)
}

// Describe renders a human-readable summary of the grammar of sys.
//
// Example output:
//
//	system="opcs" name="OPCS"
//	grammar: source=builtin
//	length: source=override -> 3..4
//	pattern: [A-Z][0-9]{2}(\.[0-9]{1,2}|[0-9]{1,2})?
//	description: OPCS-4 classification of interventions and procedures
func (r *Registry) Describe(sys system.System) string {
	e, ok := r.entries[sys]
	if !ok {
		return fmt.Sprintf("system=%q not registered", sys)
	}
	g := e.grammar

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "system=%q name=%q\n", g.System(), g.Name())
	_, _ = fmt.Fprintf(&b, "grammar: source=%s\n", e.origin.grammar)
	_, _ = fmt.Fprintf(&b, "length: source=%s -> %d..%d\n", e.origin.bounds, g.MinLength(), g.MaxLength())
	_, _ = fmt.Fprintf(&b, "pattern: %s", g.Pattern())
	if d := g.Definition().Description; d != "" {
		_, _ = fmt.Fprintf(&b, "\ndescription: %s", d)
	}
	return b.String()
}
