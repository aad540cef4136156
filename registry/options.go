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
	"log/slog"

	"dirpx.dev/codelist/grammar"
	"dirpx.dev/codelist/system"
)

// Option configures the Registry at build time.
type Option func(*builder)

// bounds is a pending length override.
type bounds struct {
	min, max int
}

type builder struct {
	// defaults seeds the registry with the built-in grammars.
	defaults bool
	// defs are custom definitions in registration order.
	defs []grammar.Definition
	// bounds are applied after all grammars are compiled.
	bounds map[system.System]bounds
	logger *slog.Logger
}

func newBuilder() *builder {
	return &builder{
		defaults: true,
		bounds:   make(map[system.System]bounds),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithGrammar adds a grammar definition. A definition for an already
// registered system replaces it.
func WithGrammar(def grammar.Definition) Option {
	return func(b *builder) { b.defs = append(b.defs, def) }
}

// WithGrammars adds several definitions, in order.
func WithGrammars(defs ...grammar.Definition) Option {
	return func(b *builder) { b.defs = append(b.defs, defs...) }
}

// WithBounds re-bounds the grammar of sys. The system must be registered
// once all grammars are added.
func WithBounds(sys system.System, minLength, maxLength int) Option {
	return func(b *builder) { b.bounds[sys] = bounds{minLength, maxLength} }
}

// WithoutDefaults starts from an empty registry instead of the built-ins.
func WithoutDefaults() Option {
	return func(b *builder) { b.defaults = false }
}

// WithLogger sets the logger used by the registry and the validators it
// builds. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}
