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

package validator

import (
	"errors"
	"log/slog"

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/apis"
	"dirpx.dev/codelist/grammar"
	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
)

// Rule validates a single code.
type Rule interface {
	ValidateCode(code string) error
}

// systemRule is implemented by rules bound to a coding system.
type systemRule interface {
	System() system.System
}

// Validator applies a Rule to single codes and to whole lists. It holds no
// mutable state and is safe for concurrent use.
type Validator struct {
	rule   Rule
	system system.System
	logger *slog.Logger
}

var _ apis.Validator = (*Validator)(nil)

// New returns a Validator for rule. It panics if rule is nil.
func New(rule Rule, opts ...Option) *Validator {
	if rule == nil {
		panic("validator: nil rule")
	}
	v := &Validator{rule: rule, logger: slog.New(slog.DiscardHandler)}
	if sr, ok := rule.(systemRule); ok {
		v.system = sr.System()
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// OPCS returns a Validator for the built-in OPCS-4 grammar.
func OPCS(opts ...Option) *Validator { return New(grammar.OPCS(), opts...) }

// ICD10 returns a Validator for the built-in ICD-10 grammar.
func ICD10(opts ...Option) *Validator { return New(grammar.ICD10(), opts...) }

// SNOMED returns a Validator for the built-in SNOMED CT grammar.
func SNOMED(opts ...Option) *Validator { return New(grammar.SNOMED(), opts...) }

// System returns the coding system of the underlying rule, or system.Empty.
func (v *Validator) System() system.System { return v.system }

// ValidateCode delegates to the rule.
func (v *Validator) ValidateCode(code string) error {
	return v.rule.ValidateCode(code)
}

// ValidateAll checks every code of src in order and aggregates the failures.
//
// It returns nil when every code is valid (a nil or empty source is valid),
// otherwise a *codelist.Error of kind.InvalidCodelist whose Reasons hold one
// Failure per invalid entry. Each Failure.Reason is the display string of the
// per-code error.
func (v *Validator) ValidateAll(src apis.CodeSource) error {
	var (
		reasons []codelist.Failure
		scanned int
	)
	if src != nil {
		for code := range src.Codes() {
			scanned++
			if err := v.rule.ValidateCode(code); err != nil {
				reasons = append(reasons, codelist.Failure{
					Code:   code,
					Kind:   kindOf(err),
					Reason: err.Error(),
				})
			}
		}
	}

	v.logger.Debug("validated code list",
		slog.String("system", string(v.system)),
		slog.Int("scanned", scanned),
		slog.Int("invalid", len(reasons)),
	)

	if len(reasons) == 0 {
		return nil
	}
	e := codelist.InvalidCodelist(reasons)
	if v.system != system.Empty {
		e = e.WithSystem(v.system)
	}
	return e
}

// kindOf extracts the failure kind of a per-code error. Errors that carry no
// kind are reported as invalid contents.
func kindOf(err error) kind.Kind {
	var ke apis.KindedError
	if errors.As(err, &ke) {
		if k, perr := kind.Parse(ke.ErrorKind()); perr == nil {
			return k
		}
	}
	return kind.InvalidCodeContents
}
