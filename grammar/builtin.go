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
	"sync"

	"dirpx.dev/codelist/system"
)

// Built-in definitions. Character classes are spelled out as ASCII ranges.
var (
	opcsDefinition = Definition{
		System:    system.OPCS,
		Name:      "OPCS",
		MinLength: 3,
		MaxLength: 5,
		// one letter, two digits, then optionally ".d", ".dd", "d" or "dd"
		Pattern:     `[A-Z][0-9]{2}(\.[0-9]{1,2}|[0-9]{1,2})?`,
		Description: "OPCS-4 classification of interventions and procedures",
	}

	icd10Definition = Definition{
		System:    system.ICD10,
		Name:      "ICD10",
		MinLength: 3,
		MaxLength: 7,
		// one letter, two digits, then optionally "X", ".d{1,3}" or "d{1,4}"
		Pattern:     `[A-Z][0-9]{2}(X|\.[0-9]{1,3}|[0-9]{1,4})?`,
		Description: "ICD-10 international classification of diseases",
	}

	snomedDefinition = Definition{
		System:      system.SNOMED,
		Name:        "SNOMED",
		MinLength:   6,
		MaxLength:   18,
		Pattern:     `[1-9][0-9]{5,17}`,
		Description: "SNOMED CT concept identifiers (SCTID)",
	}
)

var (
	// OPCS returns the OPCS-4 grammar, compiled on first call.
	OPCS = sync.OnceValue(func() *Grammar { return MustNew(opcsDefinition) })

	// ICD10 returns the ICD-10 grammar, compiled on first call.
	ICD10 = sync.OnceValue(func() *Grammar { return MustNew(icd10Definition) })

	// SNOMED returns the SNOMED CT grammar, compiled on first call.
	SNOMED = sync.OnceValue(func() *Grammar { return MustNew(snomedDefinition) })
)

// Builtins returns the built-in grammars, ordered by system.
func Builtins() []*Grammar {
	return []*Grammar{ICD10(), OPCS(), SNOMED()}
}

// Builtin returns the built-in grammar for sys, if there is one.
func Builtin(sys system.System) (*Grammar, bool) {
	switch sys {
	case system.OPCS:
		return OPCS(), true
	case system.ICD10:
		return ICD10(), true
	case system.SNOMED:
		return SNOMED(), true
	}
	return nil, false
}
