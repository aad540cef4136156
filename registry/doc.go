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

// Package registry is the extension point for coding systems.
//
// A Registry is an immutable snapshot mapping a system.System to its grammar
// and validator. It is seeded with the built-in grammars (ICD-10, OPCS-4,
// SNOMED CT) and can be extended or adjusted at build time:
//
//	defs, _ := grammar.LoadDefinitionsFile("grammars.yaml")
//	r, err := registry.New(
//	    registry.WithGrammars(defs...),
//	    registry.WithBounds(system.OPCS, 3, 4),
//	)
//
//	v, err := r.Validator(system.OPCS)   // *validator.Validator
//	err = r.ValidateList(myList)         // dispatches on myList.Type()
//
// Build process:
//
//  1. Seed with built-in grammars (unless WithoutDefaults).
//  2. Compile and add custom definitions; a definition for an existing
//     system replaces it.
//  3. Apply bounds overrides.
//  4. Freeze: one validator per system, systems sorted.
//
// Asking for a system that is not registered yields an invalid_codelist_type
// error. Describe renders a diagnostic summary of one grammar.
package registry
