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

// Package grammar holds the per-coding-system grammar rules.
//
// A Grammar is a pure predicate over code strings: given a code it returns
// nil, or a *codelist.Error explaining exactly which rule was broken. Every
// grammar checks in two steps:
//
//  1. length: the code must be within [MinLength, MaxLength] bytes; a code
//     outside the bounds fails with kind.InvalidCodeLength and never reaches
//     the pattern;
//  2. structure: the code must match the coding system's pattern as a
//     whole; otherwise it fails with kind.InvalidCodeContents.
//
// Splitting the two gives precise messages and lets bounds be tuned
// independently of the pattern.
//
// # Built-in grammars
//
//	grammar.OPCS()   // 3..5,  [A-Z][0-9]{2}(\.[0-9]{1,2}|[0-9]{1,2})?
//	grammar.ICD10()  // 3..7,  [A-Z][0-9]{2}(X|\.[0-9]{1,3}|[0-9]{1,4})?
//	grammar.SNOMED() // 6..18, [1-9][0-9]{5,17}
//
// Each built-in is compiled on first use, at most once per process, and is
// immutable afterwards. Concurrent first use is safe.
//
// # Custom grammars
//
// New compiles a Definition; LoadDefinitions reads definitions from YAML:
//
//	grammars:
//	  - system: read2
//	    name: Read v2
//	    min_length: 5
//	    max_length: 5
//	    pattern: '[A-Za-z0-9.]{5}'
//
// Patterns are matched against the whole code; leading "^" and trailing "$"
// are optional.
package grammar
