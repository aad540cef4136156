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

// Package system defines canonical identifiers for clinical coding systems.
//
// A coding system is the external coding standard a code list claims to follow,
// e.g. OPCS-4 procedure codes, ICD-10 diagnosis codes or SNOMED CT concept
// identifiers. Users spell these in many ways ("ICD-10", "icd_10",
// "SNOMED CT"); this package turns such input into one canonical form:
//
//   - "opcs"
//   - "icd10"
//   - "snomed"
//
// Custom systems (for grammars loaded from configuration) follow the same
// rules: lowercase ASCII letters and digits, starting with a letter.
package system
