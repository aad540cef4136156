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

// Package apis defines the public Go-level contracts of the codelist module.
//
// It provides small, composable interfaces that grammars, validators,
// transport adapters and callers can depend on without importing the concrete
// error implementation (the root codelist package) or the list container.
//
// The most important contract here is CodeSource: the only thing the
// validation framework needs from a code list is an ordered, read-only
// enumeration of its codes.
//
// This package must remain lightweight: interfaces and very small view types
// only.
package apis
