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
	"iter"
	"slices"

	"dirpx.dev/codelist/apis"
)

// sliceSource adapts a plain slice of codes to apis.CodeSource.
type sliceSource []string

func (s sliceSource) Codes() iter.Seq[string] { return slices.Values(s) }

// Codes returns a CodeSource yielding codes in the given order. The slice is
// copied.
func Codes(codes ...string) apis.CodeSource {
	return sliceSource(slices.Clone(codes))
}
