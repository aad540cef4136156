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

// Package validator implements the "validate an entire list" protocol once,
// for any per-code rule.
//
// A Rule is anything with ValidateCode(string) error; every *grammar.Grammar
// is one. New wraps a rule into a *Validator providing both operations of
// apis.Validator:
//
//	v := validator.New(grammar.OPCS())
//	if err := v.ValidateAll(myList); err != nil {
//	    var cerr *codelist.Error
//	    if errors.As(err, &cerr) {
//	        for _, f := range cerr.Reasons {
//	            fmt.Println(f.Code, f.Reason)
//	        }
//	    }
//	}
//
// ValidateAll never stops at the first failure. It returns nil for a fully
// valid list and otherwise exactly one invalid_codelist error holding one
// failure per invalid entry, in scan order. Duplicate codes are reported once
// per occurrence.
package validator
