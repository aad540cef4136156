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

package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/system"
)

// document is the JSON form of a CodeList.
type document struct {
	ID       uuid.UUID     `json:"id"`
	Type     system.System `json:"type"`
	Metadata Metadata      `json:"metadata"`
	Entries  []Entry       `json:"entries"`
}

// rawEntry defers decoding of code and term so that a value of the wrong
// type is reported per field.
type rawEntry struct {
	Code    json.RawMessage `json:"code"`
	Term    json.RawMessage `json:"term"`
	Comment string          `json:"comment,omitempty"`
}

type rawDocument struct {
	ID       uuid.UUID     `json:"id"`
	Type     system.System `json:"type"`
	Metadata Metadata      `json:"metadata"`
	Entries  []rawEntry    `json:"entries"`
}

// ReadJSON decodes a list written by WriteJSON. Entries are checked the same
// way AddEntry checks them; a code or term that is not a JSON string fails
// with invalid_code_type or invalid_term_type. The stored metadata is kept
// as-is.
func ReadJSON(r io.Reader) (*CodeList, error) {
	var doc rawDocument
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, codelist.JSONError(err)
	}
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}

	l := &CodeList{id: doc.ID, typ: doc.Type}
	for n, raw := range doc.Entries {
		var e Entry
		if !decodeString(raw.Code, &e.Code) {
			return nil, codelist.InvalidCodeType(fmt.Sprintf("entry %d: code must be a string, got %s", n, raw.Code)).
				WithDetail("entry", n)
		}
		if !decodeString(raw.Term, &e.Term) {
			return nil, codelist.InvalidTermType(fmt.Sprintf("entry %d: term must be a string, got %s", n, raw.Term)).
				WithDetail("entry", n)
		}
		if err := l.AddEntry(e.Code, e.Term); err != nil {
			return nil, err
		}
		if raw.Comment != "" {
			i := l.index(strings.TrimSpace(e.Code), strings.TrimSpace(e.Term))
			if l.entries[i].Comment == "" {
				l.entries[i].Comment = raw.Comment
			}
		}
	}
	l.Metadata = doc.Metadata
	return l, nil
}

// decodeString reports whether m is absent, null or a JSON string.
func decodeString(m json.RawMessage, dst *string) bool {
	return len(m) == 0 || json.Unmarshal(m, dst) == nil
}

// WriteJSON encodes the list as indented JSON.
func (l *CodeList) WriteJSON(w io.Writer) error {
	entries := l.entries
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{ID: l.id, Type: l.typ, Metadata: l.Metadata, Entries: entries}); err != nil {
		return codelist.JSONError(err)
	}
	return nil
}
