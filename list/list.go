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
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/apis"
	"dirpx.dev/codelist/system"
)

// Entry is one (code, term) pair. Comment is empty when the entry has none.
type Entry struct {
	Code    string `json:"code"`
	Term    string `json:"term"`
	Comment string `json:"comment,omitempty"`
}

// CodeList is an ordered list of entries of one coding system.
type CodeList struct {
	id       uuid.UUID
	typ      system.System
	Metadata Metadata
	entries  []Entry
}

var _ apis.CodeSource = (*CodeList)(nil)

// New returns an empty list of the given coding system with a copy of md.
func New(typ system.System, md Metadata) *CodeList {
	return &CodeList{id: uuid.New(), typ: typ, Metadata: md.Clone()}
}

// ID returns the identifier assigned when the list was created.
func (l *CodeList) ID() uuid.UUID { return l.id }

// Type returns the coding system of the list.
func (l *CodeList) Type() system.System { return l.typ }

// Len returns the number of entries.
func (l *CodeList) Len() int { return len(l.entries) }

// Entries returns a copy of the entries in insertion order.
func (l *CodeList) Entries() []Entry { return slices.Clone(l.entries) }

// Codes yields the code of every entry in insertion order.
func (l *CodeList) Codes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range l.entries {
			if !yield(e.Code) {
				return
			}
		}
	}
}

// AddEntry appends a (code, term) pair. Both are trimmed and must be
// non-empty. Adding an existing pair again is a no-op; the same code with a
// different term is a separate entry.
func (l *CodeList) AddEntry(code, term string) error {
	code = strings.TrimSpace(code)
	term = strings.TrimSpace(term)
	if code == "" {
		return codelist.EmptyCode("code must not be empty")
	}
	if term == "" {
		return codelist.EmptyTerm("term must not be empty for code " + code)
	}
	if l.index(code, term) >= 0 {
		return nil
	}
	l.entries = append(l.entries, Entry{Code: code, Term: term})
	l.touch()
	return nil
}

// RemoveEntry removes every entry with the given code.
func (l *CodeList) RemoveEntry(code string) error {
	n := len(l.entries)
	l.entries = slices.DeleteFunc(l.entries, func(e Entry) bool { return e.Code == code })
	if len(l.entries) == n {
		return codelist.EntryNotFound(code)
	}
	l.touch()
	return nil
}

// AddComment attaches a comment to the entry (code, term).
func (l *CodeList) AddComment(code, term, comment string) error {
	i, err := l.commentTarget(code, term, comment)
	if err != nil {
		return err
	}
	if l.entries[i].Comment != "" {
		return codelist.CommentAlreadyExists(code, term)
	}
	l.entries[i].Comment = comment
	l.touch()
	return nil
}

// UpdateComment replaces the existing comment of the entry (code, term).
func (l *CodeList) UpdateComment(code, term, comment string) error {
	i, err := l.commentTarget(code, term, comment)
	if err != nil {
		return err
	}
	if l.entries[i].Comment == "" {
		return codelist.CommentDoesNotExist(code, term)
	}
	l.entries[i].Comment = comment
	l.touch()
	return nil
}

// RemoveComment deletes the comment of the entry (code, term).
func (l *CodeList) RemoveComment(code, term string) error {
	i := l.index(code, term)
	if i < 0 {
		return codelist.EntryNotFound(code)
	}
	if l.entries[i].Comment == "" {
		return codelist.CommentDoesNotExist(code, term)
	}
	l.entries[i].Comment = ""
	l.touch()
	return nil
}

func (l *CodeList) commentTarget(code, term, comment string) (int, error) {
	if strings.TrimSpace(comment) == "" {
		return -1, codelist.InvalidInput("comment must not be empty")
	}
	i := l.index(code, term)
	if i < 0 {
		return -1, codelist.EntryNotFound(code)
	}
	return i, nil
}

func (l *CodeList) index(code, term string) int {
	return slices.IndexFunc(l.entries, func(e Entry) bool { return e.Code == code && e.Term == term })
}

func (l *CodeList) touch() { l.Metadata.Provenance.UpdateLastModifiedDate() }
