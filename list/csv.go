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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/system"
)

// CSVOptions selects the columns of a CSV document.
type CSVOptions struct {
	// CodeColumn and TermColumn are zero-based column indexes.
	CodeColumn int
	TermColumn int

	// CodeField and TermField, when set, locate the columns by header name
	// (trimmed, case-insensitive) instead of by index. They require Header.
	CodeField string
	TermField string

	// Header skips the first record.
	Header bool
}

// DefaultCSVOptions reads "code,term" documents with a header row.
var DefaultCSVOptions = CSVOptions{CodeColumn: 0, TermColumn: 1, Header: true}

// ReadCSV reads a list of the given coding system from CSV.
//
// Rows may have any number of columns as long as both configured columns
// exist. Failures carry the 1-based line number in Details["line"]. A header
// without a requested field fails with invalid_code_field or
// invalid_term_field.
func ReadCSV(r io.Reader, typ system.System, opts CSVOptions) (*CodeList, error) {
	byName := opts.CodeField != "" || opts.TermField != ""
	if byName && !opts.Header {
		return nil, codelist.InvalidInput("code and term fields need a header row")
	}
	if !byName {
		if err := checkColumns(opts); err != nil {
			return nil, err
		}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	l := New(typ, NewMetadata(LoadedFromFile))
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, codelist.CSVError(err)
		}
		line, _ := cr.FieldPos(0)
		if first && opts.Header {
			if byName {
				if opts, err = resolveFields(rec, opts); err != nil {
					return nil, err
				}
			}
			continue
		}
		need := max(opts.CodeColumn, opts.TermColumn)
		if len(rec) <= need {
			return nil, codelist.ColumnIndexOutOfBounds(
				fmt.Sprintf("line %d has %d columns, column %d requested", line, len(rec), need),
			).WithDetail("line", line)
		}
		if err := l.AddEntry(rec[opts.CodeColumn], rec[opts.TermColumn]); err != nil {
			var cerr *codelist.Error
			if errors.As(err, &cerr) {
				return nil, cerr.WithDetail("line", line)
			}
			return nil, err
		}
	}
	return l, nil
}

func checkColumns(opts CSVOptions) error {
	if opts.CodeColumn < 0 || opts.TermColumn < 0 {
		return codelist.InvalidInput("column indexes must not be negative")
	}
	if opts.CodeColumn == opts.TermColumn {
		return codelist.InvalidInput(fmt.Sprintf("code column and term column are both %d", opts.CodeColumn))
	}
	return nil
}

// resolveFields replaces the column indexes named by opts.CodeField and
// opts.TermField with their positions in header.
func resolveFields(header []string, opts CSVOptions) (CSVOptions, error) {
	find := func(name string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(name)) {
				return i
			}
		}
		return -1
	}
	if opts.CodeField != "" {
		if opts.CodeColumn = find(opts.CodeField); opts.CodeColumn < 0 {
			return opts, codelist.InvalidCodeField(fmt.Sprintf("no column named %q in header %q", opts.CodeField, header))
		}
	}
	if opts.TermField != "" {
		if opts.TermColumn = find(opts.TermField); opts.TermColumn < 0 {
			return opts, codelist.InvalidTermField(fmt.Sprintf("no column named %q in header %q", opts.TermField, header))
		}
	}
	return opts, checkColumns(opts)
}

// WriteCSV writes the list as "code,term" records with a header row.
func (l *CodeList) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"code", "term"}); err != nil {
		return codelist.CSVError(err)
	}
	for _, e := range l.entries {
		if err := cw.Write([]string{e.Code, e.Term}); err != nil {
			return codelist.CSVError(err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return codelist.CSVError(err)
	}
	return nil
}
