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
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
)

func TestReadCSV_ByField(t *testing.T) {
	doc := "id, Term ,CODE\n1,Excision of eye,C01\n2,Plastic repair of orbit,C05\n"
	l, err := ReadCSV(strings.NewReader(doc), system.OPCS, CSVOptions{CodeField: "code", TermField: "term", Header: true})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Code: "C01", Term: "Excision of eye"},
		{Code: "C05", Term: "Plastic repair of orbit"},
	}, l.Entries())

	// A field overrides only its own column.
	l, err = ReadCSV(strings.NewReader(doc), system.OPCS, CSVOptions{CodeField: "code", TermColumn: 1, Header: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"C01", "C05"}, slices.Collect(l.Codes()))
}

func TestReadCSV_FieldErrors(t *testing.T) {
	doc := "code,description\nC01,Excision of eye\n"

	_, err := ReadCSV(strings.NewReader(doc), system.OPCS, CSVOptions{CodeField: "snomed_code", TermField: "description", Header: true})
	cerr := requireKind(t, err, kind.InvalidCodeField)
	assert.Contains(t, cerr.Error(), `no column named "snomed_code"`)

	_, err = ReadCSV(strings.NewReader(doc), system.OPCS, CSVOptions{CodeField: "code", TermField: "term", Header: true})
	requireKind(t, err, kind.InvalidTermField)

	_, err = ReadCSV(strings.NewReader(doc), system.OPCS, CSVOptions{CodeField: "code", TermField: "code", Header: true})
	requireKind(t, err, kind.InvalidInput)

	_, err = ReadCSV(strings.NewReader(doc), system.OPCS, CSVOptions{CodeField: "code", TermField: "description"})
	requireKind(t, err, kind.InvalidInput)
}

func TestReadJSON_EntryTypes(t *testing.T) {
	tests := map[string]struct {
		doc  string
		kind kind.Kind
	}{
		"numeric code":  {`{"type":"snomed","entries":[{"code":22298006,"term":"Myocardial infarction"}]}`, kind.InvalidCodeType},
		"object term":   {`{"type":"opcs","entries":[{"code":"C01","term":{"en":"Excision"}}]}`, kind.InvalidTermType},
		"missing code":  {`{"type":"opcs","entries":[{"term":"Excision of eye"}]}`, kind.EmptyCode},
		"null term":     {`{"type":"opcs","entries":[{"code":"C01","term":null}]}`, kind.EmptyTerm},
		"bad reviewers": {`{"type":"opcs","metadata":{"validation_and_review":{"reviewers":["A","A"]}}}`, kind.JSON},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			requireKind(t, err, tt.kind)
		})
	}

	_, err := ReadJSON(strings.NewReader(`{"type":"opcs","entries":[{"code":"C01","term":"ok"},{"code":"C02","term":7}]}`))
	cerr := requireKind(t, err, kind.InvalidTermType)
	assert.Equal(t, 1, cerr.Details["entry"])
	assert.Equal(t, "Invalid term type: entry 1: term must be a string, got 7", cerr.Error())
}

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]Format{"a.csv": CSV, "dir/b.TXT": CSV, "c.Json": JSON} {
		got, err := FormatOf(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatOf("list.xlsx")
	cerr := requireKind(t, err, kind.InvalidFilePath)
	assert.Equal(t, "Invalid file path: list.xlsx: unsupported extension .xlsx", cerr.Error())

	_, err = FormatOf("list")
	requireKind(t, err, kind.InvalidFilePath)
}

func TestFiles_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := opcsList(t)

	csvPath := filepath.Join(dir, "eye.csv")
	require.NoError(t, l.WriteFile(csvPath))
	fromCSV, err := ReadFile(csvPath, system.OPCS, DefaultCSVOptions)
	require.NoError(t, err)
	assert.Equal(t, l.Entries(), fromCSV.Entries())

	jsonPath := filepath.Join(dir, "eye.json")
	require.NoError(t, l.WriteFile(jsonPath))
	fromJSON, err := ReadFile(jsonPath, system.Empty, DefaultCSVOptions)
	require.NoError(t, err)
	assert.Equal(t, l.ID(), fromJSON.ID())
	assert.Equal(t, system.OPCS, fromJSON.Type())
}

func TestFiles_Errors(t *testing.T) {
	dir := t.TempDir()

	requireKind(t, opcsList(t).WriteFile(filepath.Join(dir, "eye.xlsx")), kind.InvalidFilePath)
	_, err := os.Stat(filepath.Join(dir, "eye.xlsx"))
	assert.True(t, os.IsNotExist(err), "nothing may be written for an unsupported path")

	_, err = ReadFile(filepath.Join(dir, "missing.csv"), system.OPCS, DefaultCSVOptions)
	cerr := requireKind(t, err, kind.IO)
	assert.ErrorIs(t, cerr, os.ErrNotExist)

	requireKind(t, opcsList(t).WriteFile(filepath.Join(dir, "no", "such", "dir.csv")), kind.IO)
}
