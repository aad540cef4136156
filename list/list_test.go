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
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/codelist"
	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
	"dirpx.dev/codelist/validator"
)

// fixClock makes provenance dates deterministic for one test.
func fixClock(t *testing.T, ts ...time.Time) {
	t.Helper()
	orig := now
	i := 0
	now = func() time.Time {
		v := ts[min(i, len(ts)-1)]
		i++
		return v
	}
	t.Cleanup(func() { now = orig })
}

func requireKind(t *testing.T, err error, k kind.Kind) *codelist.Error {
	t.Helper()
	require.Error(t, err)
	cerr, ok := err.(*codelist.Error)
	require.True(t, ok, "want *codelist.Error, got %T", err)
	require.Equal(t, k, cerr.Kind)
	return cerr
}

func opcsList(t *testing.T) *CodeList {
	t.Helper()
	l := New(system.OPCS, Metadata{
		Provenance:  NewProvenance(ManuallyCreated),
		Authors:     []string{"Caroline Morton"},
		Version:     "2024-12-19",
		Description: "A test codelist",
	})
	require.NoError(t, l.AddEntry("C01", "Excision of eye"))
	require.NoError(t, l.AddEntry("C02", "Extirpation of lesion of orbit"))
	require.NoError(t, l.AddEntry("C03", "Insertion of prosthesis of eye"))
	return l
}

func TestNew(t *testing.T) {
	l := New(system.OPCS, NewMetadata(ManuallyCreated))
	assert.Equal(t, system.OPCS, l.Type())
	assert.Zero(t, l.Len())
	assert.NotEqual(t, uuid.Nil, l.ID())
	assert.NotEqual(t, l.ID(), New(system.OPCS, NewMetadata(ManuallyCreated)).ID())
}

func TestAddEntry(t *testing.T) {
	l := opcsList(t)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"C01", "C02", "C03"}, slices.Collect(l.Codes()))

	require.NoError(t, l.AddEntry("  C04 ", " Attention to prosthesis of eye "))
	assert.Equal(t, Entry{Code: "C04", Term: "Attention to prosthesis of eye"}, l.Entries()[3])

	require.NoError(t, l.AddEntry("C01", "Excision of eye"), "exact duplicate is a no-op")
	assert.Equal(t, 4, l.Len())

	require.NoError(t, l.AddEntry("C01", "Enucleation of eye"), "same code, other term is kept")
	assert.Equal(t, []string{"C01", "C02", "C03", "C04", "C01"}, slices.Collect(l.Codes()))
}

func TestAddEntry_Empty(t *testing.T) {
	l := opcsList(t)
	requireKind(t, l.AddEntry(" ", "Term"), kind.EmptyCode)
	cerr := requireKind(t, l.AddEntry("C09", ""), kind.EmptyTerm)
	assert.Equal(t, "Empty term: term must not be empty for code C09", cerr.Error())
	assert.Equal(t, 3, l.Len())
}

func TestRemoveEntry(t *testing.T) {
	l := opcsList(t)
	require.NoError(t, l.AddEntry("C01", "Enucleation of eye"))
	require.NoError(t, l.RemoveEntry("C01"))
	assert.Equal(t, []string{"C02", "C03"}, slices.Collect(l.Codes()))

	cerr := requireKind(t, l.RemoveEntry("C01"), kind.EntryNotFound)
	assert.Equal(t, "Entry not found: C01", cerr.Error())
	assert.ErrorIs(t, cerr, codelist.ErrEntryNotFound)
}

func TestComments(t *testing.T) {
	l := opcsList(t)

	require.NoError(t, l.AddComment("C01", "Excision of eye", "checked"))
	assert.Equal(t, "checked", l.Entries()[0].Comment)

	cerr := requireKind(t, l.AddComment("C01", "Excision of eye", "again"), kind.CommentAlreadyExists)
	assert.Equal(t, "Comment for CodeEntry with code C01 and term Excision of eye already exists. "+
		"Please update comment instead.", cerr.Error())

	require.NoError(t, l.UpdateComment("C01", "Excision of eye", "re-checked"))
	assert.Equal(t, "re-checked", l.Entries()[0].Comment)

	require.NoError(t, l.RemoveComment("C01", "Excision of eye"))
	assert.Empty(t, l.Entries()[0].Comment)

	requireKind(t, l.UpdateComment("C01", "Excision of eye", "x"), kind.CommentDoesNotExist)
	requireKind(t, l.RemoveComment("C01", "Excision of eye"), kind.CommentDoesNotExist)
	requireKind(t, l.AddComment("C01", "Wrong term", "x"), kind.EntryNotFound)
	requireKind(t, l.RemoveComment("C99", "x"), kind.EntryNotFound)
	requireKind(t, l.AddComment("C01", "Excision of eye", "  "), kind.InvalidInput)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	l := opcsList(t)
	es := l.Entries()
	es[0].Code = "ZZZ"
	assert.Equal(t, "C01", l.Entries()[0].Code)
}

func TestCodes_StopsEarly(t *testing.T) {
	l := opcsList(t)
	var got []string
	for c := range l.Codes() {
		got = append(got, c)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"C01", "C02"}, got)
}

func TestMutationsTouchLastModified(t *testing.T) {
	t0 := time.Date(2024, 12, 19, 9, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	fixClock(t, t0, t1)

	l := New(system.OPCS, NewMetadata(ManuallyCreated))
	assert.Equal(t, t0, l.Metadata.Provenance.CreatedDate)
	assert.Equal(t, t0, l.Metadata.Provenance.LastModifiedDate)

	require.NoError(t, l.AddEntry("C01", "Excision of eye"))
	assert.Equal(t, t0, l.Metadata.Provenance.CreatedDate)
	assert.Equal(t, t1, l.Metadata.Provenance.LastModifiedDate)
}

func TestCodeListValidates(t *testing.T) {
	l := opcsList(t)
	assert.NoError(t, validator.OPCS().ValidateAll(l))

	require.NoError(t, l.AddEntry("A01000", "Extirpation of lesion of orbit"))
	require.NoError(t, l.AddEntry("AA1", "Attention to prosthesis of eye"))
	err := validator.OPCS().ValidateAll(l)
	cerr := requireKind(t, err, kind.InvalidCodelist)
	assert.Equal(t, []string{"A01000", "AA1"}, cerr.InvalidCodes())
}
