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
	"strings"

	"dirpx.dev/codelist"
)

// Source says how a list came into being.
type Source int

const (
	// ManuallyCreated lists were assembled entry by entry.
	ManuallyCreated Source = iota
	// LoadedFromFile lists were read from CSV or JSON.
	LoadedFromFile
	// MappedFromAnotherCodelist lists were derived from a list of another
	// coding system.
	MappedFromAnotherCodelist
)

var sourceNames = [...]string{
	ManuallyCreated:           "Manually created",
	LoadedFromFile:            "Loaded from file",
	MappedFromAnotherCodelist: "Mapped from another codelist",
}

// String returns the display name of s.
func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceNames) {
		return "Unknown"
	}
	return sourceNames[s]
}

// ParseSource accepts the display name or its snake_case form,
// case-insensitively. Anything else is an invalid_metadata_source error.
func ParseSource(s string) (Source, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "_", " ")
	for i, name := range sourceNames {
		if norm == strings.ToLower(name) {
			return Source(i), nil
		}
	}
	return 0, codelist.InvalidMetadataSource(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(sourceNames) {
		return nil, codelist.InvalidMetadataSource(s.String())
	}
	return []byte(sourceNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Source) UnmarshalText(text []byte) error {
	parsed, err := ParseSource(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
