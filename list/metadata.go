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

import "slices"

// Metadata describes a list as a whole.
//
// Provenance and ValidationAndReview hold sets; copying a Metadata value
// shares them. New clones the metadata it is given.
type Metadata struct {
	Provenance          Provenance          `json:"provenance"`
	PurposeAndContext   PurposeAndContext   `json:"purpose_and_context"`
	ValidationAndReview ValidationAndReview `json:"validation_and_review"`
	Authors             []string            `json:"authors,omitempty"`
	Version             string              `json:"version,omitempty"`
	Description         string              `json:"description,omitempty"`
}

// NewMetadata returns metadata with a fresh provenance.
func NewMetadata(src Source) Metadata {
	return Metadata{Provenance: NewProvenance(src)}
}

// Clone returns a deep copy of m.
func (m Metadata) Clone() Metadata {
	m.Provenance = m.Provenance.clone()
	m.ValidationAndReview = m.ValidationAndReview.clone()
	m.Authors = slices.Clone(m.Authors)
	return m
}
