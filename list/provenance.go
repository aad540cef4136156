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
	"maps"
	"slices"
	"time"

	"dirpx.dev/codelist"
)

// now is the clock used for provenance dates.
var now = func() time.Time { return time.Now().UTC() }

// Provenance records the origin and the editing history of a list.
type Provenance struct {
	Source           Source
	CreatedDate      time.Time
	LastModifiedDate time.Time

	contributors map[string]struct{}
}

// NewProvenance returns a provenance created now.
func NewProvenance(src Source, contributors ...string) Provenance {
	t := now()
	p := Provenance{Source: src, CreatedDate: t, LastModifiedDate: t}
	for _, c := range contributors {
		p.AddContributor(c)
	}
	return p
}

// UpdateLastModifiedDate sets the last modified date to now.
func (p *Provenance) UpdateLastModifiedDate() {
	p.LastModifiedDate = now()
}

// AddContributor records a contributor. Adding a known contributor is a no-op.
func (p *Provenance) AddContributor(name string) {
	if p.contributors == nil {
		p.contributors = make(map[string]struct{})
	}
	p.contributors[name] = struct{}{}
}

// RemoveContributor forgets a contributor, or returns a contributor_not_found
// error.
func (p *Provenance) RemoveContributor(name string) error {
	if _, ok := p.contributors[name]; !ok {
		return codelist.ContributorNotFound(name)
	}
	delete(p.contributors, name)
	return nil
}

// Contributors returns the contributors in sorted order.
func (p *Provenance) Contributors() []string {
	return slices.Sorted(maps.Keys(p.contributors))
}

func (p Provenance) clone() Provenance {
	p.contributors = maps.Clone(p.contributors)
	return p
}

type provenanceJSON struct {
	Source           Source    `json:"source"`
	CreatedDate      time.Time `json:"created_date"`
	LastModifiedDate time.Time `json:"last_modified_date"`
	Contributors     []string  `json:"contributors"`
}

// MarshalJSON implements json.Marshaler.
func (p Provenance) MarshalJSON() ([]byte, error) {
	cs := p.Contributors()
	if cs == nil {
		cs = []string{}
	}
	return json.Marshal(provenanceJSON{
		Source:           p.Source,
		CreatedDate:      p.CreatedDate,
		LastModifiedDate: p.LastModifiedDate,
		Contributors:     cs,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Provenance) UnmarshalJSON(data []byte) error {
	var v provenanceJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Provenance{Source: v.Source, CreatedDate: v.CreatedDate, LastModifiedDate: v.LastModifiedDate}
	for _, c := range v.Contributors {
		p.AddContributor(c)
	}
	return nil
}
