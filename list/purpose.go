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

import "encoding/json"

// Field names used in metadata errors.
const (
	FieldPurpose         = "purpose"
	FieldTargetAudience  = "target_audience"
	FieldUseContext      = "use_context"
	FieldReviewer        = "reviewer"
	FieldReviewDate      = "review_date"
	FieldStatus          = "status"
	FieldValidationNotes = "validation_notes"
)

// PurposeAndContext records why a list exists, who it is for and where it
// is meant to be used. Each value is optional; Add fails when the value is
// set, Update and Remove fail when it is not.
type PurposeAndContext struct {
	purpose        slot[string]
	targetAudience slot[string]
	useContext     slot[string]
}

func setText(s *slot[string], field, v string, op func(*slot[string], string, string) error) error {
	v, err := text(field, v)
	if err != nil {
		return err
	}
	return op(s, field, v)
}

// AddPurpose sets the purpose.
func (p *PurposeAndContext) AddPurpose(v string) error {
	return setText(&p.purpose, FieldPurpose, v, (*slot[string]).add)
}

// UpdatePurpose replaces the purpose.
func (p *PurposeAndContext) UpdatePurpose(v string) error {
	return setText(&p.purpose, FieldPurpose, v, (*slot[string]).update)
}

// RemovePurpose clears the purpose.
func (p *PurposeAndContext) RemovePurpose() error { return p.purpose.remove(FieldPurpose) }

// Purpose returns the purpose, if set.
func (p *PurposeAndContext) Purpose() (string, bool) { return p.purpose.get() }

// AddTargetAudience sets the target audience.
func (p *PurposeAndContext) AddTargetAudience(v string) error {
	return setText(&p.targetAudience, FieldTargetAudience, v, (*slot[string]).add)
}

// UpdateTargetAudience replaces the target audience.
func (p *PurposeAndContext) UpdateTargetAudience(v string) error {
	return setText(&p.targetAudience, FieldTargetAudience, v, (*slot[string]).update)
}

// RemoveTargetAudience clears the target audience.
func (p *PurposeAndContext) RemoveTargetAudience() error {
	return p.targetAudience.remove(FieldTargetAudience)
}

// TargetAudience returns the target audience, if set.
func (p *PurposeAndContext) TargetAudience() (string, bool) { return p.targetAudience.get() }

// AddUseContext sets the use context.
func (p *PurposeAndContext) AddUseContext(v string) error {
	return setText(&p.useContext, FieldUseContext, v, (*slot[string]).add)
}

// UpdateUseContext replaces the use context.
func (p *PurposeAndContext) UpdateUseContext(v string) error {
	return setText(&p.useContext, FieldUseContext, v, (*slot[string]).update)
}

// RemoveUseContext clears the use context.
func (p *PurposeAndContext) RemoveUseContext() error { return p.useContext.remove(FieldUseContext) }

// UseContext returns the use context, if set.
func (p *PurposeAndContext) UseContext() (string, bool) { return p.useContext.get() }

type purposeJSON struct {
	Purpose        *string `json:"purpose,omitempty"`
	TargetAudience *string `json:"target_audience,omitempty"`
	UseContext     *string `json:"use_context,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (p PurposeAndContext) MarshalJSON() ([]byte, error) {
	return json.Marshal(purposeJSON{
		Purpose:        p.purpose.ptr(),
		TargetAudience: p.targetAudience.ptr(),
		UseContext:     p.useContext.ptr(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PurposeAndContext) UnmarshalJSON(data []byte) error {
	var v purposeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	p.purpose.load(v.Purpose)
	p.targetAudience.load(v.TargetAudience)
	p.useContext.load(v.UseContext)
	return nil
}
