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
	"strings"
	"time"

	"dirpx.dev/codelist"
)

// ValidationAndReview records who reviewed a list, when, with what outcome.
type ValidationAndReview struct {
	reviewers       map[string]struct{}
	reviewDate      slot[time.Time]
	status          slot[string]
	validationNotes slot[string]
}

// AddReviewer records a reviewer. Names are trimmed; a known reviewer is
// rejected.
func (v *ValidationAndReview) AddReviewer(name string) error {
	name, err := text(FieldReviewer, name)
	if err != nil {
		return err
	}
	if _, ok := v.reviewers[name]; ok {
		return codelist.MetadataAlreadyExists(FieldReviewer, name)
	}
	if v.reviewers == nil {
		v.reviewers = make(map[string]struct{})
	}
	v.reviewers[name] = struct{}{}
	return nil
}

// RemoveReviewer forgets a reviewer.
func (v *ValidationAndReview) RemoveReviewer(name string) error {
	name = strings.TrimSpace(name)
	if _, ok := v.reviewers[name]; !ok {
		return codelist.MetadataDoesNotExist(FieldReviewer, name)
	}
	delete(v.reviewers, name)
	return nil
}

// Reviewers returns the reviewers in sorted order.
func (v *ValidationAndReview) Reviewers() []string {
	return slices.Sorted(maps.Keys(v.reviewers))
}

// AddReviewDate sets the review date, stored in UTC.
func (v *ValidationAndReview) AddReviewDate(t time.Time) error {
	return v.reviewDate.add(FieldReviewDate, t.UTC())
}

// UpdateReviewDate replaces the review date.
func (v *ValidationAndReview) UpdateReviewDate(t time.Time) error {
	return v.reviewDate.update(FieldReviewDate, t.UTC())
}

// RemoveReviewDate clears the review date.
func (v *ValidationAndReview) RemoveReviewDate() error { return v.reviewDate.remove(FieldReviewDate) }

// ReviewDate returns the review date, or a review_date_is_none error.
func (v *ValidationAndReview) ReviewDate() (time.Time, error) {
	t, ok := v.reviewDate.get()
	if !ok {
		return time.Time{}, codelist.ReviewDateIsNone()
	}
	return t, nil
}

// AddStatus sets the review status, e.g. "draft" or "approved".
func (v *ValidationAndReview) AddStatus(s string) error {
	return setText(&v.status, FieldStatus, s, (*slot[string]).add)
}

// UpdateStatus replaces the review status.
func (v *ValidationAndReview) UpdateStatus(s string) error {
	return setText(&v.status, FieldStatus, s, (*slot[string]).update)
}

// RemoveStatus clears the review status.
func (v *ValidationAndReview) RemoveStatus() error { return v.status.remove(FieldStatus) }

// Status returns the review status, if set.
func (v *ValidationAndReview) Status() (string, bool) { return v.status.get() }

// AddValidationNotes sets the validation notes.
func (v *ValidationAndReview) AddValidationNotes(s string) error {
	return setText(&v.validationNotes, FieldValidationNotes, s, (*slot[string]).add)
}

// UpdateValidationNotes replaces the validation notes.
func (v *ValidationAndReview) UpdateValidationNotes(s string) error {
	return setText(&v.validationNotes, FieldValidationNotes, s, (*slot[string]).update)
}

// RemoveValidationNotes clears the validation notes.
func (v *ValidationAndReview) RemoveValidationNotes() error {
	return v.validationNotes.remove(FieldValidationNotes)
}

// ValidationNotes returns the validation notes, if set.
func (v *ValidationAndReview) ValidationNotes() (string, bool) { return v.validationNotes.get() }

func (v ValidationAndReview) clone() ValidationAndReview {
	v.reviewers = maps.Clone(v.reviewers)
	return v
}

type reviewJSON struct {
	Reviewers       []string   `json:"reviewers"`
	ReviewDate      *time.Time `json:"review_date,omitempty"`
	Status          *string    `json:"status,omitempty"`
	ValidationNotes *string    `json:"validation_notes,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v ValidationAndReview) MarshalJSON() ([]byte, error) {
	rs := v.Reviewers()
	if rs == nil {
		rs = []string{}
	}
	return json.Marshal(reviewJSON{
		Reviewers:       rs,
		ReviewDate:      v.reviewDate.ptr(),
		Status:          v.status.ptr(),
		ValidationNotes: v.validationNotes.ptr(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *ValidationAndReview) UnmarshalJSON(data []byte) error {
	var j reviewJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*v = ValidationAndReview{}
	for _, r := range j.Reviewers {
		if err := v.AddReviewer(r); err != nil {
			return err
		}
	}
	v.reviewDate.load(j.ReviewDate)
	v.status.load(j.Status)
	v.validationNotes.load(j.ValidationNotes)
	return nil
}
