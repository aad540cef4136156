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
	"fmt"
	"strings"

	"dirpx.dev/codelist"
)

// slot is an optional metadata value with add/update/remove semantics.
type slot[T any] struct {
	v   T
	set bool
}

func (s *slot[T]) add(field string, v T) error {
	if s.set {
		return codelist.MetadataAlreadyExists(field, fmt.Sprint(s.v))
	}
	s.v, s.set = v, true
	return nil
}

func (s *slot[T]) update(field string, v T) error {
	if !s.set {
		return codelist.MetadataDoesNotExist(field, "nothing to update, add it first")
	}
	s.v = v
	return nil
}

func (s *slot[T]) remove(field string) error {
	if !s.set {
		return codelist.MetadataDoesNotExist(field, "nothing to remove")
	}
	*s = slot[T]{}
	return nil
}

func (s slot[T]) get() (T, bool) { return s.v, s.set }

// ptr and load convert to and from the JSON form, where nil means unset.
func (s slot[T]) ptr() *T {
	if !s.set {
		return nil
	}
	v := s.v
	return &v
}

func (s *slot[T]) load(p *T) {
	if p == nil {
		*s = slot[T]{}
		return
	}
	s.v, s.set = *p, true
}

// text trims s and rejects an empty result.
func text(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", codelist.InvalidInput(strings.ReplaceAll(field, "_", " ") + " must not be empty")
	}
	return s, nil
}
