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

package adapter

import (
	"errors"

	"dirpx.dev/codelist/apis"
	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
)

// Unknown is the kind reported for errors that carry no kind of their own.
// No mapper rule exists for it, so it resolves to the mapper fallback.
const Unknown = "unknown"

// Classify returns the kind and coding system of err, looking through
// wrapping. Foreign errors yield (Unknown, system.Empty).
func Classify(err error) (kind.Kind, system.System) {
	k := kind.Kind(Unknown)
	var ke apis.KindedError
	if errors.As(err, &ke) {
		k = kind.Kind(ke.ErrorKind())
	}
	s := system.Empty
	var se apis.SystemError
	if errors.As(err, &se) {
		s = system.System(se.ErrorSystem())
	}
	return k, s
}

// Resolve classifies err and resolves its transport statuses with m.
func Resolve(m apis.Mapper, err error) apis.Status {
	k, s := Classify(err)
	return m.Status(k, s)
}

// ToView converts an error into a public ErrorView. This function performs no
// automatic redaction or filtering; it exposes exactly what the error
// instance contains.
//
// Errors implementing apis.ViewProvider (anywhere in the chain) render
// themselves. Other errors are assembled from the kind, system and detail
// interfaces they implement.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}
	k, s := Classify(err)
	v := apis.ErrorView{
		Kind:    string(k),
		System:  string(s),
		Message: err.Error(),
	}
	var de apis.DetailedError
	if errors.As(err, &de) {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}

// ToDescriptor converts an error together with its resolved transport status
// into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging or message bus
// propagation. Invalid counts the invalid entries of aggregate failures.
func ToDescriptor(err error, st apis.Status) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	v := ToView(err)
	d := apis.ErrorDescriptor{
		Kind:       v.Kind,
		System:     v.System,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    v.Message,
	}
	if v.Kind == string(kind.InvalidCodelist) {
		d.Invalid = len(v.Details)
	}
	return d
}
