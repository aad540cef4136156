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

// Package httpx writes codelist errors as JSON HTTP responses.
package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"dirpx.dev/codelist/adapter"
	"dirpx.dev/codelist/apis"
)

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// Logger receives a warning when the body cannot be written. Optional.
	Logger *slog.Logger
}

// Write serializes the apis.ErrorView of err and writes it to rw. The HTTP
// status is resolved via the Mapper. A nil err writes nothing.
//
// No automatic redaction or filtering is performed here: whatever is present
// in the error is exposed as-is. Higher-level handlers should apply policies
// if needed.
func (w Writer) Write(rw http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	st := adapter.Resolve(w.Mapper, err)
	view := adapter.ToView(err)

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-Content-Type-Options", "nosniff")
	rw.WriteHeader(st.HTTP)
	if encErr := json.NewEncoder(rw).Encode(view); encErr != nil && w.Logger != nil {
		w.Logger.Warn("write error response",
			slog.String("kind", view.Kind),
			slog.Any("error", encErr),
		)
	}
}

// Handler adapts a function returning an error into an http.Handler. Errors
// are written with w; on success the function is responsible for the
// response.
func (w Writer) Handler(fn func(http.ResponseWriter, *http.Request) error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := fn(rw, r); err != nil {
			w.Write(rw, err)
		}
	})
}
