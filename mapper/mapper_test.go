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

package mapper

import (
	"strings"
	"sync"
	"testing"

	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
	"google.golang.org/grpc/codes"
)

func TestDefaults(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(k kind.Kind, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(k, system.Empty)
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				k, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(kind.InvalidCodeLength, 400, codes.InvalidArgument)
	check(kind.InvalidCodeContents, 400, codes.InvalidArgument)
	check(kind.InvalidCodelist, 422, codes.InvalidArgument)
	check(kind.InvalidCodelistType, 400, codes.InvalidArgument)
	check(kind.EntryNotFound, 404, codes.NotFound)
	check(kind.ContributorNotFound, 404, codes.NotFound)
	check(kind.CommentDoesNotExist, 404, codes.NotFound)
	check(kind.CommentAlreadyExists, 409, codes.AlreadyExists)
	check(kind.EmptyTerm, 400, codes.InvalidArgument)
	check(kind.CSV, 500, codes.Internal)
}

func TestDefaultsCoverEveryKnownKind(t *testing.T) {
	for k := range defaultHTTP {
		if _, ok := defaultGRPC[k]; !ok {
			t.Fatalf("kind %q has an HTTP default but no gRPC default", k)
		}
		if !kind.Known(k) {
			t.Fatalf("default for unknown kind %q", k)
		}
	}
	if len(defaultHTTP) != len(defaultGRPC) {
		t.Fatalf("default tables differ in size: %d vs %d", len(defaultHTTP), len(defaultGRPC))
	}
}

func TestSystemIsIgnoredWithoutRule(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(kind.InvalidCodelist, system.OPCS); got != 422 {
		t.Fatalf("got %d, want 422", got)
	}
}

func TestPriority_OverrideOverSystemOverDefault_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPDefault(kind.InvalidCodeContents, 400),
		WithHTTPSystem(kind.InvalidCodeContents, system.SNOMED, 404),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(kind.InvalidCodeContents, system.SNOMED); got != 404 {
		t.Fatalf("system rule must beat default; got %d, want 404", got)
	}
	if got := m.HTTPStatus(kind.InvalidCodeContents, system.OPCS); got != 400 {
		t.Fatalf("other systems use the default; got %d, want 400", got)
	}

	m2, err := New(
		WithHTTPSystem(kind.InvalidCodeContents, system.SNOMED, 404),
		WithHTTPOverride(kind.InvalidCodeContents, 418),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m2.HTTPStatus(kind.InvalidCodeContents, system.SNOMED); got != 418 {
		t.Fatalf("override must win; got %d, want 418", got)
	}
}

func TestPriority_OverrideOverSystemOverDefault_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCDefault(kind.InvalidCodelist, int(codes.FailedPrecondition)),
		WithGRPCSystem(kind.InvalidCodelist, system.ICD10, int(codes.OutOfRange)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(kind.InvalidCodelist, system.ICD10); got != codes.OutOfRange {
		t.Fatalf("got %v, want %v", got, codes.OutOfRange)
	}
	if got := m.GRPCStatus(kind.InvalidCodelist, system.Empty); got != codes.FailedPrecondition {
		t.Fatalf("got %v, want %v", got, codes.FailedPrecondition)
	}

	m2, err := New(
		WithGRPCSystem(kind.InvalidCodelist, system.ICD10, int(codes.OutOfRange)),
		WithGRPCOverride(kind.InvalidCodelist, int(codes.Aborted)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m2.GRPCStatus(kind.InvalidCodelist, system.ICD10); got != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", got, codes.Aborted)
	}
}

func TestFallback(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st := m.Status("something_else", system.Empty)
	if st.HTTP != 500 || st.GRPC != codes.Internal {
		t.Fatalf("fallback got %+v", st)
	}

	m2, err := New(WithFallback(503, codes.Unavailable))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	st = m2.Status("something_else", system.Empty)
	if st.HTTP != 503 || st.GRPC != codes.Unavailable {
		t.Fatalf("custom fallback got %+v", st)
	}
}

func TestNew_RejectsBadRules(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"bad kind", WithHTTPOverride("Not A Kind", 400)},
		{"bad system", WithHTTPSystem(kind.InvalidCodeLength, "OPCS-4", 400)},
		{"bad grpc system kind", WithGRPCSystem("x", system.OPCS, 3)},
		{"http too low", WithHTTPDefault(kind.InvalidCodeLength, 42)},
		{"http too high", WithHTTPOverride(kind.InvalidCodeLength, 700)},
		{"grpc negative", WithGRPCDefault(kind.InvalidCodeLength, -1)},
		{"grpc too high", WithGRPCOverride(kind.InvalidCodeLength, 17)},
		{"bad fallback", WithFallback(0, codes.Internal)},
		{"bad grpc fallback", WithFallback(500, codes.Code(99))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.opt)
			if err == nil {
				t.Fatalf("expected error, got mapper %v", m)
			}
			if !strings.HasPrefix(err.Error(), "mapper: ") {
				t.Fatalf("error should be prefixed with package name: %v", err)
			}
		})
	}
}

func TestNew_ReportsFirstBadRuleSet(t *testing.T) {
	opts := []Option{
		WithGRPCSystem(kind.InvalidCodeLength, "Bad System", 3),
		WithHTTPOverride("Zz Bad", 400),
		WithHTTPOverride("Aa Bad", 400),
		WithGRPCDefault("Also Bad", 3),
	}
	const want = `mapper: invalid gRPC default rule: kind "Also Bad"`
	for i := 0; i < 50; i++ {
		_, err := New(opts...)
		if err == nil || !strings.HasPrefix(err.Error(), want) {
			t.Fatalf("run %d: got %v, want prefix %q", i, err, want)
		}
	}

	_, err := New(opts[1], opts[2])
	if err == nil || !strings.HasPrefix(err.Error(), `mapper: invalid HTTP override rule: kind "Aa Bad"`) {
		t.Fatalf("got %v, want the first bad key in sorted order", err)
	}
}

func TestNew_NilOptionIgnored(t *testing.T) {
	if _, err := New(nil); err != nil {
		t.Fatalf("New(nil): %v", err)
	}
}

func TestSnapshotIsDetachedFromDefaults(t *testing.T) {
	m, err := New(WithHTTPDefault(kind.InvalidCodeLength, 409))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if defaultHTTP[kind.InvalidCodeLength] != 400 {
		t.Fatalf("options must not mutate package defaults")
	}
	if got := m.HTTPStatus(kind.InvalidCodeLength, system.Empty); got != 409 {
		t.Fatalf("got %d, want 409", got)
	}
	m2, _ := New()
	if got := m2.HTTPStatus(kind.InvalidCodeLength, system.Empty); got != 400 {
		t.Fatalf("second mapper sees first mapper's options: %d", got)
	}
}

func TestConcurrentReads(t *testing.T) {
	m, err := New(WithHTTPSystem(kind.InvalidCodelist, system.OPCS, 400))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if st := m.Status(kind.InvalidCodelist, system.OPCS); st.HTTP != 400 {
					t.Errorf("got %d", st.HTTP)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkStatus(b *testing.B) {
	m, err := New(WithHTTPSystem(kind.InvalidCodelist, system.OPCS, 400))
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = m.Status(kind.InvalidCodelist, system.OPCS)
	}
}
