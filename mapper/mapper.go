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
	"fmt"
	"strings"

	"dirpx.dev/codelist/apis"
	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance; no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, system rules).
//  3. Validate every kind, system and status value.
//  4. Freeze all maps into immutable copies (fresh allocations).
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	// (3) Validate keys, in a fixed order so the reported rule set is stable.
	for _, rs := range []struct {
		name string
		err  error
	}{
		{"HTTP default", validateKinds(b.httpDefaults)},
		{"gRPC default", validateKinds(b.grpcDefaults)},
		{"HTTP override", validateKinds(b.httpOverride)},
		{"gRPC override", validateKinds(b.grpcOverride)},
		{"HTTP system", validateRuleKeys(b.httpSystem)},
		{"gRPC system", validateRuleKeys(b.grpcSystem)},
	} {
		if rs.err != nil {
			return nil, fmt.Errorf("mapper: invalid %s rule: %w", rs.name, rs.err)
		}
	}
	if err := validHTTP(b.fallbackHTTP); err != nil {
		return nil, fmt.Errorf("mapper: invalid fallback: %w", err)
	}
	if err := validGRPC(int(b.fallbackGRPC)); err != nil {
		return nil, fmt.Errorf("mapper: invalid fallback: %w", err)
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{fallbackHTTP: b.fallbackHTTP, fallbackGRPC: b.fallbackGRPC}
	var err error
	if m.httpDefault, err = freezeHTTP(b.httpDefaults); err != nil {
		return nil, fmt.Errorf("mapper: HTTP default %w", err)
	}
	if m.grpcDefault, err = freezeGRPC(b.grpcDefaults); err != nil {
		return nil, fmt.Errorf("mapper: gRPC default %w", err)
	}
	if m.httpOverride, err = freezeHTTP(b.httpOverride); err != nil {
		return nil, fmt.Errorf("mapper: HTTP override %w", err)
	}
	if m.grpcOverride, err = freezeGRPC(b.grpcOverride); err != nil {
		return nil, fmt.Errorf("mapper: gRPC override %w", err)
	}
	if m.httpSystem, err = freezeHTTP(b.httpSystem); err != nil {
		return nil, fmt.Errorf("mapper: HTTP system rule %w", err)
	}
	if m.grpcSystem, err = freezeGRPC(b.grpcSystem); err != nil {
		return nil, fmt.Errorf("mapper: gRPC system rule %w", err)
	}
	return m, nil
}

// mapper is an immutable mapper implementation that combines per-kind
// defaults, per-kind exact overrides and (kind, system) rules. Lookups are
// plain map reads and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a kind.
	httpDefault map[kind.Kind]int
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses that win over everything.
	httpOverride map[kind.Kind]int
	grpcOverride map[kind.Kind]codes.Code

	// httpSystem refines a kind for one coding system.
	httpSystem map[ruleKey]int
	grpcSystem map[ruleKey]codes.Code

	// fallbackHTTP is used when there is no rule at all for a kind.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind and system.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override;
//  2. (kind, system) rule, when s is set;
//  3. per-kind default (library or user overridden);
//  4. fallback (500 unless configured).
func (m *mapper) HTTPStatus(k kind.Kind, s system.System) int {
	v, _ := m.resolveHTTP(k, s)
	return v
}

// GRPCStatus resolves a gRPC status for the given kind and system.
// Uses the same precedence as HTTPStatus.
func (m *mapper) GRPCStatus(k kind.Kind, s system.System) codes.Code {
	v, _ := m.resolveGRPC(k, s)
	return v
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(k kind.Kind, s system.System) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, s),
		GRPC: m.GRPCStatus(k, s),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (kind, system) pair.
//
// Example output:
//
//	kind="invalid_codelist" system="opcs"
//	http: source=system -> 422
//	grpc: source=default -> INVALIDARGUMENT(3)
//
// source is one of override, system, default or fallback.
func (m *mapper) Explain(k kind.Kind, s system.System) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q system=%q\n", k, s)

	hv, hsrc := m.resolveHTTP(k, s)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, hv)

	gv, gsrc := m.resolveGRPC(k, s)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", gsrc, grpcLabel(gv))

	return b.String()
}

// resolveHTTP returns the HTTP status and the tier that produced it.
func (m *mapper) resolveHTTP(k kind.Kind, s system.System) (int, string) {
	if v, ok := m.httpOverride[k]; ok {
		return v, "override"
	}
	if s != system.Empty {
		if v, ok := m.httpSystem[ruleKey{k, s}]; ok {
			return v, "system"
		}
	}
	if v, ok := m.httpDefault[k]; ok {
		return v, "default"
	}
	return m.fallbackHTTP, "fallback"
}

// resolveGRPC returns the gRPC code and the tier that produced it.
func (m *mapper) resolveGRPC(k kind.Kind, s system.System) (codes.Code, string) {
	if v, ok := m.grpcOverride[k]; ok {
		return v, "override"
	}
	if s != system.Empty {
		if v, ok := m.grpcSystem[ruleKey{k, s}]; ok {
			return v, "system"
		}
	}
	if v, ok := m.grpcDefault[k]; ok {
		return v, "default"
	}
	return m.fallbackGRPC, "fallback"
}
