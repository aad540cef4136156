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
	"maps"
	"slices"
	"strings"

	"dirpx.dev/codelist/kind"
	"dirpx.dev/codelist/system"
	"google.golang.org/grpc/codes"
)

// maxGRPCCode is the highest canonical gRPC status code (Unauthenticated).
const maxGRPCCode = int(codes.Unauthenticated)

// freezeHTTP makes an immutable copy of an HTTP map, validating every value.
// Used when finalizing the mapper so later mutations to the builder
// cannot affect the mapper.
func freezeHTTP[K comparable](src map[K]int) (map[K]int, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[K]int, len(src))
	for k, v := range src {
		if err := validHTTP(v); err != nil {
			return nil, fmt.Errorf("%v: %w", k, err)
		}
		dst[k] = v
	}
	return dst, nil
}

// freezeGRPC makes an immutable copy of a gRPC map, converting builder-style
// int values into typed gRPC codes.
func freezeGRPC[K comparable](src map[K]int) (map[K]codes.Code, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make(map[K]codes.Code, len(src))
	for k, v := range src {
		if err := validGRPC(v); err != nil {
			return nil, fmt.Errorf("%v: %w", k, err)
		}
		dst[k] = codes.Code(v)
	}
	return dst, nil
}

func validHTTP(v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("HTTP status %d out of range", v)
	}
	return nil
}

func validGRPC(v int) error {
	if v < 0 || v > maxGRPCCode {
		return fmt.Errorf("gRPC code %d out of range", v)
	}
	return nil
}

// validateKinds checks that every key of m is a canonical kind.
func validateKinds[V any](m map[kind.Kind]V) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := kind.Validate(k); err != nil {
			return fmt.Errorf("kind %q: %w", k, err)
		}
	}
	return nil
}

// validateRuleKeys checks both halves of every system rule key.
func validateRuleKeys[V any](m map[ruleKey]V) error {
	keys := slices.SortedFunc(maps.Keys(m), func(a, b ruleKey) int {
		return strings.Compare(a.String(), b.String())
	})
	for _, k := range keys {
		if err := kind.Validate(k.kind); err != nil {
			return fmt.Errorf("kind %q: %w", k.kind, err)
		}
		if err := system.Validate(k.system); err != nil {
			return fmt.Errorf("system %q: %w", k.system, err)
		}
	}
	return nil
}

// String renders a key in "kind/system" form for error messages.
func (k ruleKey) String() string {
	return string(k.kind) + "/" + string(k.system)
}

// grpcLabel renders a gRPC code as NAME(number).
func grpcLabel(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
