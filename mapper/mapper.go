/*
   Copyright 2026 The GoMQ Authors

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

	"gomq.dev/merrors/apis"
	"gomq.dev/merrors/kind"
	"gomq.dev/merrors/scope"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance — no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all scope prefixes (via scope.Normalize/Parse).
//  4. Compile per-kind prefix tables (HTTP & gRPC) supporting
//     segment-aware longest-prefix-match.
//  5. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid prefixes or
// conflicting rules discovered during compilation.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides, prefixes, etc.).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Compile per-kind HTTP prefix tables.
	// Each rule prefix is normalized and validated before insertion.
	httpPrefix := make(map[kind.Kind]prefixTable[int], len(b.httpPrefixes))
	for k, rules := range b.httpPrefixes {
		if len(rules) == 0 {
			continue
		}
		t := make(prefixTable[int], len(rules))
		for _, r := range rules {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid HTTP scope-prefix %q for kind %q: %w", r.prefix, k, err)
			}
			if _, dup := t[p]; dup {
				return nil, fmt.Errorf("mapper: duplicate HTTP scope-prefix %q for kind %q", p, k)
			}
			t[p] = r.val
		}
		httpPrefix[k] = t
	}

	// (4) Compile per-kind gRPC prefix tables.
	// Values are stored as int in the builder and converted to codes.Code here.
	grpcPrefix := make(map[kind.Kind]prefixTable[codes.Code], len(b.grpcPrefixes))
	for k, rules := range b.grpcPrefixes {
		if len(rules) == 0 {
			continue
		}
		t := make(prefixTable[codes.Code], len(rules))
		for _, r := range rules {
			p, err := normalizeAndValidatePrefix(r.prefix)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid gRPC scope-prefix %q for kind %q: %w", r.prefix, k, err)
			}
			if _, dup := t[p]; dup {
				return nil, fmt.Errorf("mapper: duplicate gRPC scope-prefix %q for kind %q", p, k)
			}
			t[p] = codes.Code(r.val)
		}
		grpcPrefix[k] = t
	}

	// (5) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated so the builder can be discarded.
	m := &mapper{
		httpDefault:  freezeMap(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeMap(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpPrefix:   freezeMap(httpPrefix),
		grpcPrefix:   freezeMap(grpcPrefix),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-kind
// defaults, per-kind exact overrides, and per-kind segment-aware prefix
// tables for scopes. Lookups are O(segments) and safe for concurrent use
// once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given taxonomy kind.
	// Used when no scope rule and no override are present.
	httpDefault map[kind.Kind]int

	// grpcDefault holds the base gRPC status for a given taxonomy kind.
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific kinds.
	// These take precedence over prefix rules and defaults.
	httpOverride map[kind.Kind]int

	// grpcOverride holds explicit gRPC statuses for specific kinds.
	grpcOverride map[kind.Kind]codes.Code

	// httpPrefix stores per-kind tables that resolve HTTP statuses based on
	// scope prefixes (dot-separated, whole segments only).
	httpPrefix map[kind.Kind]prefixTable[int]

	// grpcPrefix stores per-kind tables that resolve gRPC statuses based on
	// scope prefixes.
	grpcPrefix map[kind.Kind]prefixTable[codes.Code]

	// fallbackHTTP is used when there is no mapping at all for a kind.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a kind.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind and scope.
//
// Resolution order (highest to lowest):
//  1. exact per-kind override (explicitly registered);
//  2. per-kind longest-prefix-match rule on the scope;
//  3. per-kind default (library or user adjusted);
//  4. global fallback (500).
//
// The scope is treated as a dot-separated string; LPM rules are stored per kind.
func (m *mapper) HTTPStatus(k kind.Kind, s scope.Scope) int {
	// 1. Fast path: exact override for this kind.
	if v, ok := m.httpOverride[k]; ok {
		return v
	}

	// 2. Per-kind prefix LPM over the scope.
	if t, ok := m.httpPrefix[k]; ok {
		if v, _, ok := t.match(string(s)); ok {
			return v
		}
	}

	// 3. Per-kind default.
	if v, ok := m.httpDefault[k]; ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given kind and scope.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
//
// Resolution order:
//  1. exact per-kind override;
//  2. per-kind LPM by scope;
//  3. per-kind default;
//  4. global fallback (codes.Internal).
func (m *mapper) GRPCStatus(k kind.Kind, s scope.Scope) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[k]; ok {
		return v
	}

	// 2. Table-based LPM for this kind.
	if t, ok := m.grpcPrefix[k]; ok {
		if v, _, ok := t.match(string(s)); ok {
			return v
		}
	}

	// 3. Default for this kind.
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}

	// 4. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single logical error.
func (m *mapper) Status(k kind.Kind, s scope.Scope) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, s),
		GRPC: m.GRPCStatus(k, s),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (kind, scope) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, prefix, default, or fallback) and, for prefix matches,
// which rule was used.
//
// Example output:
//
//	kind="timed_out" scope="engine.handshake.greeting"
//	http: source=prefix pattern="engine.handshake" -> 502
//	grpc: source=default -> DEADLINEEXCEEDED(4)
//
// Notes:
//   - source ∈ {override | prefix | default | fallback}
//   - pattern is the rule prefix as it was stored in the table
func (m *mapper) Explain(k kind.Kind, s scope.Scope) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q scope=%q\n", k, s)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(k, s))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(k, s))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns a formatted line describing how the HTTP status
// was chosen (override, prefix, default, or fallback).
func (m *mapper) explainHTTP(k kind.Kind, s scope.Scope) string {
	// 1) exact per-kind override
	if v, ok := m.httpOverride[k]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}

	// 2) per-kind LPM against the scope
	if t, ok := m.httpPrefix[k]; ok {
		if v, pat, ok := t.match(string(s)); ok {
			return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
		}
	}

	// 3) per-kind default
	if v, ok := m.httpDefault[k]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}

	// 4) global fallback
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns a formatted line describing how the gRPC status
// was chosen (override, prefix, default, or fallback).
func (m *mapper) explainGRPC(k kind.Kind, s scope.Scope) string {
	// 1) exact per-kind override
	if v, ok := m.grpcOverride[k]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 2) per-kind LPM against the scope
	if t, ok := m.grpcPrefix[k]; ok {
		if v, pat, ok := t.match(string(s)); ok {
			return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s(%d)", pat, strings.ToUpper(v.String()), int(v))
		}
	}

	// 3) per-kind default
	if v, ok := m.grpcDefault[k]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 4) global fallback
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}

// normalizeAndValidatePrefix ensures a scope prefix is canonical and valid.
// It forbids empty prefixes and delegates structural checks to scope.Parse,
// so a rule prefix obeys exactly the same grammar as a real scope.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := scope.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	if _, err := scope.Parse(p); err != nil {
		return "", err
	}
	return p, nil
}
