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

package scope

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Scope is the canonical, validated representation of an error scope.
//
// Scopes are dot-separated hierarchical identifiers with a small, fixed depth.
// Each segment names a runtime component or operation.
//
// Example valid scopes:
//
//   - "socket.bind"
//   - "socket.connect"
//   - "engine.handshake.greeting"
//   - "ctx.term"
//   - "pipe.write"
//
// The intent is to make it easy to programmatically build such identifiers
// from known component/operation names, and later to let the status mapper
// quickly match on their prefixes.
type Scope string

// MinLength and MaxLength define the allowed length range for a canonical
// scope string.
//
// Scopes may be longer than kinds because they often contain multiple
// segments (component.subcomponent.operation).
const (
	// MinLength is the minimum length for a non-empty scope.
	// We keep it at 3 so that trivial values like "x" are not considered
	// meaningful scopes. Remember: the empty string is still allowed and
	// means "no scope provided".
	MinLength = 3

	// MaxLength is the maximum length for a valid scope.
	// 128 characters is enough even for 4 segments with descriptive names.
	MaxLength = 128
)

const (
	// scopeFmt is the canonical regular expression used to validate scopes.
	//
	// We accept 1 to 4 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"socket.bind"
	//	"engine.handshake.greeting"
	//	"ctx.term"
	//
	// Examples that DO NOT match:
	//
	//	"Socket.Bind" (uppercase)
	//	"socket/bind" (slash)
	//	"socket..bind" (empty segment)
	//	"1pipe.write" (digit first)
	//
	// NOTE: empty string ("") is treated separately as "optional scope" and
	// does not go through this regexp.
	scopeFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,3}$`
)

var (
	// scopeRe is the compiled regexp for the above pattern.
	scopeRe = regexp.MustCompile(scopeFmt)
)

var (
	// ErrScopeInvalidFormat is returned when a scope does not conform to
	// the expected format.
	ErrScopeInvalidFormat = errors.New("merrors: invalid scope format")
	// ErrScopeInvalidLength is returned when a scope is too short or too long.
	ErrScopeInvalidLength = errors.New("merrors: invalid scope length")
)

// Ensure Scope implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Scope)(nil)
	_ encoding.TextUnmarshaler = (*Scope)(nil)
)

// Empty is the zero-value scope. It is considered "not provided" and is valid
// to store in error structs. Callers that require a non-empty, canonical scope
// should explicitly call Validate.
var Empty Scope = ""

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical scope form.
//
// We do *very* conservative transformations:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (because callers may build paths with slashes)
//   - replace "-" with "_" (to align with kind-style identifiers)
//
// It does NOT guarantee validity — callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Scope value.
//
// Parse also accepts the empty string and returns scope.Empty without error.
// This is what makes Scope an "optional" part of the error model.
func Parse(s string) (Scope, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Scope(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level scope constants in var/const blocks.
//
// NOTE: unlike Parse, MustParse does NOT allow the empty string — passing
// an empty string here is almost always a programmer error.
func MustParse(s string) Scope {
	sc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if sc == Empty {
		panic("merrors: empty scope in MustParse")
	}
	return sc
}

// Validate checks whether the provided Scope is in canonical form.
//
// The empty scope ("") is considered valid here, because the whole point of
// this type is to be optional. If you need to enforce "must be non-empty",
// add that check at call site.
func Validate(s Scope) error {
	if s == Empty {
		return nil
	}
	return validate(string(s))
}

// String returns the canonical string representation of the scope.
func (s Scope) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
//
// We allow marshaling of the empty scope as an empty slice to not break
// JSON/YAML encoders that rely on TextMarshaler.
func (s Scope) MarshalText() ([]byte, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	if s == Empty {
		return []byte{}, nil
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
// An empty or whitespace-only input will produce scope.Empty.
func (s *Scope) UnmarshalText(text []byte) error {
	raw := string(bytes.TrimSpace(text))
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// validate is the internal helper that checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrScopeInvalidLength
	}
	if !scopeRe.MatchString(s) {
		return ErrScopeInvalidFormat
	}
	return nil
}
