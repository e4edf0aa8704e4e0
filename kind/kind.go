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

package kind

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Kind is the canonical, validated representation of a failure category.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw platform signals with taxonomy values.
//
// IMPORTANT: the taxonomy is closed. The only valid Kind values are the
// constants declared in this package; Parse and Validate reject everything
// else. Empty kinds ("") are NOT allowed — every error MUST carry a kind.
type Kind string

var (
	// ErrKindInvalid is returned when a value cannot be parsed or validated
	// as a taxonomy kind. This covers both malformed strings and well-formed
	// strings that simply are not part of the closed vocabulary.
	ErrKindInvalid = errors.New("merrors: invalid kind")
)

// Ensure Kind implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Kind)(nil)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// Empty is the zero-value kind. It is never valid on a constructed error;
// it exists so callers can represent "not yet classified" in their own
// state before the classification boundary.
var Empty Kind = ""

// Parse takes a user-provided string, normalizes it and checks it against
// the closed vocabulary. On success it returns the canonical Kind value.
func Parse(s string) (Kind, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Kind(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Kind {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical kind form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is a member of the taxonomy —
// callers should still call Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Kind is a member of the taxonomy.
// The empty kind ("") is considered invalid.
func Validate(k Kind) error {
	return validate(string(k))
}

// String returns the canonical string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation and refuses to
// marshal values outside the taxonomy.
func (k Kind) MarshalText() ([]byte, error) {
	if err := Validate(k); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (k *Kind) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// validate is a helper that checks closed-set membership.
func validate(s string) error {
	if _, ok := registry[Kind(s)]; !ok {
		return ErrKindInvalid
	}
	return nil
}
