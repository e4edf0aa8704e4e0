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
	"encoding"
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  try_again  ", "try_again"},
		{"to lower", "TiMeD_OuT", "timed_out"},
		{"dash to underscore", "host-unreachable", "host_unreachable"},
		{"mixed", "  NETWORK-DOWN  ", "network_down"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"simple", "try_again", TryAgain},
		{"with spaces", "  timed_out  ", TimedOut},
		{"upper", "INVALID", Invalid},
		{"dash", "context-terminated", ContextTerminated},
		{"fallback member", "unknown", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"outside vocabulary", "disk_full"},
		{"close but wrong", "try_againn"},
		{"garbage", "!@#"},
		{"well formed non-member", "not_a_kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if !errors.Is(err, ErrKindInvalid) {
				t.Fatalf("Parse(%q) error = %v, want ErrKindInvalid", tt.in, err)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate_AllMembers(t *testing.T) {
	for _, k := range All() {
		if err := Validate(k); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", k, err)
		}
	}

	invalid := []Kind{
		"",           // empty
		"Try_Again",  // uppercase
		"try-again",  // dash
		"no_route",   // non-member
	}
	for _, k := range invalid {
		if err := Validate(k); err == nil {
			t.Fatalf("Validate(%q) expected error", k)
		}
	}
}

func TestAll_CoversRegistryExactly(t *testing.T) {
	all := All()
	if len(all) != len(registry) {
		t.Fatalf("All() has %d kinds, registry has %d", len(all), len(registry))
	}
	seen := make(map[Kind]bool, len(all))
	for _, k := range all {
		if seen[k] {
			t.Fatalf("All() contains duplicate kind %q", k)
		}
		seen[k] = true
		if _, ok := registry[k]; !ok {
			t.Fatalf("All() contains %q which is not in the registry", k)
		}
	}
}

func TestAll_ReturnsFreshCopy(t *testing.T) {
	a := All()
	a[0] = Kind("mutated")
	if All()[0] != Unspecified {
		t.Fatal("All() must not share its backing array across calls")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse should panic on invalid input")
		}
	}()
	_ = MustParse("NOT A KIND ??")
}

func TestMustParse_SucceedsOnValid(t *testing.T) {
	k := MustParse("host_unreachable")
	if k != HostUnreachable {
		t.Fatalf("MustParse(valid) = %q, want %q", k, HostUnreachable)
	}
}

func TestKind_String(t *testing.T) {
	if TryAgain.String() != "try_again" {
		t.Fatalf("String() = %q, want %q", TryAgain.String(), "try_again")
	}
}

func TestKind_MarshalText(t *testing.T) {
	text, err := ConnectionRefused.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(text) != "connection_refused" {
		t.Fatalf("MarshalText() = %q, want %q", string(text), "connection_refused")
	}

	// non-member kinds should fail MarshalText
	invalid := Kind("disk_full")
	if _, err := invalid.MarshalText(); err == nil {
		t.Fatalf("MarshalText() on non-member kind must return error")
	}
}

func TestKind_UnmarshalText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("  ADDRESS-IN-USE  ")); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if k != AddressAlreadyInUse {
		t.Fatalf("UnmarshalText() = %q, want %q", k, AddressAlreadyInUse)
	}

	// invalid
	var bad Kind
	if err := bad.UnmarshalText([]byte("!@#")); err == nil {
		t.Fatalf("UnmarshalText() expected error for invalid input")
	}
}

func TestKind_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Kind)(nil)
	var _ encoding.TextUnmarshaler = (*Kind)(nil)
}

func TestUnspecifiedAndUnknown_AreDistinctMembers(t *testing.T) {
	// Both are intentional taxonomy entries: Unspecified is a recognized
	// general socket failure, Unknown is the classifier fallback.
	if Unspecified == Unknown {
		t.Fatal("Unspecified and Unknown must be distinct")
	}
	if err := Validate(Unspecified); err != nil {
		t.Fatalf("Validate(Unspecified): %v", err)
	}
	if err := Validate(Unknown); err != nil {
		t.Fatalf("Validate(Unknown): %v", err)
	}
}
