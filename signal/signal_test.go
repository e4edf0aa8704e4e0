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

package signal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gomq.dev/merrors/kind"
)

func TestClassify_ErrnoTable(t *testing.T) {
	// Every entry of the platform table must classify to its documented
	// kind, both bare and wrapped.
	for sig, want := range errnoKinds {
		assert.Equal(t, want, Classify(sig), "bare signal %v", sig)

		wrapped := fmt.Errorf("socket operation failed: %w", sig)
		assert.Equal(t, want, Classify(wrapped), "wrapped signal %v", sig)
	}
}

func TestClassify_PortableTable(t *testing.T) {
	for sig, want := range portableKinds {
		assert.Equal(t, want, Classify(sig), "portable error %v", sig)
	}
}

func TestClassify_SpotChecks(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want kind.Kind
	}{
		{"in progress", errEINPROGRESS, kind.TryAgain},
		{"would block", errEAGAIN, kind.TryAgain},
		{"host unreachable", errEHOSTUNREACH, kind.HostUnreachable},
		{"invalid argument", errEINVAL, kind.Invalid},
		{"address in use", errEADDRINUSE, kind.AddressAlreadyInUse},
		{"canceled context", context.Canceled, kind.ContextTerminated},
		{"deadline", os.ErrDeadlineExceeded, kind.TimedOut},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_NestedOpError(t *testing.T) {
	// Signals buried inside the usual net error onion must still be found.
	err := &net.OpError{
		Op:  "dial",
		Net: "tcp",
		Err: os.NewSyscallError("connect", errECONNREFUSED),
	}
	assert.Equal(t, kind.ConnectionRefused, Classify(err))
}

func TestClassify_UnknownFallback(t *testing.T) {
	unmapped := errors.New("some exotic platform condition")
	assert.Equal(t, kind.Unknown, Classify(unmapped))

	// The fallback must be a plain return, not a raised failure.
	assert.NotPanics(t, func() { _ = Classify(unmapped) })
}

func TestClassify_NilHasNoSignal(t *testing.T) {
	assert.Equal(t, kind.Unspecified, Classify(nil))
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []error{
		errECONNRESET,
		fmt.Errorf("wrap: %w", errETIMEDOUT),
		errors.New("unmapped"),
		nil,
	}
	for _, in := range inputs {
		first := Classify(in)
		for i := 0; i < 100; i++ {
			require.Equal(t, first, Classify(in), "input %v", in)
		}
	}
}

func TestTables_OnlyContainTaxonomyMembers(t *testing.T) {
	for _, k := range errnoKinds {
		require.NoError(t, kind.Validate(k), "errno table entry %q", k)
	}
	for _, k := range portableKinds {
		require.NoError(t, kind.Validate(k), "portable table entry %q", k)
	}
}
