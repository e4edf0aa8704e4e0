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
	"io"
	"net"
	"os"

	"gomq.dev/merrors/kind"
)

// errnoKinds maps platform socket-error signals to taxonomy kinds. The keys
// are the platform errno constants aliased in unix.go / windows.go, so the
// table itself stays platform-independent.
//
// Every entry here must name a kind from the closed taxonomy; adding a
// taxonomy kind the platform can produce requires extending this table.
var errnoKinds = map[error]kind.Kind{
	errEACCES:          kind.AccessDenied,
	errEFAULT:          kind.Fault,
	errEINVAL:          kind.Invalid,
	errEMFILE:          kind.TooManyOpenHandles,
	errEAGAIN:          kind.TryAgain,
	errEINPROGRESS:     kind.TryAgain,
	errEINTR:           kind.TryAgain,
	errEMSGSIZE:        kind.MessageSize,
	errEPROTONOSUPPORT: kind.ProtocolNotSupported,
	errEAFNOSUPPORT:    kind.AddressFamilyNotSupported,
	errEADDRNOTAVAIL:   kind.AddressNotAvailable,
	errEADDRINUSE:      kind.AddressAlreadyInUse,
	errENETDOWN:        kind.NetworkDown,
	errENETUNREACH:     kind.NetworkUnreachable,
	errENETRESET:       kind.NetworkReset,
	errECONNABORTED:    kind.ConnectionAborted,
	errECONNRESET:      kind.ConnectionReset,
	errECONNREFUSED:    kind.ConnectionRefused,
	errEHOSTUNREACH:    kind.HostUnreachable,
	errENOBUFS:         kind.NoBufferSpace,
	errENOTCONN:        kind.NotConnected,
	errETIMEDOUT:       kind.TimedOut,
	errENOENT:          kind.EndpointNotFound,
}

// portableKinds maps well-known portable Go errors that the runtime treats
// as failure signals of its own: cancellation means the surrounding context
// is going away, deadline errors are timeouts, and a bare EOF on a transport
// stream is a peer-side reset.
var portableKinds = map[error]kind.Kind{
	context.Canceled:         kind.ContextTerminated,
	context.DeadlineExceeded: kind.TimedOut,
	os.ErrDeadlineExceeded:   kind.TimedOut,
	net.ErrClosed:            kind.ContextTerminated,
	io.EOF:                   kind.ConnectionReset,
	io.ErrUnexpectedEOF:      kind.ConnectionReset,
}

// Classify translates a platform-level failure signal into a taxonomy kind.
//
// Classify is total and pure: every input, including wrapped errors and
// values unknown to the mapping tables, produces a kind, and repeated calls
// return the same result. Matching uses errors.Is, so signals buried inside
// net.OpError / os.SyscallError chains are found.
//
// A nil error carries no platform signal at all and classifies as
// kind.Unspecified. Signals absent from both tables classify as kind.Unknown;
// see the package documentation for the debug-build behavior on that path.
func Classify(err error) kind.Kind {
	if err == nil {
		return kind.Unspecified
	}
	for sig, k := range errnoKinds {
		if errors.Is(err, sig) {
			return k
		}
	}
	for sig, k := range portableKinds {
		if errors.Is(err, sig) {
			return k
		}
	}
	assertMapped(err)
	return kind.Unknown
}
