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

package merrors

import (
	"errors"

	"gomq.dev/merrors/kind"
)

// The kinds a messaging runtime dispatches on most often get dedicated
// sentinels so calling code can pattern-match with errors.Is instead of
// comparing strings:
//
//	if errors.Is(err, merrors.ErrTryAgain) {
//	    // back off and retry the send
//	}
//
// Each sentinel is a bare Error of its kind; (*Error).Is treats bare values
// as kind-class patterns, so a sentinel matches every error of that kind
// regardless of message, scope or cause. Errors of any other kind still
// match through KindOf — the sentinels are a convenience, not a second
// taxonomy.
var (
	// ErrTryAgain matches retryable conditions (full pipes, connects still
	// in progress).
	ErrTryAgain = New(kind.TryAgain)

	// ErrContextTerminated matches failures caused by a terminating
	// messaging context.
	ErrContextTerminated = New(kind.ContextTerminated)

	// ErrInvalid matches invalid-argument failures.
	ErrInvalid = New(kind.Invalid)

	// ErrEndpointNotFound matches operations referencing an unknown
	// endpoint.
	ErrEndpointNotFound = New(kind.EndpointNotFound)

	// ErrAddressAlreadyInUse matches bind failures on occupied addresses.
	ErrAddressAlreadyInUse = New(kind.AddressAlreadyInUse)

	// ErrProtocolNotSupported matches unsupported transport or wire
	// protocols.
	ErrProtocolNotSupported = New(kind.ProtocolNotSupported)

	// ErrHostUnreachable matches unroutable peers.
	ErrHostUnreachable = New(kind.HostUnreachable)

	// ErrFSMViolation matches operations attempted in a protocol state that
	// forbids them.
	ErrFSMViolation = New(kind.FSMViolation)

	// ErrFault matches internal faults that point at a bug.
	ErrFault = New(kind.Fault)
)

// KindOf returns the taxonomy kind carried by err, searching the unwrap
// chain for the outermost *Error. It returns kind.Empty when err carries no
// runtime error at all — at that point the caller is looking at a foreign
// error that never went through the classification boundary.
func KindOf(err error) kind.Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return kind.Empty
}

// IsKind reports whether err carries exactly the given taxonomy kind.
func IsKind(err error, k kind.Kind) bool {
	return KindOf(err) == k
}
