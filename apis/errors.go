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

package apis

// KindedError represents an error that is classified into the closed,
// machine-readable failure taxonomy.
//
// A kind denotes a portable failure category, such as:
//   - "try_again"          — the operation should be retried,
//   - "host_unreachable"   — no route to the peer,
//   - "context_terminated" — the messaging context is shutting down,
//   - "unknown"            — the classifier could not map the signal.
//
// Kinds are stable and enumerable. They are the primary value that callers
// and transport adapters use to decide how to react to a failure.
//
// Implementations are expected to return a *canonical* kind string — i.e.
// one of the members enforced by the kind package. Adapters should treat
// unknown or empty kinds as internal errors.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable failure kind.
	//
	// The returned value MUST be non-empty and MUST be a member of the
	// closed taxonomy. Callers should not try to "fix" or "guess" the value
	// here — if it is invalid, it should be handled as an internal error at
	// the boundary.
	ErrorKind() string
}

// ScopedError represents an error that provides the runtime location where
// the failure was detected, in addition to the failure kind.
//
// While the kind answers "what class of failure is this?", the scope answers
// "where in the runtime did it happen?".
//
// Examples:
//
//	kind:  "address_in_use"
//	scope: "socket.bind" -> binding the listening endpoint failed
//
//	kind:  "timed_out"
//	scope: "engine.handshake" -> the peer never finished the greeting
//
// Scopes are hierarchical, dot-separated strings validated by the scope
// package. Having a separate interface lets code degrade gracefully: if an
// error provides no scope, the caller can still act on the kind.
type ScopedError interface {
	error

	// ErrorScope returns the runtime location of the failure.
	//
	// The returned value MAY be empty if the error does not provide a
	// location refinement. Callers should be prepared to handle the empty
	// case.
	ErrorScope() string
}

// Cause chains are exposed through the standard errors.Unwrap protocol, not
// through a dedicated interface here: the concrete error type carries its
// cause as data, and adapters that need the flattened chain use
// ErrorDescriptor.
