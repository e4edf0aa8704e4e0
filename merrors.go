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

// Package merrors defines the error-reporting contract of the GoMQ messaging
// runtime: a single typed error value carrying a closed taxonomy kind, an
// optional scope, a human-readable message and an optional causal chain.
//
// The runtime's socket layer, lifecycle manager and protocol state machines
// signal every failure through this package. Callers inspect Kind for
// programmatic handling (via errors.Is against the exported sentinels, or
// KindOf) and Message/Cause for diagnostics.
package merrors

import (
	"fmt"

	"gomq.dev/merrors/kind"
	"gomq.dev/merrors/scope"
	"gomq.dev/merrors/signal"
)

// Error is the canonical runtime error value for GoMQ.
//
// It carries:
//   - Kind: the closed-taxonomy failure category (required);
//   - Scope: optional runtime location refinement ("socket.bind", "ctx.term");
//   - Message: human-oriented description, empty when none was provided;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// An Error is immutable after construction: the WithX helpers return a
// shallow copy, so values can be shared across goroutines and modified in a
// functional style. The Cause reference is exclusively owned by the Error
// that carries it — cause chains are linear, never shared and never cyclic,
// so diagnostic traversal always terminates.
type Error struct {
	// Kind is the primary classification of the failure, e.g. kind.TryAgain
	// or kind.HostUnreachable. Always a member of the closed taxonomy.
	Kind kind.Kind

	// Scope refines the Kind with the runtime location where the failure was
	// detected, e.g. "socket.connect" or "engine.handshake".
	// May be empty when the Kind is descriptive enough.
	Scope scope.Scope

	// Message is a human-readable explanation. A missing message is the
	// empty string, never a sentinel, so downstream formatting always works.
	Message string

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is the primary constructor for Error.
//
// Usage:
//
//	return merrors.E(kind.AddressAlreadyInUse, "port 5555 in use",
//	    merrors.WithScopeOption("socket.bind"),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{Kind: k, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// New constructs an Error from a kind alone.
func New(k kind.Kind) *Error {
	return &Error{Kind: k}
}

// Wrap classifies an existing platform-level error and returns a new Error
// whose Kind comes from the classifier and whose Cause is exactly err.
//
// Wrap(err, msg) is equivalent to E(signal.Classify(err), msg,
// WithCauseOption(err)). A nil err yields an Unspecified error with no cause.
func Wrap(err error, msg string) *Error {
	e := &Error{Kind: signal.Classify(err), Message: msg}
	e.Cause = err
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<kind>: <message>
//
// or, when Scope is present:
//
//	<kind>:<scope>: <message>
//
// A missing message leaves just the kind (and scope), keeping the output
// both human- and machine-scannable in logs.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Scope != "" && e.Message != "":
		return fmt.Sprintf("%s:%s: %s", e.Kind, e.Scope, e.Message)
	case e.Scope != "":
		return fmt.Sprintf("%s:%s", e.Kind, e.Scope)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// ErrorKind implements apis.KindedError.
func (e *Error) ErrorKind() string { return e.Kind.String() }

// ErrorScope implements apis.ScopedError. Empty when no scope was attached.
func (e *Error) ErrorScope() string { return e.Scope.String() }

// Is reports whether target matches this error for the purposes of
// errors.Is.
//
// A target *Error with no message and no cause acts as a kind-class pattern:
// it matches any error of the same Kind. This is what makes the exported
// sentinels (ErrTryAgain, ErrHostUnreachable, ...) usable as match targets
// without string comparison. A target that carries a message only matches
// when the message is equal too.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	if t.Message != "" && t.Message != e.Message {
		return false
	}
	if t.Scope != "" && t.Scope != e.Scope {
		return false
	}
	return e.Kind == t.Kind
}

// WithScope returns a shallow copy of e with the given Scope set.
// The original error is not modified.
func (e *Error) WithScope(s scope.Scope) *Error {
	cp := *e
	cp.Scope = s
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when a caller wants to keep the Kind/Scope but present the message
// in a different context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause
// attached. If err is nil, the original error is returned unchanged.
//
// The copy takes sole ownership of err as its cause; callers must not attach
// the same cause to a second live Error.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// CauseChain returns the linear chain of errors reachable from err through
// Unwrap, starting with err itself. Chains are acyclic by construction, so
// the walk always terminates.
func CauseChain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return chain
}
