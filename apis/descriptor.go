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

// ErrorDescriptor is a flat, transport-friendly description of a classified
// runtime failure.
//
// This type intentionally uses strings (not the internal Kind / Scope value
// types) so that it can live in the public "apis" layer and be used by
// adapters (HTTP, gRPC), structured logging and message-bus propagation.
type ErrorDescriptor struct {
	// Kind is the canonical failure kind, e.g. "try_again",
	// "host_unreachable", "context_terminated".
	//
	// Implementations SHOULD store only taxonomy members here.
	Kind string `json:"kind"`

	// Scope is the runtime location refinement, e.g. "socket.bind",
	// "engine.handshake".
	//
	// It MAY be empty when the descriptor applies to the kind as a whole.
	Scope string `json:"scope,omitempty"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// failure is exposed over HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this failure is exposed over gRPC. A value of 0 means
	// "not specified".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly message taken from the error
	// instance.
	Message string `json:"message,omitempty"`

	// Cause is an optional flattened rendering of the cause chain, outermost
	// first, for diagnostics. Empty when the error wraps nothing.
	Cause []string `json:"cause,omitempty"`
}
