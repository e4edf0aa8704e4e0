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
	"net/http"

	"gomq.dev/merrors/kind"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for every taxonomy
// kind. These are only defaults: callers are expected to override them at the
// boundary where HTTP is actually produced (management API, health endpoint).
//
// The intent is to stay close to common REST conventions while still
// reflecting messaging-runtime semantics (retryable conditions map to 503,
// peer-side failures to 502, caller mistakes to 4xx).
var defaultHTTP = map[kind.Kind]int{
	// 5xx — runtime / peer / transient issues.
	kind.Unspecified:         http.StatusInternalServerError, // Recognized but undistinguished socket failure.
	kind.Fault:               http.StatusInternalServerError, // Internal fault; points at a bug, not the caller.
	kind.Unknown:             http.StatusInternalServerError, // Classifier fallback; never expose platform detail.
	kind.TryAgain:            http.StatusServiceUnavailable,  // Retryable; the caller should back off and retry.
	kind.TooManyOpenHandles:  http.StatusServiceUnavailable,  // Process is out of handles; retry after pressure drops.
	kind.NoBufferSpace:       http.StatusServiceUnavailable,  // Kernel buffers exhausted.
	kind.NetworkDown:         http.StatusServiceUnavailable,  // Local interface down.
	kind.NetworkUnreachable:  http.StatusServiceUnavailable,  // No route to the destination network.
	kind.NetworkReset:        http.StatusServiceUnavailable,  // Network dropped the connection.
	kind.AddressNotAvailable: http.StatusServiceUnavailable,  // Requested address not present on this host.
	kind.ContextTerminated:   http.StatusServiceUnavailable,  // Runtime is shutting down; refuse new work.
	kind.ConnectionAborted:   http.StatusBadGateway,          // Connection failed locally mid-operation.
	kind.ConnectionReset:     http.StatusBadGateway,          // Peer reset the connection.
	kind.ConnectionRefused:   http.StatusBadGateway,          // Peer actively refused.
	kind.HostUnreachable:     http.StatusBadGateway,          // No route to the peer host.
	kind.TimedOut:            http.StatusGatewayTimeout,      // Operation exceeded its time budget.

	// 4xx — caller / configuration issues.
	kind.Invalid:                   http.StatusBadRequest,            // Malformed endpoint, bad option value.
	kind.MessageSize:               http.StatusRequestEntityTooLarge, // Message exceeds the allowed size.
	kind.AccessDenied:              http.StatusForbidden,             // OS-level permission failure.
	kind.EndpointNotFound:          http.StatusNotFound,              // Unknown endpoint referenced.
	kind.AddressAlreadyInUse:       http.StatusConflict,              // Address occupied by this or another process.
	kind.NotConnected:              http.StatusConflict,              // Operation requires an established connection.
	kind.FSMViolation:              http.StatusConflict,              // Operation illegal in the current protocol state.
	kind.ProtocolNotSupported:      http.StatusNotImplemented,        // Transport or wire protocol unavailable here.
	kind.AddressFamilyNotSupported: http.StatusNotImplemented,        // Address family unavailable on this stack.
}

// defaultGRPC defines the library's built-in gRPC mappings for every taxonomy
// kind. These values are chosen to align with canonical gRPC status codes
// while preserving the messaging-runtime meanings. As with HTTP, callers may
// override these at the transport edge if a different policy is required.
var defaultGRPC = map[kind.Kind]codes.Code{
	// Internal / unexpected.
	kind.Unspecified: codes.Internal,
	kind.Fault:       codes.Internal,
	kind.Unknown:     codes.Unknown, // Classifier fallback keeps its "unknown" nature on the wire.

	// Input / state preconditions.
	kind.Invalid:      codes.InvalidArgument,    // Bad endpoint or option value.
	kind.NotConnected: codes.FailedPrecondition, // Connection required first.
	kind.FSMViolation: codes.FailedPrecondition, // Protocol state forbids the operation.

	// Resources / limits.
	kind.TooManyOpenHandles: codes.ResourceExhausted, // Out of handles.
	kind.NoBufferSpace:      codes.ResourceExhausted, // Out of kernel buffers.
	kind.MessageSize:        codes.ResourceExhausted, // Message over the size limit.

	// Addressing.
	kind.EndpointNotFound:          codes.NotFound,      // Unknown endpoint referenced.
	kind.AddressAlreadyInUse:       codes.AlreadyExists, // Bind target occupied.
	kind.AddressNotAvailable:       codes.Unavailable,   // Address absent on this host.
	kind.ProtocolNotSupported:      codes.Unimplemented, // Transport/protocol unavailable.
	kind.AddressFamilyNotSupported: codes.Unimplemented, // Address family unavailable.

	// Permissions.
	kind.AccessDenied: codes.PermissionDenied,

	// Network conditions / availability.
	kind.TryAgain:           codes.Unavailable, // Retryable backpressure.
	kind.NetworkDown:        codes.Unavailable,
	kind.NetworkUnreachable: codes.Unavailable,
	kind.NetworkReset:       codes.Unavailable,
	kind.ConnectionRefused:  codes.Unavailable,
	kind.HostUnreachable:    codes.Unavailable,
	kind.ConnectionAborted:  codes.Aborted,
	kind.ConnectionReset:    codes.Aborted,

	// Time / lifecycle.
	kind.TimedOut:          codes.DeadlineExceeded, // Time budget exceeded.
	kind.ContextTerminated: codes.Canceled,         // Runtime shutdown cancels the operation.
}
