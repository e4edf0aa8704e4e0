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

// General failure kinds
//
// These kinds describe failures that are not tied to a particular stage of a
// socket's life. They are the ones most often produced when wrapping a raw
// platform error at the classification boundary.
const (
	// Unspecified indicates a general socket-layer failure for which the
	// platform reported an error the runtime recognizes but does not further
	// distinguish. Distinct from Unknown: Unspecified is a deliberate
	// taxonomy entry, Unknown is the classifier's own fallback.
	Unspecified Kind = "unspecified"

	// AccessDenied indicates the operating system refused the operation for
	// permission reasons (e.g. binding a privileged port).
	AccessDenied Kind = "access_denied"

	// Fault indicates an internal fault: a bad buffer address or another
	// condition that points at a bug rather than an environmental problem.
	Fault Kind = "fault"

	// Invalid indicates an invalid argument: a malformed endpoint string,
	// an out-of-range option value, a socket option applied to the wrong
	// socket type.
	Invalid Kind = "invalid"

	// TooManyOpenHandles indicates the process ran out of file or socket
	// handles.
	TooManyOpenHandles Kind = "too_many_open_handles"

	// TryAgain indicates the operation cannot complete right now and should
	// be retried: a non-blocking send on a full pipe, a connect still in
	// progress.
	TryAgain Kind = "try_again"

	// MessageSize indicates a message exceeded the allowed size.
	MessageSize Kind = "message_size"
)

// Address and protocol kinds
const (
	// ProtocolNotSupported indicates the requested transport or wire
	// protocol is not supported by this runtime or platform.
	ProtocolNotSupported Kind = "protocol_not_supported"

	// AddressFamilyNotSupported indicates the address family of an endpoint
	// is not supported (e.g. IPv6 on an IPv4-only stack).
	AddressFamilyNotSupported Kind = "address_family_not_supported"

	// AddressNotAvailable indicates the requested address is not available
	// on this host.
	AddressNotAvailable Kind = "address_not_available"

	// AddressAlreadyInUse indicates the endpoint address is already bound
	// by this or another process.
	AddressAlreadyInUse Kind = "address_in_use"

	// EndpointNotFound indicates a connect/disconnect referenced an endpoint
	// the runtime does not know about.
	EndpointNotFound Kind = "endpoint_not_found"
)

// Network condition kinds
//
// These map closely to the classic socket-layer network failures and are
// normally produced by the signal classifier rather than chosen by hand.
const (
	// NetworkDown indicates the local network interface is down.
	NetworkDown Kind = "network_down"

	// NetworkUnreachable indicates no route to the destination network.
	NetworkUnreachable Kind = "network_unreachable"

	// NetworkReset indicates the connection was dropped because the network
	// reset it.
	NetworkReset Kind = "network_reset"

	// ConnectionAborted indicates the connection was aborted locally.
	ConnectionAborted Kind = "connection_aborted"

	// ConnectionReset indicates the peer reset the connection.
	ConnectionReset Kind = "connection_reset"

	// ConnectionRefused indicates the peer actively refused the connection.
	ConnectionRefused Kind = "connection_refused"

	// HostUnreachable indicates no route to the destination host.
	HostUnreachable Kind = "host_unreachable"

	// NoBufferSpace indicates the kernel ran out of buffer space for the
	// operation.
	NoBufferSpace Kind = "no_buffer_space"

	// NotConnected indicates an operation that requires a connection was
	// attempted on a socket that has none.
	NotConnected Kind = "not_connected"

	// TimedOut indicates the operation exceeded its time budget.
	TimedOut Kind = "timed_out"
)

// Runtime lifecycle kinds
//
// These are raised by the runtime itself, never by the platform, so the
// classifier has no mapping for them.
const (
	// ContextTerminated indicates the messaging context is shutting down
	// and the operation cannot proceed.
	ContextTerminated Kind = "context_terminated"

	// FSMViolation indicates an operation was attempted in a protocol state
	// that does not permit it (e.g. two consecutive sends on a strict
	// request socket).
	FSMViolation Kind = "fsm_violation"

	// Unknown is the classifier's escape hatch: the platform reported a
	// signal the mapping table does not cover. It is a legitimate, visible
	// outcome and indicates the table needs extension.
	Unknown Kind = "unknown"
)

// registry is the membership set behind Validate. Being compile-time
// initialized from the constants above, it is the single place that defines
// what "closed vocabulary" means at runtime.
var registry = map[Kind]struct{}{
	Unspecified:               {},
	AccessDenied:              {},
	Fault:                     {},
	Invalid:                   {},
	TooManyOpenHandles:        {},
	TryAgain:                  {},
	MessageSize:               {},
	ProtocolNotSupported:      {},
	AddressFamilyNotSupported: {},
	AddressNotAvailable:       {},
	NetworkDown:               {},
	NetworkUnreachable:        {},
	NetworkReset:              {},
	ConnectionAborted:         {},
	ConnectionReset:           {},
	NoBufferSpace:             {},
	NotConnected:              {},
	TimedOut:                  {},
	ConnectionRefused:         {},
	HostUnreachable:           {},
	ContextTerminated:         {},
	EndpointNotFound:          {},
	AddressAlreadyInUse:       {},
	FSMViolation:              {},
	Unknown:                   {},
}

// All returns every kind in the taxonomy in declaration order. The returned
// slice is a fresh copy on every call; callers may modify it freely.
func All() []Kind {
	return []Kind{
		Unspecified,
		AccessDenied,
		Fault,
		Invalid,
		TooManyOpenHandles,
		TryAgain,
		MessageSize,
		ProtocolNotSupported,
		AddressFamilyNotSupported,
		AddressNotAvailable,
		NetworkDown,
		NetworkUnreachable,
		NetworkReset,
		ConnectionAborted,
		ConnectionReset,
		NoBufferSpace,
		NotConnected,
		TimedOut,
		ConnectionRefused,
		HostUnreachable,
		ContextTerminated,
		EndpointNotFound,
		AddressAlreadyInUse,
		FSMViolation,
		Unknown,
	}
}
