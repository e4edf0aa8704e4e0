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

// Package grpcx adapts classified runtime errors to gRPC statuses.
//
// Errors produced by gomq.dev/merrors are converted into gRPC errors whose
// code comes from an apis.Mapper and whose details carry a standard
// google.rpc.ErrorInfo block, so any gRPC client can recover the taxonomy
// kind and scope without importing this module.
package grpcx

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"gomq.dev/merrors"
	"gomq.dev/merrors/apis"
)

// Domain is the value placed into google.rpc.ErrorInfo.Domain for every
// error emitted by this package. Clients use it to recognize GoMQ errors
// among details attached by other layers.
const Domain = "merrors.gomq.dev"

// Metadata keys used inside google.rpc.ErrorInfo.Metadata.
const (
	metaScope         = "scope"
	metaCause         = "cause"
	metaCorrelationID = "correlation_id"
	metaTraceID       = "trace_id"
)

// Extras holds optional metadata attached to the outgoing status details.
// All fields are optional.
type Extras struct {
	// CorrelationID is a client/server correlation token (request ID,
	// idempotency key).
	CorrelationID string

	// TraceID is the distributed trace identifier.
	TraceID string

	// RetryAfter, when positive, attaches a google.rpc.RetryInfo hint
	// telling the client how long to back off before retrying.
	RetryAfter time.Duration
}

// MetaFn extracts Extras from the request context and the runtime error.
// It can return an empty Extras if nothing is available.
type MetaFn func(ctx context.Context, e *merrors.Error) Extras

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *merrors.Error values into gRPC errors with google.rpc.ErrorInfo details.
//
// The provided apis.Mapper resolves the taxonomy kind and scope into the
// transport status code. Errors that are not *merrors.Error (even wrapped)
// pass through unchanged.
//
// The optional MetaFn supplies correlation and retry metadata. If nil, no
// extra metadata is added.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, *merrors.Error) Extras { return Extras{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var me *merrors.Error
		if !errors.As(err, &me) {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, Convert(m, me, metaFn(ctx, me))
	}
}

// Convert turns a runtime error into a gRPC status error with ErrorInfo
// (and optionally RetryInfo) details attached. It is the building block
// behind UnaryServerInterceptor and can be used directly from handlers.
func Convert(m apis.Mapper, e *merrors.Error, ex Extras) error {
	if e == nil {
		return nil
	}

	st := m.Status(e.Kind, e.Scope)
	base := gstatus.New(st.GRPC, e.Error())

	info := &errdetails.ErrorInfo{
		// Reason follows the google.rpc convention of UPPER_SNAKE_CASE
		// identifiers; taxonomy kinds are lower_snake, so this is a
		// pure case change and remains reversible.
		Reason:   strings.ToUpper(string(e.Kind)),
		Domain:   Domain,
		Metadata: map[string]string{},
	}
	if e.Scope != "" {
		info.Metadata[metaScope] = string(e.Scope)
	}
	if e.Cause != nil {
		info.Metadata[metaCause] = e.Cause.Error()
	}
	if ex.CorrelationID != "" {
		info.Metadata[metaCorrelationID] = ex.CorrelationID
	}
	if ex.TraceID != "" {
		info.Metadata[metaTraceID] = ex.TraceID
	}

	if ex.RetryAfter > 0 {
		retry := &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryAfter)}
		if with, err := base.WithDetails(info, retry); err == nil {
			return with.Err()
		}
	} else if with, err := base.WithDetails(info); err == nil {
		return with.Err()
	}

	// Detail attachment failed (should not happen with well-formed protos);
	// the status code and message still carry the essentials.
	return base.Err()
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo emitted by this package out
// of a gRPC error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == Domain {
			return info, true
		}
	}
	return nil, false
}

// KindFromError recovers the taxonomy kind name from a gRPC error produced
// by this package. The second return is false when the error carries no
// GoMQ ErrorInfo detail.
func KindFromError(err error) (string, bool) {
	info, ok := ExtractErrorInfo(err)
	if !ok {
		return "", false
	}
	return strings.ToLower(info.GetReason()), true
}
