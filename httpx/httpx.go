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

// Package httpx adapts classified runtime errors to HTTP responses.
//
// The management surfaces of a messaging runtime (health checks, admin
// endpoints) report errors as JSON bodies whose status code is resolved by
// an apis.Mapper and whose shape is apis.ErrorView.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"gomq.dev/merrors"
	"gomq.dev/merrors/apis"
)

// Meta carries extra context the HTTP layer can add on top of the error.
// All fields are optional and typically come from request context, headers,
// or rate-limiter output.
type Meta struct {
	// Correlation is a request correlation token echoed back to the client
	// via the X-Correlation-Id header.
	Correlation string

	// RetryAfterSeconds, when positive, emits a Retry-After header.
	RetryAfterSeconds int
}

// Writer is a thin adapter that turns a *merrors.Error into an HTTP response
// using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the transport status for the error and writes its public
// view as a JSON body.
//
// The body is the apis.ErrorView of the error: kind, scope and message only.
// The cause chain is never written to clients; use adapter.ToDescriptor for
// logs if the chain is needed.
func (w Writer) Write(rw http.ResponseWriter, err *merrors.Error, meta Meta) {
	if err == nil {
		return
	}

	st := w.Mapper.Status(err.Kind, err.Scope)

	rw.Header().Set("Content-Type", "application/json")
	if meta.Correlation != "" {
		rw.Header().Set("X-Correlation-Id", meta.Correlation)
	}
	if meta.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(meta.RetryAfterSeconds))
	}
	rw.WriteHeader(st.HTTP)

	b, _ := json.Marshal(err.ErrorView())
	_, _ = rw.Write(b)
}
