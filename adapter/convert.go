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

package adapter

import (
	"gomq.dev/merrors"
	"gomq.dev/merrors/apis"
)

// ToDescriptor converts a runtime error together with its resolved transport
// status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the logical kind/scope, the concrete transport
// statuses (HTTP and gRPC), and a flattened rendering of the cause chain.
func ToDescriptor(e *merrors.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	d := apis.ErrorDescriptor{
		Kind:       string(e.Kind),
		Scope:      string(e.Scope),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
	if chain := merrors.CauseChain(e.Cause); len(chain) > 0 {
		d.Cause = make([]string, 0, len(chain))
		for _, c := range chain {
			d.Cause = append(d.Cause, c.Error())
		}
	}
	return d
}

// ToView converts a runtime error into a public ErrorView.
//
// Unlike ToDescriptor, the view never carries the cause chain: it is the shape
// exposed to clients, and causes may leak internal detail. This function
// performs no other redaction; it exposes exactly what the error contains.
func ToView(e *merrors.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return e.ErrorView()
}
