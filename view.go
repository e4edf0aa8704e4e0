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
	"gomq.dev/merrors/apis"
)

// Compile-time checks: *Error satisfies the public apis contracts.
var (
	_ apis.KindedError  = (*Error)(nil)
	_ apis.ScopedError  = (*Error)(nil)
	_ apis.ViewProvider = (*Error)(nil)
)

// ErrorView returns the transport-friendly snapshot of the error.
//
// The view carries only kind, scope and message. The cause chain is omitted
// on purpose: causes may contain internal detail (endpoint strings, file
// descriptors) that boundary code must opt into via apis.ErrorDescriptor.
func (e *Error) ErrorView() apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Kind:    string(e.Kind),
		Scope:   string(e.Scope),
		Message: e.Message,
	}
}
