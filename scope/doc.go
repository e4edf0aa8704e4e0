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

// Package scope defines an optional, structured refinement for runtime errors.
//
// Where kind answers "what class of failure is this?" (try_again,
// host_unreachable, ...), scope can answer "where in the runtime did it
// happen?", e.g.:
//
//   - "socket.bind"
//   - "socket.connect"
//   - "engine.handshake"
//   - "ctx.term"
//
// Scope is intentionally optional: the zero value ("") is allowed and
// indicates that no location refinement is provided. This lets callers attach
// a scope only when they actually have a meaningful, stable one to report.
package scope
