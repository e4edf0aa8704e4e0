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

// Package kind defines the closed taxonomy of failure categories used by the
// GoMQ runtime.
//
// A "kind" is the top-level, machine-readable classification of a runtime
// failure, such as "try_again", "host_unreachable" or "context_terminated".
// Kinds are meant to be:
//
//   - short and stable;
//   - lowercased, underscore-separated;
//   - platform-independent (no errno values leak through them);
//   - suitable for use in JSON payloads and for dispatch in calling code.
//
// Unlike open-ended code registries, the kind vocabulary is CLOSED: the set
// of valid kinds is fixed at compile time and Parse/Validate reject anything
// outside it. Every component of the runtime that signals a failure selects
// exactly one kind; the signal classifier and the error constructors in the
// root package share this vocabulary.
package kind
