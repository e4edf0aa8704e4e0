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

// Package signal translates platform socket-error signals into the closed
// kind taxonomy.
//
// Platform socket-error vocabularies are OS-specific and not stable across
// platforms, so the runtime isolates them here: Classify is the single point
// where a "foreign" failure signal becomes a portable kind.Kind. Upstream
// code depends only on the taxonomy, never on errno values.
//
// Classify is a total function. Every input produces a result:
//
//   - platform errnos found in the mapping table yield their documented kind
//     (e.g. "in progress" -> TryAgain, "host unreachable" -> HostUnreachable);
//   - portable Go errors with a clear runtime meaning are mapped as well
//     (context cancellation -> ContextTerminated, deadline errors -> TimedOut);
//   - anything else yields kind.Unknown.
//
// Unknown is a legitimate, visible outcome that means the table needs
// extension. Builds with the "debug" tag additionally panic on the Unknown
// path so incomplete tables surface during development; production builds
// always fall back silently.
//
// The actual errno constants live in platform-specific files:
//
//   - unix.go for Unix-like systems using x/sys/unix
//   - windows.go for Windows systems using x/sys/windows
package signal
