//go:build debug

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

package signal

import "fmt"

// assertMapped panics when the classifier is about to fall back to
// kind.Unknown. Compiled only under the "debug" build tag so an incomplete
// mapping table surfaces during development; production builds take the
// no-op version in assert_release.go and fall back silently.
func assertMapped(err error) {
	panic(fmt.Sprintf("merrors/signal: unmapped platform signal: %v", err))
}
