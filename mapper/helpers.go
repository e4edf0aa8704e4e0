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
	"strings"

	"gomq.dev/merrors/kind"
	"google.golang.org/grpc/codes"
)

// prefixTable maps normalized scope prefixes to a transport status.
// Keys are whole dot-separated prefixes ("socket", "socket.bind"), so a
// lookup walks the scope from most to least specific and the first hit
// is automatically the longest match.
type prefixTable[V any] map[string]V

// match resolves s against the table using segment-aware longest-prefix
// matching. It returns the value, the prefix that matched, and whether
// any rule matched. The empty scope never matches.
func (t prefixTable[V]) match(s string) (V, string, bool) {
	for p := s; p != ""; {
		if v, ok := t[p]; ok {
			return v, p, true
		}
		i := strings.LastIndexByte(p, '.')
		if i < 0 {
			break
		}
		p = p[:i]
	}
	var zero V
	return zero, "", false
}

// freezeMap makes an immutable copy of a per-kind map.
// Used when finalizing the mapper so later mutations to the builder
// (or caller-owned maps) cannot affect the snapshot.
func freezeMap[V any](src map[kind.Kind]V) map[kind.Kind]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[kind.Kind]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a per-kind map, converting
// builder-style int values into typed gRPC codes.
func freezeGRPC(src map[kind.Kind]int) map[kind.Kind]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[kind.Kind]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
