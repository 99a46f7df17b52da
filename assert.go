// SPDX-License-Identifier: MIT

package brolz

import "fmt"

// assertf panics with a formatted message when debugAssertions is enabled
// (build tag brolzdebug). It is a no-op in release builds; callers are
// still responsible for clamping (for example, discarding the offending
// match) instead of emitting an illegal command, regardless of this flag.
func assertf(cond bool, format string, args ...any) {
	if debugAssertions && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
