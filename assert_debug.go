// SPDX-License-Identifier: MIT

//go:build brolzdebug

package brolz

// debugAssertions is on under the brolzdebug build tag: invariant
// violations panic immediately instead of being silently clamped.
const debugAssertions = true
