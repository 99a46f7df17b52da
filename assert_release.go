// SPDX-License-Identifier: MIT

//go:build !brolzdebug

package brolz

// debugAssertions is off in release builds: invariant violations are
// clamped by callers rather than panicking.
const debugAssertions = false
