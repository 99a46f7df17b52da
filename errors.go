// SPDX-License-Identifier: MIT

package brolz

import "errors"

// Sentinel errors for the match engine. All are safe to compare with
// errors.Is; wrapped forms attach position/distance context.
var (
	// ErrEmptyInput is returned when Process is called with no bytes.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidQuality is returned when Options.Quality is outside [0, 11].
	ErrInvalidQuality = errors.New("quality out of range [0, 11]")
	// ErrInvalidWindow is returned when Options.LgWin is outside [10, 24].
	ErrInvalidWindow = errors.New("lgwin out of range [10, 24]")
	// ErrInvalidBlockSize is returned when Options.LgBlock is nonzero and outside [16, 24].
	ErrInvalidBlockSize = errors.New("lgblock out of range {0} union [16, 24]")
	// ErrUnsupportedQuality is returned when Process is asked to run a quality
	// whose hasher (quick-sweep or longest-match hash-map) this package does not
	// implement; only qualities 4-9 (the forgetful-chain engine) are supported here.
	ErrUnsupportedQuality = errors.New("quality not served by the forgetful-chain engine (want 4-9)")

	// ErrDistanceOutOfRange names a candidate or emitted distance that
	// exceeds max_backward_limit(lgwin) plus the dictionary's distance
	// overflow. No function in this package returns it: the generator
	// discards such a match instead (and panics under brolzdebug; see
	// assert.go).
	ErrDistanceOutOfRange = errors.New("distance exceeds max allowed distance")
	// ErrPositionOutOfRange names a search position that is not strictly
	// before the window's write cursor. No function in this package returns it.
	ErrPositionOutOfRange = errors.New("position at or beyond window end")

	// ErrEngineInternal names invariant violations that are not one of the
	// above (e.g. a hash-chain walk producing src >= p). No function in this
	// package returns it; such violations are checked with assertf.
	ErrEngineInternal = errors.New("internal match engine error")
)
