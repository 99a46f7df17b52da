// SPDX-License-Identifier: MIT

package brolz

// Window is a sliding byte buffer of size 2^lgwin. Positions are unbounded
// monotonically increasing integers; the byte at logical position p lives
// at data[p & mask]. Writers append; the engine never mutates historical
// bytes.
//
// This follows a familiar ring-buffer discipline (buffer plus wrap-around
// mask) generalized to a runtime-sized slice, since lgwin in [10, 24] is
// chosen per stream rather than fixed at compile time.
type Window struct {
	data   []byte
	mask   uint64
	cursor uint64 // next position to be written; bytes [0, cursor) are valid
}

// NewWindow allocates a window of size 2^lgWin.
func NewWindow(lgWin int) *Window {
	size := uint64(1) << uint(lgWin)
	return &Window{
		data: make([]byte, size),
		mask: size - 1,
	}
}

// NewWindowForInput allocates a window sized to hold inputLen bytes without
// wrapping even if that exceeds 2^lgWin. Real ring-buffer wraparound across
// blocks belongs to a public streaming API layered on top of this package;
// one-shot callers (see Engine.Process) use this constructor so a single
// Process call never needs to address a position it has already
// overwritten. max_backward_limit(lgWin) -- the distance ceiling candidates
// are checked against -- is unaffected by this physical oversizing; it is
// always computed from the requested lgWin.
func NewWindowForInput(lgWin, inputLen int) *Window {
	size := uint64(1) << uint(lgWin)
	need := nextPow2(uint64(inputLen))
	if need > size {
		size = need
	}
	return &Window{
		data: make([]byte, size),
		mask: size - 1,
	}
}

// nextPow2 returns the smallest power of two >= n (at least 1).
func nextPow2(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}

// Append writes b at the current cursor, advancing it. Historical bytes at
// masked positions are overwritten once the cursor wraps past size; callers
// must not read positions that have already been overwritten (position <=
// cursor - size).
func (w *Window) Append(b []byte) {
	for _, c := range b {
		w.data[w.cursor&w.mask] = c
		w.cursor++
	}
}

// Len returns the number of bytes written so far.
func (w *Window) Len() uint64 { return w.cursor }

// Mask returns size-1, the ring-buffer mask.
func (w *Window) Mask() uint64 { return w.mask }

// Bytes returns the raw backing slice (ring-ordered, not logical order).
func (w *Window) Bytes() []byte { return w.data }

// At returns the byte at logical position p.
func (w *Window) At(p uint64) byte { return w.data[p&w.mask] }

// maxBackwardLimit returns the largest legal backward distance for a window
// of the given lgwin. BROTLI_MAX_ALLOWED_DISTANCE is a looser, separate
// ceiling checked against the dictionary-extended range in backref.go.
func maxBackwardLimit(lgWin int) uint64 {
	return (uint64(1) << uint(lgWin)) - windowGap
}

// windowGap mirrors the brotli format's small reserved gap at the top of
// the window, kept distinct from size so max_backward_limit never equals
// the full window size.
const windowGap = 16
