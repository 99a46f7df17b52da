// SPDX-License-Identifier: MIT

package brolz

// Mode hints the encoder façade's block-splitting and context modeling;
// the match engine itself only reads it through Options and does not
// branch on it beyond selecting dictionary transforms later in the
// pipeline (out of scope for this package).
type Mode int

const (
	// ModeGeneric makes no assumption about the input's structure.
	ModeGeneric Mode = iota
	// ModeText hints UTF-8 text.
	ModeText
	// ModeFont hints WOFF2-style font data.
	ModeFont
)

// Options configures a match-engine run. Options may be nil (DefaultOptions
// is used). Quality selects the hasher family via ParamsForQuality; only
// qualities 4-9 (the forgetful-chain engine) are implemented by this package.
type Options struct {
	// Quality in [0, 11]. Qualities 4-9 use the forgetful-chain engine.
	Quality int
	// LgWin is log2 of the window size, in [10, 24].
	LgWin int
	// LgBlock is log2 of the block size, in {0} union [16, 24]; 0 means
	// auto-select from Quality.
	LgBlock int
	// Mode hints input structure to collaborating components.
	Mode Mode
}

// DefaultOptions returns options for quality 9 (the highest quality served
// by the forgetful-chain engine) with a 22-bit window and auto block size.
func DefaultOptions() *Options {
	return &Options{Quality: 9, LgWin: 22, LgBlock: 0, Mode: ModeGeneric}
}

// validate checks Options against the forgetful-chain engine's constraints.
func (o *Options) validate() error {
	if o.Quality < 0 || o.Quality > 11 {
		return ErrInvalidQuality
	}
	if o.LgWin < 10 || o.LgWin > 24 {
		return ErrInvalidWindow
	}
	if o.LgBlock != 0 && (o.LgBlock < 16 || o.LgBlock > 24) {
		return ErrInvalidBlockSize
	}
	return nil
}
