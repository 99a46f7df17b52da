// SPDX-License-Identifier: MIT

/*
Package brolz implements the LZ77 match-finding and backward-reference
generation core of a Brotli-family compressor: a forgetful-chain hash
table, a longest-match search combining a last-distance cache, hash-chain
walking and a static-dictionary fallback, and a lazy-match outer loop
that turns a byte window into an ordered stream of commands.

Entropy coding, bitstream framing, and window/ring-buffer I/O are not
part of this package; they are external collaborators that consume the
Command stream this package produces.

# Usage

Quality selects the hasher parameters (see ParamsForQuality); qualities
4 through 9 use the forgetful-chain engine this package implements.

	eng := brolz.NewEngine(brolz.DefaultOptions())
	cmds, err := eng.Process(data)

Options may be nil (DefaultOptions is used):

	eng := brolz.NewEngine(nil)

# Commands

Each Command is an insert length (literal run) followed by an optional
copy (length + distance). A copy length of zero marks the terminal
insert-only command. Commands are appended to a caller-provided sink;
the engine neither allocates nor resizes the caller's slice beyond what
Process itself returns.
*/
package brolz
