// SPDX-License-Identifier: MIT

package brolz

// maxLazyDepth bounds how many times the lazy look-ahead may defer emitting
// a match in a row before taking it unconditionally.
const maxLazyDepth = 4

// lazyBias is the score margin a one-byte-later candidate must clear over
// the current best before the generator defers.
const lazyBias = 7.0

// maxAllowedDistance is BROTLI_MAX_ALLOWED_DISTANCE: the absolute ceiling
// on any distance this engine may emit, covering dictionary-derived
// distances that legitimately run past the window.
const maxAllowedDistance = (1 << 30) - 4

// distanceIsLegal reports whether d is an admissible distance for a
// candidate found against maxBackward: in-window candidates must not
// exceed maxBackward, dictionary candidates may run past the window but
// never past maxAllowedDistance. A violation here is a programmer error,
// not a reachable input-dependent condition.
func distanceIsLegal(d int64, maxBackward int64, usedDictionary bool) bool {
	if d <= 0 {
		return false
	}
	if usedDictionary {
		return d <= maxAllowedDistance
	}
	return d <= maxBackward
}

// Generator drives the outer loop over an input block that calls
// FindLongestMatch, applies lazy-match deferral and the random-data skip
// heuristic, and appends commands to a caller-provided sink. A Generator is
// stateful across blocks: InsertLen and the distance cache carry over from
// one Generate call to the next.
type Generator struct {
	Hash       *HashTable
	Dict       *DictionaryIndex
	Cache      *DistanceCache
	Quality    int
	MaxBackward int64 // max_backward_limit(lgwin)
	// DictDistanceBase is the distance added to word/transform ids for
	// dictionary matches; normally equal to MaxBackward.
	DictDistanceBase int64

	// InsertLen is the literal run carried into the next block.
	InsertLen uint64
}

// NewGenerator builds a Generator for the given quality/window, allocating
// its own HashTable, DictionaryIndex and DistanceCache. Only qualities 4-9
// are supported (the forgetful-chain range); see ErrUnsupportedQuality.
func NewGenerator(quality, lgWin, lgBlock int) (*Generator, error) {
	params, err := ParamsForQuality(quality, lgWin, lgBlock)
	if err != nil {
		return nil, err
	}
	if params.Type != HasherForgetfulChain {
		return nil, ErrUnsupportedQuality
	}
	maxBackward := int64(maxBackwardLimit(lgWin))
	return &Generator{
		Hash:             acquireHashTable(params),
		Dict:             NewDictionaryIndex(),
		Cache:            NewDistanceCache(),
		Quality:          quality,
		MaxBackward:      maxBackward,
		DictDistanceBase: maxBackward,
	}, nil
}

// Release returns the Generator's HashTable to the shared pool when its
// shape matches the pool's fixed layout. Callers that are done with a
// one-shot Generator (e.g. Engine.Process) should call this once no further
// Generate calls are coming; calling it again is a no-op.
func (g *Generator) Release() {
	releaseHashTable(g.Hash)
	g.Hash = nil
}

// Generate runs the backward-reference outer loop over data[p0 : p0+n] and
// appends the resulting commands to sink, returning the extended slice.
// mask is the window's ring mask; data is its raw backing array. One-shot
// vs. incremental HashTable.Prepare semantics are the caller's
// responsibility before the first Generate call; Generate itself only
// stitches and stores.
func (g *Generator) Generate(data []byte, mask uint64, p0 uint64, n int, sink []Command) []Command {
	position := p0
	posEnd := p0 + uint64(n)

	var storeEnd uint64
	if n >= 4 {
		storeEnd = p0 + uint64(n) - 3
	} else {
		storeEnd = p0
	}

	rngWindow := randomHeuristicsWindow(g.Quality)
	applyRngAt := position + uint64(rngWindow)

	g.Hash.StitchToPreviousBlock(data, mask, n, p0)
	g.Cache.Prepare()

	for position+4 < posEnd {
		assertf(position < posEnd, "backward reference generator: position %d at or beyond block end %d", position, posEnd)

		maxLength := int(posEnd - position)
		maxBackward := position
		if maxBackward > uint64(g.MaxBackward) {
			maxBackward = uint64(g.MaxBackward)
		}

		best := FindLongestMatch(g.Hash, g.Dict, g.Cache, data, mask, position,
			maxLength, int64(maxBackward), g.DictDistanceBase, SearchResult{})

		if best.Len > 0 {
			delayed := 0
			for {
				nextPos := position + 1
				if nextPos+4 >= posEnd {
					break
				}
				lookaheadMaxLength := int(posEnd - nextPos)

				nextMaxBackward := nextPos
				if nextMaxBackward > uint64(g.MaxBackward) {
					nextMaxBackward = uint64(g.MaxBackward)
				}

				// At quality < 5, the lookahead only wants to consider
				// candidates that strictly beat the current match's length.
				// Seeding prior.Len with that floor (leaving Score at its
				// default) makes FindLongestMatch's own hash-chain-walk
				// rejection exclude shorter candidates internally, instead
				// of computing an unconstrained "best" and filtering it
				// after the fact.
				var lookaheadPrior SearchResult
				if lazyLowerBoundsStrictly(g.Quality) {
					floor := best.Len - 1
					if floor < 0 {
						floor = 0
					}
					if floor > lookaheadMaxLength {
						floor = lookaheadMaxLength
					}
					lookaheadPrior.Len = floor
				}

				candidate := FindLongestMatch(g.Hash, g.Dict, g.Cache, data, mask, nextPos,
					lookaheadMaxLength, int64(nextMaxBackward), g.DictDistanceBase, lookaheadPrior)

				if candidate.Len == 0 || candidate.Score < best.Score+lazyBias {
					break
				}

				position++
				g.InsertLen++
				best = candidate
				delayed++
				if delayed >= maxLazyDepth {
					break
				}
			}

			if !distanceIsLegal(best.Distance, g.MaxBackward, best.UsedDictionary) {
				assertf(false, "match engine: illegal distance %d (len %d, dictionary=%v) at position %d",
					best.Distance, best.Len, best.UsedDictionary, position)
				best.Len = 0 // release-mode: discard the illegal match, fall through to a literal insert
			}
		}

		if best.Len > 0 {
			isFromCache := g.Cache.IsCacheDistance(best.Distance) && !best.UsedDictionary
			if !isFromCache {
				g.Cache.Accepted(best.Distance)
			}

			sink = append(sink, Command{
				InsertLen: int(g.InsertLen),
				CopyLen:   best.Len,
				Distance:  best.Distance,
			})
			g.InsertLen = 0

			storeFrom := position + 2
			storeTo := position + uint64(best.Len)
			if storeTo > storeEnd {
				storeTo = storeEnd
			}
			if storeFrom < storeTo {
				g.Hash.StoreRange(data, mask, storeFrom, storeTo)
			}

			position += uint64(best.Len)
			applyRngAt = position + 2*uint64(best.Len) + uint64(rngWindow)
		} else {
			g.InsertLen++
			position++

			if position > applyRngAt {
				stride := uint64(2)
				span := uint64(8)
				if position > applyRngAt+4*uint64(rngWindow) {
					stride = 4
					span = 16
				}
				jumpLimit := storeEnd
				jump := position + span
				if jump > jumpLimit {
					jump = jumpLimit
				}
				for position < jump {
					g.Hash.Store(data, mask, position)
					g.InsertLen += stride
					position += stride
				}
			}
		}
	}

	g.InsertLen += posEnd - position
	return sink
}
