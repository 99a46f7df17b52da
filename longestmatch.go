// SPDX-License-Identifier: MIT

package brolz

// SearchResult is a best-candidate accumulator threaded through
// FindLongestMatch. A caller starts with a zero-value or previously-best
// SearchResult and passes it back in as the "prior best" so later stages
// can only improve on it.
type SearchResult struct {
	Len            int
	Distance       int64
	Score          float64
	UsedDictionary bool
}

// FindLongestMatch probes the last-distance cache, walks the forgetful
// hash chain, and (if those found nothing better) falls back to the static
// dictionary, always storing the current position into the hash table
// along the way.
//
// data is the ring buffer's raw backing array (ring-ordered, not logical
// order); mask is Window.Mask(); p is the logical position being searched;
// maxLength bounds how far matchLen may look; maxBackward bounds how far
// back a candidate distance may reach; dictionaryDistanceBase is the
// max_backward used to bias dictionary-derived distances past the window;
// prior is the best candidate found so far (e.g. from a previous,
// lower-quality stage) and is only ever improved upon, never discarded.
func FindLongestMatch(
	h *HashTable,
	dict *DictionaryIndex,
	cache *DistanceCache,
	data []byte,
	mask uint64,
	p uint64,
	maxLength int,
	maxBackward int64,
	dictionaryDistanceBase int64,
	prior SearchResult,
) SearchResult {
	best := prior
	if best.Score == 0 {
		best.Score = minScore
	}
	minAcceptScore := best.Score

	curMasked := p & mask
	key := h.hash(data[curMasked:])
	tiny := uint8(key)

	// Step 1: last-distance cache probes.
	for i := 0; i < numLastDistancesToCheck; i++ {
		d := cache.Probe(i)
		if d <= 0 || d > maxBackward {
			continue
		}
		src := p - uint64(d)
		if src >= p {
			continue
		}
		srcMasked := src & mask
		if i > 0 && h.tinyHash[uint16(src)] != tiny {
			continue
		}
		length := matchLen(data[srcMasked:], data[curMasked:], maxLength)
		if length < 2 {
			continue
		}
		s := scoreLast(length, i)
		if i != 0 {
			s -= lastDistancePenalty(i)
		}
		if s > best.Score {
			best = SearchResult{Len: length, Distance: d, Score: s}
		}
	}

	// Step 2: hash-chain walk. Always stores p at the end, regardless of
	// whether a match was found.
	bank := int(key) & (h.numBanks - 1)
	backward := uint64(0)
	delta := p - uint64(h.addr[key])
	sl := h.head[key]
	for hops := 0; hops < h.maxHops; hops++ {
		backward += delta
		if backward > uint64(maxBackward) || (h.CappedChains && delta == 0) {
			break
		}
		if backward == 0 {
			// A zero backward distance means the chain walk produced a
			// source position that is not strictly before p: a bug, never a
			// legitimate candidate.
			assertf(false, "hash chain: zero backward distance walking key %d at position %d", key, p)
			continue
		}
		prevIx := (p - backward) & mask
		link := h.banks[bank][sl]
		delta = uint64(link.delta)
		sl = link.next

		if int(curMasked)+best.Len > int(mask) || int(prevIx)+best.Len > int(mask) {
			continue
		}
		if data[curMasked+uint64(best.Len)] != data[prevIx+uint64(best.Len)] {
			continue
		}

		length := matchLen(data[prevIx:], data[curMasked:], maxLength)
		if length < 4 {
			continue
		}
		s := score(length, int64(backward))
		if s > best.Score {
			best = SearchResult{Len: length, Distance: int64(backward), Score: s}
		}
	}
	h.Store(data, mask, p)

	// Step 3: static-dictionary fallback, only consulted when the first two
	// steps made no improvement.
	if best.Score == minAcceptScore {
		if cand, ok := dict.Lookup(data[curMasked:], maxLength, dictionaryDistanceBase); ok {
			s := score(cand.Len, cand.Distance)
			if s > best.Score {
				best = SearchResult{Len: cand.Len, Distance: cand.Distance, Score: s, UsedDictionary: true}
			}
		}
	}

	return best
}
