// SPDX-License-Identifier: MIT

package brolz

// DictionaryCandidate is a static-dictionary match returned by
// DictionaryIndex.Lookup.
type DictionaryCandidate struct {
	// Len is the accepted match length (<= the word's own length).
	Len int
	// Distance is the backward distance, computed as
	// max_backward + 1 + word_id + transform_id*(1 << size_bits_by_length[L]).
	Distance int64
}

// DictionaryIndex resolves short matches against the bundled static
// dictionary. It carries adaptive-gate counters that are per-stream state;
// the underlying table is shared, read-only data.
type DictionaryIndex struct {
	table      *dictionaryTable
	numMatches int64
	numLookups int64
}

// NewDictionaryIndex returns an index bound to the shared, lazily-built
// dictionary table.
func NewDictionaryIndex() *DictionaryIndex {
	return &DictionaryIndex{table: sharedDictionary()}
}

// Lookup resolves data's first 4 bytes against the static dictionary and,
// on a sufficiently long match, returns a DictionaryCandidate. maxLen caps
// how much of data may be compared (mirrors the max_length parameter
// threaded through FindLongestMatch). maxBackward is the current
// max_backward used to bias the returned distance past the window.
//
// The lookup is only attempted when the adaptive gate passes
// (numMatches >= numLookups/128); otherwise Lookup returns ok=false without
// touching the hash table, which is how the gate throttles dictionary
// probing on inputs where it rarely helps.
func (d *DictionaryIndex) Lookup(data []byte, maxLen int, maxBackward int64) (cand DictionaryCandidate, ok bool) {
	if len(data) < 4 {
		return cand, false
	}
	if d.numLookups > 0 && d.numMatches < d.numLookups/128 {
		return cand, false
	}
	d.numLookups++

	slot := int(hash14(data[:4]))
	for probe := 0; probe < 2; probe++ {
		ref := d.table.buckets[slot+probe]
		if ref.length == dictEmptyLength {
			continue
		}
		l := ref.length
		base := d.table.offsetsByLength[l] + ref.index*l
		word := d.table.words[base : base+l]

		limit := l
		if maxLen < limit {
			limit = maxLen
		}
		if limit <= 0 {
			continue
		}
		matched := matchLen(data, word, limit)
		trim := l - matched
		if matched <= 0 || trim < 0 || trim > maxCutoff {
			continue
		}

		transformID := d.table.cutoffTransforms[trim]
		distance := maxBackward + 1 + int64(ref.index) + int64(transformID)<<d.table.sizeBitsByLength[l]

		if !ok || matched > cand.Len {
			cand = DictionaryCandidate{Len: matched, Distance: distance}
			ok = true
		}
	}

	if ok {
		d.numMatches++
	}
	return cand, ok
}
