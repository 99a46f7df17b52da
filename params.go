// SPDX-License-Identifier: MIT

package brolz

// HasherType identifies which search engine a quality level selects. Only
// HasherForgetfulChain is implemented by this package; the others are
// named so ParamsForQuality has a complete, honest return value across the
// whole quality range even though their engines live outside this
// package's scope.
type HasherType int

const (
	// HasherQuickly is the sweep-based hasher used at qualities 0-3.
	HasherQuickly HasherType = iota
	// HasherForgetfulChain is this package's engine, used at qualities 4-9.
	HasherForgetfulChain
	// HasherLongestMatch is the full hash-map hasher used at qualities 10-11.
	HasherLongestMatch
)

// HasherParams is the resolved parameter set for a quality level, named
// field by field rather than collapsed to anonymous ints.
type HasherParams struct {
	Type HasherType
	// BucketBits is log2 of the hash table's bucket count.
	BucketBits int
	// BankBits is log2 of each bank's slot count (forgetful-chain only).
	BankBits int
	// NumBanks is the number of banks (forgetful-chain only); chains are
	// sharded across banks by key & (NumBanks-1).
	NumBanks int
	// HashLen is the number of leading bytes hashed per key (always 4 here).
	HashLen int
	// NumLastDistancesToCheck is how many cache probes FindLongestMatch tries.
	NumLastDistancesToCheck int
	// MaxHops bounds the hash-chain walk in FindLongestMatch.
	MaxHops int
	// Sweep is the stride used by the quick-sweep hashers (qualities 0-3);
	// zero for engines that do not sweep.
	Sweep int
}

// ParamsForQuality resolves (quality, lgwin, lgblock) into a HasherParams.
// lgblock is accepted for signature parity with callers that also need a
// block size but does not change the hasher's own bucket/bank sizing;
// lgblock of 0 means "auto", which callers resolve from quality themselves.
func ParamsForQuality(quality, lgwin, lgblock int) (HasherParams, error) {
	if quality < 0 || quality > 11 {
		return HasherParams{}, ErrInvalidQuality
	}
	if lgwin < 10 || lgwin > 24 {
		return HasherParams{}, ErrInvalidWindow
	}
	if lgblock != 0 && (lgblock < 16 || lgblock > 24) {
		return HasherParams{}, ErrInvalidBlockSize
	}

	switch {
	case quality == 0:
		return HasherParams{Type: HasherQuickly, BucketBits: 16, HashLen: 4, Sweep: 1}, nil
	case quality == 1:
		return HasherParams{Type: HasherQuickly, BucketBits: 16, HashLen: 4, Sweep: 2}, nil
	case quality >= 2 && quality <= 3:
		return HasherParams{Type: HasherQuickly, BucketBits: 17, HashLen: 4, Sweep: 4}, nil
	case quality == 4:
		return HasherParams{
			Type: HasherForgetfulChain, BucketBits: 15, BankBits: 9, NumBanks: 1,
			HashLen: 4, NumLastDistancesToCheck: numLastDistancesToCheck,
			MaxHops: 8 << 0,
		}, nil
	case quality >= 5 && quality <= 6:
		return HasherParams{
			Type: HasherForgetfulChain, BucketBits: 15, BankBits: 9, NumBanks: 1,
			HashLen: 4, NumLastDistancesToCheck: numLastDistancesToCheck,
			MaxHops: 8 << uint(quality-4),
		}, nil
	case quality >= 7 && quality <= 9:
		return HasherParams{
			Type: HasherForgetfulChain, BucketBits: 15, BankBits: 9, NumBanks: 1,
			HashLen: 4, NumLastDistancesToCheck: numLastDistancesToCheck,
			MaxHops: 7 << uint(quality-4),
		}, nil
	default: // 10-11
		return HasherParams{
			Type: HasherLongestMatch, BucketBits: 17, HashLen: 4,
			NumLastDistancesToCheck: numLastDistancesToCheck,
			MaxHops:                 1 << 30, // "full sweep": unbounded relative to any real chain
		}, nil
	}
}

// randomHeuristicsWindow returns the gap used by the random-data skip
// heuristic: 64 below quality 9, 512 at or above it.
func randomHeuristicsWindow(quality int) int {
	if quality < 9 {
		return 64
	}
	return 512
}

// lazyLowerBoundsStrictly reports whether quality uses the stricter lazy
// look-ahead lower bound: below quality 5, only strictly longer matches
// can displace the current one.
func lazyLowerBoundsStrictly(quality int) bool {
	return quality < 5
}
