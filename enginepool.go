// SPDX-License-Identifier: MIT

package brolz

import "sync"

// hashTablePool reuses *HashTable values for the most common parameter set
// (the one DefaultOptions resolves to), avoiding a sizable allocation on
// every one-shot stream. Pools a heavyweight per-stream structure the same
// way a sliding-window dictionary pool reuses its own backing state.
var hashTablePool = sync.Pool{
	New: func() any {
		return NewHashTable(defaultPoolParams)
	},
}

var defaultPoolParams = HasherParams{
	Type: HasherForgetfulChain, BucketBits: 15, BankBits: 9, NumBanks: 1,
	HashLen: 4, NumLastDistancesToCheck: numLastDistancesToCheck, MaxHops: 7 << 5,
}

// acquireHashTable returns a HashTable for params, reusing a pooled one
// when params match the pool's fixed shape and clearing it via Prepare;
// otherwise it allocates a fresh table sized for the requested params.
func acquireHashTable(params HasherParams) *HashTable {
	if params == defaultPoolParams {
		h := hashTablePool.Get().(*HashTable)
		h.Prepare(0, nil, false)
		return h
	}
	return NewHashTable(params)
}

// releaseHashTable returns h to the pool if its shape matches the pool's
// fixed shape; otherwise it is simply dropped for the garbage collector.
func releaseHashTable(h *HashTable) {
	if h == nil {
		return
	}
	if h.bucketBits == defaultPoolParams.BucketBits &&
		h.bankBits == defaultPoolParams.BankBits &&
		h.numBanks == defaultPoolParams.NumBanks {
		hashTablePool.Put(h)
	}
}
