package brolz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func quality9Params(t *testing.T) HasherParams {
	t.Helper()
	p, err := ParamsForQuality(9, 22, 0)
	require.NoError(t, err)
	return p
}

func TestNewHashTable_StartsEmpty(t *testing.T) {
	h := NewHashTable(quality9Params(t))
	for _, a := range h.addr {
		require.Equal(t, uint32(addrSentinel), a)
	}
}

func TestHashTable_StoreThenFindsItself(t *testing.T) {
	h := NewHashTable(quality9Params(t))
	mask := uint64(1<<20 - 1)
	data := make([]byte, 1<<20)
	copy(data, []byte("needle!!"))

	h.Store(data, mask, 0)

	key := h.hash(data[0:])
	require.Equal(t, uint32(0), h.addr[key])
}

func TestHashTable_StoreRangeCoversWholeSpan(t *testing.T) {
	h := NewHashTable(quality9Params(t))
	mask := uint64(1<<16 - 1)
	data := make([]byte, 1<<16)
	for i := range data {
		data[i] = byte(i)
	}

	h.StoreRange(data, mask, 0, 100)

	key := h.hash(data[50:])
	require.Equal(t, uint32(50), h.addr[key])
}

func TestHashTable_StitchToPreviousBlock_RequiresBothPreconditions(t *testing.T) {
	h := NewHashTable(quality9Params(t))
	mask := uint64(1<<16 - 1)
	data := make([]byte, 1<<16)
	for i := range data {
		data[i] = byte(i)
	}

	// numBytes < 3: a no-op, addr stays untouched.
	h.StitchToPreviousBlock(data, mask, 2, 10)
	require.Equal(t, uint32(addrSentinel), h.addr[h.hash(data[7:])])

	// prevEnd < 3: also a no-op.
	h.StitchToPreviousBlock(data, mask, 10, 2)
	require.Equal(t, uint32(addrSentinel), h.addr[h.hash(data[7:])])

	// Both satisfied: stores prevEnd-3, prevEnd-2, prevEnd-1.
	h.StitchToPreviousBlock(data, mask, 10, 10)
	require.Equal(t, uint32(7), h.addr[h.hash(data[7:])])
	require.Equal(t, uint32(9), h.addr[h.hash(data[9:])])
}

func TestHashTable_CappedChainsZerosOverflowDelta(t *testing.T) {
	params := quality9Params(t)
	h := NewHashTable(params)
	h.CappedChains = true

	mask := uint64(1<<18 - 1)
	data := make([]byte, 1<<18)
	copy(data, []byte("abcd"))
	copy(data[1<<17:], []byte("abcd"))

	h.Store(data, mask, 0)
	h.Store(data, mask, 1<<17) // same key, far enough that delta overflows uint16

	key := h.hash(data[1<<17:])
	bank := int(key) & (h.numBanks - 1)
	idx := h.head[key]
	require.Equal(t, uint16(0), h.banks[bank][idx].delta)
}
