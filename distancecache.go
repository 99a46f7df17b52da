// SPDX-License-Identifier: MIT

package brolz

// numLastDistancesToCheck bounds how many last-distance probes
// FindLongestMatch tries before moving on to the hash chain.
const numLastDistancesToCheck = 16

// distanceCacheIndex and distanceCacheOffset implement a fixed probe
// pattern: 4 base indices plus 12 small perturbations of cache[0] and
// cache[1]. For probe i, the candidate distance is
// cache[distanceCacheIndex[i]] + distanceCacheOffset[i].
var distanceCacheIndex = [numLastDistancesToCheck]int{
	0, 1, 2, 3,
	0, 0, 0, 0,
	1, 1, 1, 1,
	0, 0, 0, 0,
}

var distanceCacheOffset = [numLastDistancesToCheck]int{
	0, 0, 0, 0,
	1, -1, 2, -2,
	1, -1, 2, -2,
	3, -3, 3, -3,
}

// DistanceCache is the 4-slot ring of most-recently-accepted distances
// (newest first), plus the derived probe values used by the matcher.
type DistanceCache struct {
	dist  [4]int64
	probe [numLastDistancesToCheck]int64
}

// NewDistanceCache returns a cache seeded with the brotli convention of
// small initial distances (1, 4, 11, 4) so the very first block still has
// plausible last-distance candidates to probe.
func NewDistanceCache() *DistanceCache {
	c := &DistanceCache{dist: [4]int64{1, 4, 11, 4}}
	c.Prepare()
	return c
}

// Seed replaces the four carried distances, e.g. when resuming a stream
// from a caller-supplied cache.
func (c *DistanceCache) Seed(d0, d1, d2, d3 int64) {
	c.dist = [4]int64{d0, d1, d2, d3}
	c.Prepare()
}

// Prepare recomputes the 16 probe distances from the current 4-slot ring.
// Probes are normalized once per block rather than recomputed at every
// position.
func (c *DistanceCache) Prepare() {
	for i := range c.probe {
		c.probe[i] = c.dist[distanceCacheIndex[i]] + int64(distanceCacheOffset[i])
	}
}

// Probe returns the i-th candidate distance (0 <= i < numLastDistancesToCheck).
func (c *DistanceCache) Probe(i int) int64 { return c.probe[i] }

// Accepted updates the ring after a hash-chain (non-last-distance) match is
// emitted, shifting older entries back.
func (c *DistanceCache) Accepted(d int64) {
	c.dist[3] = c.dist[2]
	c.dist[2] = c.dist[1]
	c.dist[1] = c.dist[0]
	c.dist[0] = d
	c.Prepare()
}

// IsCacheDistance reports whether d matches one of the 16 probed
// distances (the four raw cache slots plus their perturbations), used to
// decide whether Accepted should rotate the ring: a match found via any
// cache probe, perturbed or not, leaves the ring untouched.
func (c *DistanceCache) IsCacheDistance(d int64) bool {
	for _, p := range c.probe {
		if d == p {
			return true
		}
	}
	return false
}
