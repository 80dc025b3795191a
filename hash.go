package bucketmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc func(string) uint64

// DefaultHashFunc is used when no hash function is configured.
// It's stable across processes, so a key always lands in the same slot
// for a given capacity.
func DefaultHashFunc(key string) uint64 {
	return xxhash.Sum64String(key)
}

// MakeSeededHashFunc returns a hash function keyed by a random seed.
// Slot assignment stays fixed for the lifetime of the function, but differs
// between two calls of MakeSeededHashFunc.
func MakeSeededHashFunc() HashFunc {
	seed := maphash.MakeSeed()

	return func(key string) uint64 {
		return maphash.String(seed, key)
	}
}

// slotIndex reduces the hash into [0, numSlots).
func slotIndex(hash uint64, numSlots int) int {
	return int(hash % uint64(numSlots))
}
