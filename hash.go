package smolvec

import (
	"encoding/binary"
	"hash/maphash"
)

// Hash writes v into h: the length first, then every element in order.
// Containers that are Equal produce the same hash for the same seed.
func Hash[T comparable](h *maphash.Hash, v *SmolVec[T]) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v.len))
	_, _ = h.Write(buf[:])
	for _, value := range v.Slice() {
		maphash.WriteComparable(h, value)
	}
}

// Sum64 returns the hash of v under seed.
func Sum64[T comparable](seed maphash.Seed, v *SmolVec[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	Hash(&h, v)
	return h.Sum64()
}
