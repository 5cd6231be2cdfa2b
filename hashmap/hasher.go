package hashmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// StringHasher hashes string-kinded keys with xxhash. It is stable across
// processes, so bucket layouts are reproducible in tests and benchmarks.
type StringHasher[K ~string] struct{}

// Hash returns the 64-bit xxhash of key.
func (StringHasher[K]) Hash(key K) uint64 { return xxhash.Sum64String(string(key)) }

// Integer lists the integer kinds accepted by IntHasher.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntHasher hashes integer keys by their two's-complement bit pattern, so
// negative keys still map to a valid bucket. Consecutive integers land in
// consecutive buckets, which makes collision behaviour easy to predict.
type IntHasher[K Integer] struct{}

// Hash returns key reinterpreted as uint64.
func (IntHasher[K]) Hash(key K) uint64 { return uint64(key) }

// ComparableHasher hashes any comparable key with hash/maphash. The seed is
// chosen once per hasher, so hashes are stable for the lifetime of the value
// but differ between processes.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher returns a ComparableHasher with a fresh random seed.
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: maphash.MakeSeed()}
}

// Hash returns maphash.Comparable(seed, key).
func (h ComparableHasher[K]) Hash(key K) uint64 { return maphash.Comparable(h.seed, key) }
