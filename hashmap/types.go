// Package hashmap defines the sentinel errors, hashing capability and
// construction options for ChainedMap.
package hashmap

import "errors"

// Sentinel errors returned by ChainedMap operations.
var (
	// ErrNullKey indicates that a nil key was passed to Put.
	ErrNullKey = errors.New("hashmap: key is nil")

	// ErrDuplicateKey indicates that Put was called for a key already present.
	ErrDuplicateKey = errors.New("hashmap: duplicate key")

	// ErrKeyNotFound indicates that Get or Remove targeted an absent key.
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrNilHasher indicates that New was called without a Hasher.
	ErrNilHasher = errors.New("hashmap: hasher is nil")
)

const (
	// DefaultCapacity is the bucket count used when WithCapacity is not given.
	DefaultCapacity = 64

	// LoadFactorThreshold is the ratio of entries to buckets at which the
	// table doubles. Growth happens before the insert that would reach it.
	LoadFactorThreshold = 0.8
)

// Hasher supplies the hash half of the key capability; equality is Go's ==
// on comparable keys. Equal keys must produce equal hashes.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc[K comparable] func(key K) uint64

// Hash calls f(key).
func (f HasherFunc[K]) Hash(key K) uint64 { return f(key) }

// Nilable is implemented by pointer-backed key types that can report a nil
// receiver without reflection. Such keys are rejected by Put when IsNil is true.
type Nilable interface {
	IsNil() bool
}

// Option configures a ChainedMap before its first bucket array is allocated.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity sets the initial number of buckets. Values below 1 are
// ignored and DefaultCapacity is used instead.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.capacity = n
		}
	}
}
