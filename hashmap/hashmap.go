// Package hashmap implements ChainedMap, a generic key→value table that
// resolves collisions by per-bucket chaining and doubles its bucket array
// once the load factor reaches LoadFactorThreshold.
//
// Complexity:
//
//   - Put / Get / ContainsKey / Remove: O(1) amortized, O(n) worst case when
//     every key lands in one chain.
//   - Resize: O(n), triggered at most log2(n/initialCapacity) times.
//   - Space: O(n + capacity).
package hashmap

import "fmt"

// entry is one key/value pair owned by a bucket chain.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// ChainedMap maps keys to values using separate chaining.
//
// A ChainedMap is not safe for concurrent use; callers that share one across
// goroutines must synchronize externally.
type ChainedMap[K comparable, V any] struct {
	hasher  Hasher[K]
	buckets [][]entry[K, V]
	size    int
}

// New returns an empty ChainedMap that hashes keys with hasher.
// It panics with ErrNilHasher if hasher is nil, since no operation could succeed.
func New[K comparable, V any](hasher Hasher[K], opts ...Option) *ChainedMap[K, V] {
	if hasher == nil {
		panic(ErrNilHasher.Error())
	}
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}

	return &ChainedMap[K, V]{
		hasher:  hasher,
		buckets: make([][]entry[K, V], o.capacity),
	}
}

// Put inserts key→value.
//
// Returns ErrNullKey if key is nil and ErrDuplicateKey if an equal key is
// already stored; the existing value is left untouched in that case.
// If (Size()+1)/Capacity() would reach LoadFactorThreshold the table is grown
// before the new entry is appended.
func (m *ChainedMap[K, V]) Put(key K, value V) error {
	if isNilKey(key) {
		return ErrNullKey
	}
	if m.ContainsKey(key) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}

	if float64(m.size+1)/float64(len(m.buckets)) >= LoadFactorThreshold {
		m.grow()
	}

	i := m.index(key)
	m.buckets[i] = append(m.buckets[i], entry[K, V]{key: key, value: value})
	m.size++

	return nil
}

// Get returns the value stored for key, or ErrKeyNotFound.
func (m *ChainedMap[K, V]) Get(key K) (V, error) {
	var zero V
	if isNilKey(key) {
		return zero, ErrKeyNotFound
	}
	for _, e := range m.buckets[m.index(key)] {
		if e.key == key {
			return e.value, nil
		}
	}

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// ContainsKey reports whether key is stored. A nil key is never contained.
func (m *ChainedMap[K, V]) ContainsKey(key K) bool {
	if isNilKey(key) {
		return false
	}
	for _, e := range m.buckets[m.index(key)] {
		if e.key == key {
			return true
		}
	}

	return false
}

// Remove deletes key and returns the value it mapped to, or ErrKeyNotFound.
func (m *ChainedMap[K, V]) Remove(key K) (V, error) {
	var zero V
	if isNilKey(key) {
		return zero, ErrKeyNotFound
	}
	i := m.index(key)
	chain := m.buckets[i]
	for j, e := range chain {
		if e.key != key {
			continue
		}
		// Order within a chain carries no meaning, so swap-delete.
		last := len(chain) - 1
		chain[j] = chain[last]
		chain[last] = entry[K, V]{}
		m.buckets[i] = chain[:last]
		m.size--

		return e.value, nil
	}

	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Clear removes every entry. Capacity is unchanged.
func (m *ChainedMap[K, V]) Clear() {
	for i := range m.buckets {
		clear(m.buckets[i])
		m.buckets[i] = m.buckets[i][:0]
	}
	m.size = 0
}

// Size returns the number of stored entries.
func (m *ChainedMap[K, V]) Size() int { return m.size }

// Capacity returns the current number of buckets.
func (m *ChainedMap[K, V]) Capacity() int { return len(m.buckets) }

// LoadFactor returns Size()/Capacity().
func (m *ChainedMap[K, V]) LoadFactor() float64 {
	return float64(m.size) / float64(len(m.buckets))
}

// Keys returns every stored key in bucket order. The order is unspecified and
// changes after a resize.
func (m *ChainedMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, chain := range m.buckets {
		for _, e := range chain {
			keys = append(keys, e.key)
		}
	}

	return keys
}

// Range calls fn for each entry in bucket order until fn returns false.
// fn must not mutate the map.
func (m *ChainedMap[K, V]) Range(fn func(key K, value V) bool) {
	for _, chain := range m.buckets {
		for _, e := range chain {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// index maps key to a bucket for the current capacity.
func (m *ChainedMap[K, V]) index(key K) int {
	return int(m.hasher.Hash(key) % uint64(len(m.buckets)))
}

// grow doubles the bucket array and rehashes every entry against the new
// capacity. size is recounted from the rehash rather than carried over.
func (m *ChainedMap[K, V]) grow() {
	old := m.buckets
	m.buckets = make([][]entry[K, V], 2*len(old))
	m.size = 0
	for _, chain := range old {
		for _, e := range chain {
			i := m.index(e.key)
			m.buckets[i] = append(m.buckets[i], e)
			m.size++
		}
	}
}

// isNilKey reports whether key is a nil interface value or a Nilable whose
// IsNil reports true.
func isNilKey[K comparable](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}
	if n, ok := v.(Nilable); ok {
		return n.IsNil()
	}

	return false
}
