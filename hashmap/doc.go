// Package hashmap provides ChainedMap, a generic associative container with
// separate chaining and eager load-factor driven growth.
//
// Overview:
//
//   - Keys are any comparable type; equality is Go's ==.
//   - Hashing is a caller-supplied capability (Hasher[K]) rather than a
//     universal function. StringHasher, IntHasher and ComparableHasher cover
//     the common cases; HasherFunc adapts a plain function.
//   - index = hash(key) mod capacity. Hashes are uint64, so indices are never
//     negative.
//   - Before an insert that would make (size+1)/capacity reach 0.8 the bucket
//     array doubles and every entry is rehashed against the new capacity.
//
// Semantics:
//
//   - Put rejects duplicates with ErrDuplicateKey; it never overwrites.
//   - Put rejects nil keys with ErrNullKey. A key is nil if it is a nil
//     interface value or implements Nilable and reports IsNil() == true.
//   - Get/Remove report absent keys with ErrKeyNotFound; ContainsKey simply
//     returns false.
//   - Clear empties all chains but keeps the capacity.
//
// Thread safety:
//
//   - ChainedMap is not synchronized. Resizing happens inside Put and is only
//     observable through Capacity().
//
// Example:
//
//	m := hashmap.New[string, int](hashmap.StringHasher[string]{})
//	_ = m.Put("A", 1)
//	v, err := m.Get("A") // 1, nil
package hashmap
