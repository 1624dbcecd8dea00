package wavl

import "iter"

// ForEach walks entries in key order.
//
// Iteration stops early if fn returns false. The tree must not be modified
// from within fn.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for n := t.min; n != nil; n = n.successor() {
		if !fn(n.key, n.value) {
			return
		}
	}
}

// All returns an iterator over all entries in key order.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return t.ForEach
}

// Keys returns an iterator over all keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.ForEach(func(k K, _ V) bool {
			return yield(k)
		})
	}
}

// Values returns an iterator over all values, ordered by their keys.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		t.ForEach(func(_ K, v V) bool {
			return yield(v)
		})
	}
}
