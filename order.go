package wavl

import "fmt"

// Min returns the entry with the smallest key.
// Time: O(1)
func (t *Tree[K, V]) Min() (K, V, error) {
	if t.IsEmpty() {
		var k K
		var v V
		return k, v, ErrEmptyTree
	}
	return t.min.key, t.min.value, nil
}

// Max returns the entry with the largest key.
// Time: O(1)
func (t *Tree[K, V]) Max() (K, V, error) {
	if t.IsEmpty() {
		var k K
		var v V
		return k, v, ErrEmptyTree
	}
	return t.max.key, t.max.value, nil
}

// Select returns the entry with the i-th smallest key, counting from 1.
// Select(1) is the minimum, Select(t.Len()) the maximum.
//
// Select descends along subtree sizes.
// Time: O(log n)
func (t *Tree[K, V]) Select(i int) (K, V, error) {
	var k K
	var v V
	if t.IsEmpty() {
		return k, v, ErrEmptyTree
	}
	if i < 1 || i > t.Len() {
		return k, v, fmt.Errorf("%w: rank %d not in 1…%d", ErrIndexOutOfBounds, i, t.Len())
	}
	n := t.root
	for {
		l := n.left.getSize()
		switch {
		case i <= l:
			n = n.left
		case i == l+1:
			return n.key, n.value, nil
		default:
			i -= l + 1
			n = n.right
		}
	}
}

// RankOf returns the 1-based position of key in the in-order sequence of
// keys. It is the inverse of Select.
// Time: O(log n)
func (t *Tree[K, V]) RankOf(key K) (int, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	r := 0
	for n := t.root; n != nil; {
		c := t.cfg.Compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c == 0:
			return r + n.left.getSize() + 1, nil
		default:
			r += n.left.getSize() + 1
			n = n.right
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// KeysInOrder returns all keys in ascending order, or an empty slice for an
// empty tree.
func (t *Tree[K, V]) KeysInOrder() []K {
	keys := make([]K, 0, t.Len())
	for k := range t.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// ValuesInOrder returns all values, ordered by their keys. The i-th value
// belongs to the i-th key of KeysInOrder.
func (t *Tree[K, V]) ValuesInOrder() []V {
	values := make([]V, 0, t.Len())
	for v := range t.Values() {
		values = append(values, v)
	}
	return values
}
