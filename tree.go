package wavl

import (
	"cmp"
	"fmt"
)

// Tree is an ordered map from keys K to values V, kept as a weak AVL tree.
//
// A Tree has to be created by New or NewOrdered. It caches its minimum and
// maximum nodes, which are nil if and only if the tree is empty.
type Tree[K, V any] struct {
	cfg  Config[K]
	root *node[K, V]
	min  *node[K, V]
	max  *node[K, V]
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree for keys of an ordered type, compared
// with cmp.Compare.
func NewOrdered[K cmp.Ordered, V any]() *Tree[K, V] {
	t, err := New[K, V](OrderedConfig[K]())
	assert(err == nil, "NewOrdered: default configuration rejected")
	return t
}

// Config returns a copy of the tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// empty returns a new empty tree sharing t's configuration.
func (t *Tree[K, V]) empty() *Tree[K, V] {
	return &Tree[K, V]{cfg: t.cfg}
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.root.getSize()
}

// Rank returns the rank of the root, or -1 for an empty tree.
func (t *Tree[K, V]) Rank() int {
	if t == nil {
		return -1
	}
	return t.root.getRank()
}

// Clear removes all entries.
func (t *Tree[K, V]) Clear() {
	t.root, t.min, t.max = nil, nil, nil
}

// findPosition looks up key.
// It returns the node holding key, or nil if key is absent. parent is the
// last inner node visited, i.e. the node a new node for key has to be
// attached to. parent is nil if the tree is empty or key is at the root.
func (t *Tree[K, V]) findPosition(key K) (n, parent *node[K, V]) {
	n = t.root
	for n != nil {
		c := t.cfg.Compare(key, n.key)
		if c == 0 {
			return n, parent
		}
		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil, parent
}

// Search returns the value stored for key.
func (t *Tree[K, V]) Search(key K) (V, error) {
	var zero V
	if t == nil {
		return zero, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	n, _ := t.findPosition(key)
	if n == nil {
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return n.value, nil
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	if t == nil {
		return false
	}
	n, _ := t.findPosition(key)
	return n != nil
}
