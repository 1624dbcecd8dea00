package wavl

import "fmt"

// Cursor tracks a position in a tree.
//
// A cursor is positioned at an entry or invalid. Moving past either end of
// the tree invalidates it. Any mutation of the tree invalidates the cursor as
// well; using it afterwards yields unspecified results.
type Cursor[K, V any] struct {
	tree *Tree[K, V]
	at   *node[K, V]
}

// NewCursor creates an invalid cursor for a tree. Position it with First,
// Last or Seek.
func NewCursor[K, V any](tree *Tree[K, V]) (*Cursor[K, V], error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: tree is nil", ErrInvalidConfig)
	}
	return &Cursor[K, V]{tree: tree}, nil
}

// Valid reports whether the cursor is positioned at an entry.
func (c *Cursor[K, V]) Valid() bool {
	return c.at != nil
}

// Key returns the key at the cursor position. The cursor must be valid.
func (c *Cursor[K, V]) Key() K {
	assert(c.at != nil, "cursor: Key on invalid cursor")
	return c.at.key
}

// Value returns the value at the cursor position. The cursor must be valid.
func (c *Cursor[K, V]) Value() V {
	assert(c.at != nil, "cursor: Value on invalid cursor")
	return c.at.value
}

// First moves to the smallest key. It returns false for an empty tree.
func (c *Cursor[K, V]) First() bool {
	c.at = c.tree.min
	return c.at != nil
}

// Last moves to the largest key. It returns false for an empty tree.
func (c *Cursor[K, V]) Last() bool {
	c.at = c.tree.max
	return c.at != nil
}

// Seek moves to the smallest key greater than or equal to key. It returns
// false if no such key exists.
func (c *Cursor[K, V]) Seek(key K) bool {
	c.at = nil
	for n := c.tree.root; n != nil; {
		switch cmp := c.tree.cfg.Compare(key, n.key); {
		case cmp == 0:
			c.at = n
			return true
		case cmp < 0:
			c.at = n
			n = n.left
		default:
			n = n.right
		}
	}
	return c.at != nil
}

// Next moves to the next larger key. It returns false, invalidating the
// cursor, if there is none.
func (c *Cursor[K, V]) Next() bool {
	if c.at != nil {
		c.at = c.at.successor()
	}
	return c.at != nil
}

// Prev moves to the next smaller key. It returns false, invalidating the
// cursor, if there is none.
func (c *Cursor[K, V]) Prev() bool {
	if c.at != nil {
		c.at = c.at.predecessor()
	}
	return c.at != nil
}
