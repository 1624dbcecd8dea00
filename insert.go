package wavl

import "fmt"

// Insert adds key with value to the tree.
//
// It returns the number of rebalancing steps performed. If key is already
// present, Insert returns ErrDuplicateKey and leaves the tree untouched.
func (t *Tree[K, V]) Insert(key K, value V) (int, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	n, parent := t.findPosition(key)
	if n != nil {
		tracer().Debugf("wavl insert: key %v already present", key)
		return 0, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	leaf := newLeaf(key, value)
	if parent == nil {
		t.root, t.min, t.max = leaf, leaf, leaf
		return 0, nil
	}
	if t.cfg.Compare(key, parent.key) < 0 {
		parent.setLeft(leaf)
		if parent == t.min {
			t.min = leaf
		}
	} else {
		parent.setRight(leaf)
		if parent == t.max {
			t.max = leaf
		}
	}
	return t.rebalanceInsert(parent), nil
}

// rebalanceInsert restores the rank rule bottom-up, starting at x, after x
// gained a child with rank difference 0 (or possibly none at all).
//
// Promotions may cascade upwards; a rotation ends the repair. Subtree sizes
// are refreshed all the way up to the root regardless.
//
// Besides the shapes insertion produces, the walker handles a zero-difference
// child with rank differences 1,1. This shape is only produced by join, where
// the connector node is linked below the spine of the taller tree.
func (t *Tree[K, V]) rebalanceInsert(x *node[K, V]) (ops int) {
	balanced := false
	for x != nil {
		x.updateSize()
		if balanced {
			x = x.parent
			continue
		}
		switch {
		case x.leftDiff() == 0:
			if x.rightDiff() == 1 {
				x.promote()
				ops++
				break
			}
			y := x.left
			switch {
			case y.leftDiff() == 1 && y.rightDiff() == 1:
				x = t.rotateRight(x)
				y.promote()
				ops += 2
			case y.rightDiff() == 2:
				x = t.rotateRight(x)
				x.right.demote()
				ops += 2
				balanced = true
			default:
				z := y.right
				t.rotateLeft(y)
				x = t.rotateRight(x)
				z.promote()
				y.demote()
				z.right.demote()
				ops += 5
				balanced = true
			}
		case x.rightDiff() == 0:
			if x.leftDiff() == 1 {
				x.promote()
				ops++
				break
			}
			y := x.right
			switch {
			case y.leftDiff() == 1 && y.rightDiff() == 1:
				x = t.rotateLeft(x)
				y.promote()
				ops += 2
			case y.leftDiff() == 2:
				x = t.rotateLeft(x)
				x.left.demote()
				ops += 2
				balanced = true
			default:
				z := y.left
				t.rotateRight(y)
				x = t.rotateLeft(x)
				z.promote()
				y.demote()
				z.left.demote()
				ops += 5
				balanced = true
			}
		default:
			balanced = true
		}
		x = x.parent
	}
	return ops
}
