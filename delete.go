package wavl

import "fmt"

// Delete removes key from the tree.
//
// It returns the number of rebalancing steps performed. If key is absent,
// Delete returns ErrKeyNotFound and leaves the tree untouched.
//
// An inner node with two children is not unlinked itself: it takes over key
// and value of its successor, and the successor node is unlinked instead.
func (t *Tree[K, V]) Delete(key K) (int, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	n, _ := t.findPosition(key)
	if n == nil {
		tracer().Debugf("wavl delete: key %v not found", key)
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	if n == t.min {
		t.min = n.successor()
	}
	if n == t.max {
		t.max = n.predecessor()
	}
	removed := n
	if n.left != nil && n.right != nil {
		removed = n.right.leftmost()
		n.key, n.value = removed.key, removed.value
		if removed == t.max {
			t.max = n
		}
	}
	// removed has at most one inner child
	child := removed.left
	if child == nil {
		child = removed.right
	}
	p := removed.parent
	t.replaceChild(p, removed, child)
	removed.left, removed.right, removed.parent = nil, nil, nil
	return t.rebalanceDelete(p), nil
}

// rebalanceDelete restores the rank rule bottom-up, starting at x, after
// one of x's subtrees lost a node.
//
// A violation shows up either as a rank difference of 3 or as a leaf of
// rank 1. Demotions may cascade up to the root; a rotation ends the repair.
// Subtree sizes are refreshed all the way up to the root regardless.
func (t *Tree[K, V]) rebalanceDelete(x *node[K, V]) (ops int) {
	balanced := false
	for x != nil {
		x.updateSize()
		if balanced {
			x = x.parent
			continue
		}
		switch {
		case x.isLeaf() && x.rank > 0:
			x.demote()
			ops++
		case x.leftDiff() == 3:
			if x.rightDiff() == 2 {
				x.demote()
				ops++
				break
			}
			y := x.right
			switch {
			case y.leftDiff() == 2 && y.rightDiff() == 2:
				x.demote()
				y.demote()
				ops += 2
			case y.rightDiff() == 1:
				x = t.rotateLeft(x)
				y.promote()
				old := y.left
				old.demote()
				ops += 3
				if old.isLeaf() && old.rank > 0 {
					old.demote()
					ops++
				}
				balanced = true
			default:
				z := y.left
				t.rotateRight(y)
				x = t.rotateLeft(x)
				z.rank += 2
				z.left.rank -= 2
				y.demote()
				ops += 7
				balanced = true
			}
		case x.rightDiff() == 3:
			if x.leftDiff() == 2 {
				x.demote()
				ops++
				break
			}
			y := x.left
			switch {
			case y.leftDiff() == 2 && y.rightDiff() == 2:
				x.demote()
				y.demote()
				ops += 2
			case y.leftDiff() == 1:
				x = t.rotateRight(x)
				y.promote()
				old := y.right
				old.demote()
				ops += 3
				if old.isLeaf() && old.rank > 0 {
					old.demote()
					ops++
				}
				balanced = true
			default:
				z := y.right
				t.rotateLeft(y)
				x = t.rotateRight(x)
				z.rank += 2
				z.right.rank -= 2
				y.demote()
				ops += 7
				balanced = true
			}
		default:
			balanced = true
		}
		x = x.parent
	}
	return ops
}
