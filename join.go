package wavl

import "fmt"

// Join merges other and the connecting entry (key, value) into t.
//
// All keys of one of the two trees have to be smaller than key, and all keys
// of the other tree greater than key. Either tree may be empty. Violating this
// precondition panics, as does joining a tree with itself. Both trees are
// expected to use the same ordering.
//
// t takes over all entries of other, and other is left empty.
// Join returns |rank(t) - rank(other)| + 1, where an empty tree has rank -1.
// This bounds the number of spine steps and rebalancing steps up to the
// linking point.
func (t *Tree[K, V]) Join(key K, value V, other *Tree[K, V]) (int, error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	cost, _ := t.join(key, value, other)
	return cost, nil
}

// join does the work of Join. Besides the rank-gap cost it returns the number
// of steps link actually performed, spine descent plus rebalancing.
func (t *Tree[K, V]) join(key K, value V, other *Tree[K, V]) (cost, work int) {
	assert(other != nil, "Join: other tree is nil")
	assert(other != t, "Join: cannot join a tree with itself")
	lo, hi := t.joinSides(key, other)
	cost = lo.Rank() - hi.Rank()
	if cost < 0 {
		cost = -cost
	}
	cost++
	mid := newLeaf(key, value)
	minNode, maxNode := lo.min, hi.max
	if minNode == nil {
		minNode = mid
	}
	if maxNode == nil {
		maxNode = mid
	}
	l, r := lo.root, hi.root
	other.Clear()
	t.root = nil
	work = t.link(l, mid, r)
	t.min, t.max = minNode, maxNode
	tracer().Debugf("wavl join: connector %v, cost %d, %d steps", key, cost, work)
	return cost, work
}

// joinSides decides which of t and other holds the smaller keys with respect
// to key, asserting that key separates the two trees.
func (t *Tree[K, V]) joinSides(key K, other *Tree[K, V]) (lo, hi *Tree[K, V]) {
	below := func(x *Tree[K, V]) bool { // all keys of x < key
		return x.IsEmpty() || t.cfg.Compare(x.max.key, key) < 0
	}
	above := func(x *Tree[K, V]) bool { // all keys of x > key
		return x.IsEmpty() || t.cfg.Compare(x.min.key, key) > 0
	}
	switch {
	case below(t) && above(other):
		return t, other
	case above(t) && below(other):
		return other, t
	}
	panic(fmt.Sprintf("Join: connector %v does not separate the trees", key))
}

// link makes x the connector between subtrees l and r, which must satisfy
// keys(l) < x.key < keys(r), and installs the result as root of t.
// Any former links of x, l and r are discarded. x is re-initialized, so link
// may re-use an inner node of a dismantled tree as connector.
//
// If the ranks of l and r differ by at most 1, x simply becomes the new root.
// Otherwise x is linked into the inner spine of the taller subtree, at the
// first node with rank no greater than the shorter subtree's rank, and the
// rank rule is repaired upwards as after an insertion.
//
// link returns the number of spine steps taken plus the rebalancing steps
// needed afterwards. Both are bounded by the rank gap of l and r.
func (t *Tree[K, V]) link(l, x, r *node[K, V]) (steps int) {
	if l != nil {
		l.parent = nil
	}
	if r != nil {
		r.parent = nil
	}
	x.parent = nil
	rl, rr := l.getRank(), r.getRank()
	switch {
	case rl-rr <= 1 && rr-rl <= 1:
		x.setLeft(l)
		x.setRight(r)
		x.rank = max(rl, rr) + 1
		x.updateSize()
		t.root = x
	case rl > rr:
		t.root = l
		var p *node[K, V]
		c := l
		for c.getRank() > rr {
			p, c = c, c.right
			steps++
		}
		x.setLeft(c)
		x.setRight(r)
		x.rank = rr + 1
		x.updateSize()
		p.setRight(x)
		steps += t.rebalanceInsert(p)
	default:
		t.root = r
		var p *node[K, V]
		c := r
		for c.getRank() > rl {
			p, c = c, c.left
			steps++
		}
		x.setLeft(l)
		x.setRight(c)
		x.rank = rl + 1
		x.updateSize()
		p.setLeft(x)
		steps += t.rebalanceInsert(p)
	}
	return steps
}
