package wavl

// Split partitions t around key, which has to be present (otherwise Split
// panics).
//
// lower receives all entries with keys smaller than key, upper all entries
// with keys greater than key. The entry for key itself is dropped. t is left
// empty.
//
// Split walks from the node holding key up to the root. Every ancestor,
// together with the subtree hanging off the path on its far side, is joined
// onto the growing lower or upper tree, re-using the ancestor node as
// connector. Joins happen bottom-up, so the rank differences of consecutive
// joins telescope and the whole split takes O(log n).
func (t *Tree[K, V]) Split(key K) (lower, upper *Tree[K, V]) {
	assert(t != nil, "Split: nil tree")
	n, _ := t.findPosition(key)
	assert(n != nil, "Split: key not present")
	lower, upper = t.empty(), t.empty()
	if n != t.min {
		lower.min, lower.max = t.min, n.predecessor()
	}
	if n != t.max {
		upper.min, upper.max = n.successor(), t.max
	}
	lower.root, upper.root = n.left, n.right
	if lower.root != nil {
		lower.root.parent = nil
	}
	if upper.root != nil {
		upper.root.parent = nil
	}
	joins, steps := 0, 0
	for cur, p := n, n.parent; p != nil; joins++ {
		next := p.parent
		if p.right == cur {
			steps += lower.link(p.left, p, lower.root)
		} else {
			steps += upper.link(upper.root, p, p.right)
		}
		cur, p = p, next
	}
	n.left, n.right, n.parent = nil, nil, nil
	tracer().Debugf("wavl split at %v: %d joins, %d steps, sizes %d / %d", key, joins, steps, lower.Len(), upper.Len())
	t.Clear()
	return lower, upper
}
