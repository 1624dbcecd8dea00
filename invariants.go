package wavl

import "fmt"

// Check validates the structural tree invariants:
//
//   - keys are strictly increasing in-order,
//   - every rank difference is 1 or 2, and leaves have rank 0,
//   - subtree sizes add up,
//   - parent links agree with child links,
//   - the cached minimum and maximum are the first and last nodes.
//
// It returns nil for a sound tree and otherwise the first violation found,
// wrapping ErrCorruptTree. Check takes O(n) and is meant for tests and
// debugging.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	err := t.check()
	if err != nil {
		tracer().Errorf("wavl check: %v", err)
	}
	return err
}

func (t *Tree[K, V]) check() error {
	if t.root == nil {
		if t.min != nil || t.max != nil {
			return fmt.Errorf("%w: empty tree caches min/max", ErrCorruptTree)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorruptTree)
	}
	if _, err := t.checkNode(t.root); err != nil {
		return err
	}
	var prev *node[K, V]
	for n := t.root.leftmost(); n != nil; n = n.successor() {
		if prev != nil && t.cfg.Compare(prev.key, n.key) >= 0 {
			return fmt.Errorf("%w: keys out of order (%v before %v)", ErrCorruptTree, prev.key, n.key)
		}
		prev = n
	}
	if t.min != t.root.leftmost() {
		return fmt.Errorf("%w: cached minimum is stale", ErrCorruptTree)
	}
	if t.max != t.root.rightmost() {
		return fmt.Errorf("%w: cached maximum is stale", ErrCorruptTree)
	}
	return nil
}

// checkNode checks ranks, sizes and parent links of the subtree of n and
// returns its size.
func (t *Tree[K, V]) checkNode(n *node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	for _, c := range []*node[K, V]{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, fmt.Errorf("%w: broken parent link below %v", ErrCorruptTree, n.key)
		}
		if d := n.rank - c.getRank(); d < 1 || d > 2 {
			return 0, fmt.Errorf("%w: rank difference %d at %v", ErrCorruptTree, d, n.key)
		}
	}
	if n.isLeaf() && n.rank != 0 {
		return 0, fmt.Errorf("%w: leaf %v has rank %d", ErrCorruptTree, n.key, n.rank)
	}
	ls, err := t.checkNode(n.left)
	if err != nil {
		return 0, err
	}
	rs, err := t.checkNode(n.right)
	if err != nil {
		return 0, err
	}
	if n.size != ls+rs+1 {
		return 0, fmt.Errorf("%w: size %d at %v, expected %d", ErrCorruptTree, n.size, n.key, ls+rs+1)
	}
	return n.size, nil
}
