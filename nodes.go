package wavl

// node is an inner node of the tree.
//
// The external node is the nil *node. All accessors below accept a nil
// receiver, so rank and size arithmetic never has to special-case a missing
// child: the external node has rank -1 and size 0.
//
// A node owns its two children. parent is a back-reference only and must
// always agree with the owning side.
type node[K, V any] struct {
	key    K
	value  V
	rank   int
	size   int
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// newLeaf creates an inner node with two external children.
func newLeaf[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, rank: 0, size: 1}
}

func (n *node[K, V]) getRank() int {
	if n == nil {
		return -1
	}
	return n.rank
}

func (n *node[K, V]) getSize() int {
	if n == nil {
		return 0
	}
	return n.size
}

// isLeaf reports whether n is an inner node with two external children.
func (n *node[K, V]) isLeaf() bool {
	return n != nil && n.left == nil && n.right == nil
}

func (n *node[K, V]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

func (n *node[K, V]) leftDiff() int {
	return n.rank - n.left.getRank()
}

func (n *node[K, V]) rightDiff() int {
	return n.rank - n.right.getRank()
}

func (n *node[K, V]) promote() { n.rank++ }
func (n *node[K, V]) demote()  { n.rank-- }

// updateSize recomputes the subtree size from the children.
func (n *node[K, V]) updateSize() {
	n.size = 1 + n.left.getSize() + n.right.getSize()
}

func (n *node[K, V]) setLeft(c *node[K, V]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *node[K, V]) setRight(c *node[K, V]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// leftmost returns the node with the smallest key in the subtree of n.
func (n *node[K, V]) leftmost() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// rightmost returns the node with the largest key in the subtree of n.
func (n *node[K, V]) rightmost() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the in-order successor of n, or nil if n is the maximum.
func (n *node[K, V]) successor() *node[K, V] {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.parent != nil && !n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}

// predecessor returns the in-order predecessor of n, or nil if n is the minimum.
func (n *node[K, V]) predecessor() *node[K, V] {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.parent != nil && n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}
