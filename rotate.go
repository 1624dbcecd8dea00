package wavl

// replaceChild puts c in the place of old, which is a child of p. If p is nil,
// old is the root and c becomes the new root. c's parent link is updated,
// old's links are left alone.
func (t *Tree[K, V]) replaceChild(p, old, c *node[K, V]) {
	switch {
	case p == nil:
		t.root = c
	case p.left == old:
		p.left = c
	default:
		assert(p.right == old, "replaceChild: old is not a child of p")
		p.right = c
	}
	if c != nil {
		c.parent = p
	}
}

// rotateLeft lifts the right child of x above x:
//
//	    x                 y
//	   / \               / \
//	  a   y     =>      x   c
//	     / \           / \
//	    b   c         a   b
//
// Sizes of x and y are recomputed, ranks are left to the caller.
// It returns y, the new subtree root.
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) *node[K, V] {
	y := x.right
	assert(y != nil, "rotateLeft: external right child")
	t.replaceChild(x.parent, x, y)
	x.setRight(y.left)
	y.setLeft(x)
	x.updateSize()
	y.updateSize()
	return y
}

// rotateRight lifts the left child of x above x:
//
//	      x             y
//	     / \           / \
//	    y   c    =>   a   x
//	   / \               / \
//	  a   b             b   c
//
// Sizes of x and y are recomputed, ranks are left to the caller.
// It returns y, the new subtree root.
func (t *Tree[K, V]) rotateRight(x *node[K, V]) *node[K, V] {
	y := x.left
	assert(y != nil, "rotateRight: external left child")
	t.replaceChild(x.parent, x, y)
	x.setLeft(y.right)
	y.setRight(x)
	x.updateSize()
	y.updateSize()
	return y
}
