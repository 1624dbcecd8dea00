/*
Package wavl implements an ordered key/value index on top of a weak AVL
(rank-balanced) binary search tree.

The tree is meant to be embedded as the in-memory ordered-index primitive of a
larger storage or indexing engine. It offers logarithmic search, insertion and
deletion, order statistics (select by rank, rank of a key), and the structural
operations split and join.

Balance is driven by ranks, not heights. For every inner node the rank
difference to each child is 1 or 2, and leaves have rank 0. Missing children
are represented by nil, which has rank -1 and size 0. Deletions may leave
inner nodes with rank difference 2 to both children; Check accepts them.
Trees built by insertions only never contain such nodes. Insertion repairs the
rank rule with O(1) amortized rotations, deletion with at most O(log n)
demotions.

	Operation     |  Cost
	--------------+------------------------
	Search        |  O(log n)
	Insert        |  O(log n)
	Delete        |  O(log n)
	Min, Max      |  O(1)
	Select        |  O(log n)
	Join          |  O(|rank(T1)-rank(T2)|+1)
	Split         |  O(log n)

Insert and Delete report the number of rebalancing steps they needed. Every
promotion, every demotion and every single rotation counts as one step.

A Tree is not safe for concurrent use. Hosts sharing a tree between
goroutines have to guard it with a lock of their own. Join and Split take
ownership of the trees handed to them: a tree passed to Join is left empty, a
tree split by Split is left empty.

Tracing goes to the schuko tracer with key 'wavl'.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package wavl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wavl'
func tracer() tracing.Trace {
	return tracing.Select("wavl")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
