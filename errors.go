package wavl

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration or a nil tree.
	ErrInvalidConfig = errors.New("wavl: invalid configuration")
	// ErrDuplicateKey signals an insert of a key which is already present.
	ErrDuplicateKey = errors.New("wavl: duplicate key")
	// ErrKeyNotFound signals a lookup or delete of an absent key.
	ErrKeyNotFound = errors.New("wavl: key not found")
	// ErrEmptyTree signals a query which needs at least one entry.
	ErrEmptyTree = errors.New("wavl: empty tree")
	// ErrIndexOutOfBounds signals an invalid order-statistics rank.
	ErrIndexOutOfBounds = errors.New("wavl: index out of bounds")
	// ErrCorruptTree signals a violated structural invariant, see Check.
	ErrCorruptTree = errors.New("wavl: corrupt tree")
)
