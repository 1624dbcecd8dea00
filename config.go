package wavl

import (
	"cmp"
	"fmt"
)

// Config configures a WAVL tree.
type Config[K any] struct {
	// Compare orders keys. It must return a negative number if a < b,
	// zero if a == b and a positive number if a > b.
	Compare func(a, b K) int
}

// OrderedConfig returns a configuration ordering keys with cmp.Compare.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
