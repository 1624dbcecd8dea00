package wavl

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()

	tree, _ := buildTree(t, 50, 20, 80, 10, 30, 70, 90, 25, 75)
	keys := tree.KeysInOrder()
	for i := 1; i <= tree.Len(); i++ {
		k, v, err := tree.Select(i)
		if err != nil {
			t.Fatalf("select %d failed: %v", i, err)
		}
		if k != keys[i-1] || v != val(keys[i-1]) {
			t.Errorf("select %d = %d/%q, expected %d", i, k, v, keys[i-1])
		}
	}
	for _, i := range []int{0, -1, tree.Len() + 1} {
		if _, _, err := tree.Select(i); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("select %d: expected ErrIndexOutOfBounds, got %v", i, err)
		}
	}
	empty := NewOrdered[int, string]()
	if _, _, err := empty.Select(1); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
}

func TestRankOfInvertsSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()

	tree, _ := buildTree(t, 9, 3, 7, 1, 5, 11, 13, 2)
	for i := 1; i <= tree.Len(); i++ {
		k, _, _ := tree.Select(i)
		r, err := tree.RankOf(k)
		if err != nil || r != i {
			t.Errorf("rank of %d = %d (%v), expected %d", k, r, err, i)
		}
	}
	if _, err := tree.RankOf(4); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestMinMaxEmpty(t *testing.T) {
	tree := NewOrdered[int, string]()
	if _, _, err := tree.Min(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree from Min, got %v", err)
	}
	if _, _, err := tree.Max(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree from Max, got %v", err)
	}
}

func TestIterators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()

	tree, _ := buildTree(t, 4, 2, 6, 1, 3, 5, 7)
	var keys []int
	var values []string
	for k, v := range tree.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	if !slices.Equal(keys, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("All: unexpected keys %v", keys)
	}
	if !slices.Equal(values, tree.ValuesInOrder()) {
		t.Errorf("All: values %v do not match ValuesInOrder", values)
	}
	if got := slices.Collect(tree.Keys()); !slices.Equal(got, keys) {
		t.Errorf("Keys: unexpected %v", got)
	}
	var firstThree []int
	tree.ForEach(func(k int, _ string) bool {
		firstThree = append(firstThree, k)
		return len(firstThree) < 3
	})
	if !slices.Equal(firstThree, []int{1, 2, 3}) {
		t.Errorf("ForEach did not stop early: %v", firstThree)
	}
}

func TestCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()

	tree, _ := buildTree(t, 10, 20, 30, 40, 50)
	c, err := NewCursor(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Valid() {
		t.Fatalf("new cursor should be invalid")
	}
	var fwd []int
	for ok := c.First(); ok; ok = c.Next() {
		fwd = append(fwd, c.Key())
	}
	if !slices.Equal(fwd, []int{10, 20, 30, 40, 50}) {
		t.Errorf("forward walk: %v", fwd)
	}
	var bwd []int
	for ok := c.Last(); ok; ok = c.Prev() {
		bwd = append(bwd, c.Key())
	}
	if !slices.Equal(bwd, []int{50, 40, 30, 20, 10}) {
		t.Errorf("backward walk: %v", bwd)
	}
	if !c.Seek(25) || c.Key() != 30 || c.Value() != "v30" {
		t.Errorf("seek 25 should land on 30")
	}
	if !c.Seek(40) || c.Key() != 40 {
		t.Errorf("seek 40 should land on 40")
	}
	if c.Seek(51) {
		t.Errorf("seek 51 should fail")
	}
	if _, err := NewCursor[int, string](nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for nil tree, got %v", err)
	}
}
