package wavl

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wavl")
	defer teardown()

	tree, _ := buildTree(t, 2, 1, 3)
	var sb strings.Builder
	if err := Tree2Dot(tree, &sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sb.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("output is not a DOT digraph")
	}
	if !strings.Contains(out, `label="2\nr=1 s=3"`) {
		t.Errorf("root label missing")
	}
	// two inner edges, four edges to external nodes
	if n := strings.Count(out, "->"); n != 6 {
		t.Errorf("expected 6 edges, found %d", n)
	}

	sb.Reset()
	if err := Tree2Dot(NewOrdered[int, int](), &sb); err != nil || strings.Contains(sb.String(), "->") {
		t.Errorf("empty tree should produce an empty graph")
	}
}
