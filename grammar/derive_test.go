package grammar

import (
	"testing"
)

func TestBuildParseTrees(t *testing.T) {
	g := mustGrammar(t, `
S -> A b | c
A -> a
`)
	trees := BuildParseTrees(g, 4, 2)
	if len(trees) != 2 {
		t.Fatalf("number of trees is mismatched\nwant: %v\ngot: %v", 2, len(trees))
	}

	first := trees[0]
	if first.Label != "S" || first.Terminal {
		t.Fatalf("the root must be the non-terminal start symbol; got: %+v", first)
	}
	if len(first.Children) != 2 {
		t.Fatalf("number of root children is mismatched\nwant: %v\ngot: %v", 2, len(first.Children))
	}
	a := first.Children[0]
	if a.Label != "A" || a.Terminal {
		t.Fatalf("the first child must be the non-terminal A; got: %+v", a)
	}
	if len(a.Children) != 1 || a.Children[0].Label != "a" || !a.Children[0].Terminal {
		t.Fatalf("A must expand to the terminal a; got: %+v", a.Children)
	}
	if b := first.Children[1]; b.Label != "b" || !b.Terminal {
		t.Fatalf("the second child must be the terminal b; got: %+v", b)
	}

	second := trees[1]
	if len(second.Children) != 1 || second.Children[0].Label != "c" {
		t.Fatalf("the second tree must derive c; got: %+v", second.Children)
	}

	seen := map[int]struct{}{}
	var walk func(n *TreeNode)
	walk = func(n *TreeNode) {
		if _, ok := seen[n.ID]; ok {
			t.Fatalf("node id %v appears twice within one build", n.ID)
		}
		seen[n.ID] = struct{}{}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, tree := range trees {
		walk(tree)
	}
}

func TestBuildParseTreesDepthBound(t *testing.T) {
	g := mustGrammar(t, "A -> a A")
	trees := BuildParseTrees(g, 3, 1)
	if len(trees) != 1 {
		t.Fatalf("number of trees is mismatched\nwant: %v\ngot: %v", 1, len(trees))
	}

	depth := 0
	n := trees[0]
	for {
		var next *TreeNode
		for _, c := range n.Children {
			if !c.Terminal {
				next = c
			}
		}
		if next == nil {
			break
		}
		n = next
		depth++
	}
	if depth != 3 {
		t.Fatalf("expansion depth is mismatched\nwant: %v\ngot: %v", 3, depth)
	}
	if len(n.Children) != 0 {
		t.Fatalf("the node at the depth bound must stay childless; got: %+v", n.Children)
	}
}

func TestBuildParseTreesMaxTrees(t *testing.T) {
	g := mustGrammar(t, "S -> a | b | c")
	trees := BuildParseTrees(g, 4, 2)
	if len(trees) != 2 {
		t.Fatalf("number of trees is mismatched\nwant: %v\ngot: %v", 2, len(trees))
	}
}

func TestGenerateSamples(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		depth   int
		tokens  int
		count   int
		samples []string
	}{
		{
			caption: "finite grammar lists every sentence once",
			src: `
S -> A b
A -> a | ε
`,
			depth:   6,
			tokens:  12,
			count:   10,
			samples: []string{"a b", "b"},
		},
		{
			caption: "epsilon-only derivation renders as epsilon",
			src:     "S -> ε",
			depth:   6,
			tokens:  12,
			count:   10,
			samples: []string{"ε"},
		},
		{
			caption: "recursive grammar is cut off by the depth bound",
			src:     "A -> a A | b",
			depth:   3,
			tokens:  12,
			count:   10,
			samples: []string{"a a a b", "a a b", "a b", "b"},
		},
		{
			caption: "sample count caps the walk",
			src:     "A -> a A | b",
			depth:   6,
			tokens:  12,
			count:   2,
			samples: []string{"a a a a a a b", "a a a a a b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := mustGrammar(t, tt.src)
			samples := GenerateSamples(g, tt.depth, tt.tokens, tt.count)
			testStrings(t, "samples", samples, tt.samples)
		})
	}
}
