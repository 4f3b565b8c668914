package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type firstExpectation struct {
	head    string
	symbols []string
	empty   bool
}

func TestGenFirstSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "krs.grammar")
	defer teardown()

	tests := []struct {
		caption string
		src     string
		first   []firstExpectation
	}{
		{
			caption: "non-empty productions only",
			src: `
E -> E + T | T
T -> T * F | F
F -> ( E ) | id
`,
			first: []firstExpectation{
				{head: "E", symbols: []string{"(", "id"}},
				{head: "T", symbols: []string{"(", "id"}},
				{head: "F", symbols: []string{"(", "id"}},
			},
		},
		{
			caption: "epsilon-wrapped recursion",
			src:     "A -> a A b | ε",
			first: []firstExpectation{
				{head: "A", symbols: []string{"a"}, empty: true},
			},
		},
		{
			caption: "empty prefix passes through",
			src: `
S -> A b
A -> a | ε
`,
			first: []firstExpectation{
				{head: "S", symbols: []string{"a", "b"}},
				{head: "A", symbols: []string{"a"}, empty: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := mustGrammar(t, tt.src)
			fst := genFirstSet(g)
			for _, want := range tt.first {
				e := fst.findByHead(want.head)
				if e == nil {
					t.Fatalf("an entry of FIRST was not found; symbol: %v", want.head)
				}
				testFirstEntry(t, want.head, e, want.symbols, want.empty)
			}
		})
	}
}

func testFirstEntry(t *testing.T, head string, actual *firstEntry, symbols []string, empty bool) {
	t.Helper()

	if actual.empty != empty {
		t.Errorf("FIRST(%v): empty is mismatched\nwant: %v\ngot: %v", head, empty, actual.empty)
	}
	if len(actual.symbols) != len(symbols) {
		t.Fatalf("FIRST(%v) is mismatched\nwant: %+v\ngot: %+v", head, symbols, actual.symbols)
	}
	for _, text := range symbols {
		if _, ok := actual.symbols[text]; !ok {
			t.Fatalf("FIRST(%v) is mismatched\nwant: %+v\ngot: %+v", head, symbols, actual.symbols)
		}
	}
}

func TestFirstOfSequence(t *testing.T) {
	g := mustGrammar(t, `
S -> A B c
A -> a | ε
B -> b | ε
`)
	fst := genFirstSet(g)

	tests := []struct {
		caption string
		seq     []Symbol
		symbols []string
		empty   bool
	}{
		{
			caption: "terminal first",
			seq:     []Symbol{NewTerminal("c"), NewNonTerminal("A")},
			symbols: []string{"c"},
		},
		{
			caption: "nullable chain",
			seq:     []Symbol{NewNonTerminal("A"), NewNonTerminal("B")},
			symbols: []string{"a", "b"},
			empty:   true,
		},
		{
			caption: "chain stopped by a terminal",
			seq:     []Symbol{NewNonTerminal("A"), NewTerminal("c")},
			symbols: []string{"a", "c"},
		},
		{
			caption: "empty sequence",
			seq:     nil,
			empty:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			e := fst.findBySequence(tt.seq)
			testFirstEntry(t, tt.caption, e, tt.symbols, tt.empty)
		})
	}
}
