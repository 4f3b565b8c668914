package grammar

import (
	"testing"
)

type followExpectation struct {
	head    string
	symbols []string
	eof     bool
}

func TestGenFollowSet(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		follow  []followExpectation
	}{
		{
			caption: "epsilon-wrapped recursion",
			src:     "A -> a A b | ε",
			follow: []followExpectation{
				{head: "A", symbols: []string{"b"}, eof: true},
			},
		},
		{
			caption: "classic expression grammar",
			src: `
E -> T E'
E' -> + T E' | ε
T -> F T'
T' -> * F T' | ε
F -> ( E ) | id
`,
			follow: []followExpectation{
				{head: "E", symbols: []string{")"}, eof: true},
				{head: "E'", symbols: []string{")"}, eof: true},
				{head: "T", symbols: []string{"+", ")"}, eof: true},
				{head: "T'", symbols: []string{"+", ")"}, eof: true},
				{head: "F", symbols: []string{"+", "*", ")"}, eof: true},
			},
		},
		{
			caption: "vanishing rest propagates the head's follow",
			src: `
S -> A B c
A -> a
B -> b | ε
`,
			follow: []followExpectation{
				{head: "A", symbols: []string{"b", "c"}},
				{head: "B", symbols: []string{"c"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := mustGrammar(t, tt.src)
			fst := genFirstSet(g)
			flw := genFollowSet(g, fst)
			for _, want := range tt.follow {
				e := flw.findByHead(want.head)
				if e == nil {
					t.Fatalf("an entry of FOLLOW was not found; symbol: %v", want.head)
				}
				if e.eof != want.eof {
					t.Errorf("FOLLOW(%v): eof is mismatched\nwant: %v\ngot: %v", want.head, want.eof, e.eof)
				}
				if len(e.symbols) != len(want.symbols) {
					t.Fatalf("FOLLOW(%v) is mismatched\nwant: %+v\ngot: %+v", want.head, want.symbols, e.symbols)
				}
				for _, text := range want.symbols {
					if _, ok := e.symbols[text]; !ok {
						t.Fatalf("FOLLOW(%v) is mismatched\nwant: %+v\ngot: %+v", want.head, want.symbols, e.symbols)
					}
				}
			}
		})
	}
}
