package grammar

import (
	"testing"
)

func TestEliminateLeftRecursion(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		changed bool
		text    string
	}{
		{
			caption: "immediate left recursion",
			src: `
E -> E + T | T
T -> id
`,
			changed: true,
			text:    "E -> T E'\nT -> id\nE' -> + T E' | ε\n",
		},
		{
			caption: "multiple recursive alternatives",
			src: `
E -> E + T | E - T | T
T -> id
`,
			changed: true,
			text:    "E -> T E'\nT -> id\nE' -> + T E' | - T E' | ε\n",
		},
		{
			caption: "bare self loop is dropped",
			src:     "A -> A | a",
			changed: true,
			text:    "A -> a A'\nA' -> ε\n",
		},
		{
			caption: "generated names stay distinct across heads",
			src: `
E -> E a | b
E' -> E' c | d
`,
			changed: true,
			text: "E -> b E''\nE' -> d E'''\n" +
				"E'' -> a E'' | ε\nE''' -> c E''' | ε\n",
		},
		{
			caption: "right recursion is untouched",
			src:     "A -> a A | b",
			changed: false,
		},
		{
			caption: "no non-recursive base",
			src:     "A -> A a",
			changed: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := mustGrammar(t, tt.src)
			got, changed := eliminateLeftRecursion(g)
			if changed != tt.changed {
				t.Fatalf("changed is mismatched\nwant: %v\ngot: %v", tt.changed, changed)
			}
			if !changed {
				return
			}
			if got.Text() != tt.text {
				t.Fatalf("the rewritten grammar is mismatched\nwant:\n%v\ngot:\n%v", tt.text, got.Text())
			}
		})
	}
}

func TestEliminateLeftRecursionIdempotence(t *testing.T) {
	g := mustGrammar(t, `
E -> E + T | T
T -> id
`)
	once, changed := eliminateLeftRecursion(g)
	if !changed {
		t.Fatalf("the first application must change the grammar")
	}
	if _, changed := eliminateLeftRecursion(once); changed {
		t.Fatalf("the second application must be a no-op")
	}
}

func TestFactorLeft(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		changed bool
		text    string
	}{
		{
			caption: "shared four-symbol prefix",
			src: `
S -> i E t S | i E t S e S | a
E -> b
`,
			changed: true,
			text:    "S -> i E t S S1 | a\nE -> b\nS1 -> ε | e S\n",
		},
		{
			caption: "two independent groups",
			src:     "S -> a b | a c | d e | d f",
			changed: true,
			text:    "S -> a S1 | d S2\nS1 -> b | c\nS2 -> e | f\n",
		},
		{
			caption: "fresh name collides with an existing head",
			src: `
S -> a b | a c
S1 -> d
`,
			changed: true,
			text:    "S -> a S1'\nS1 -> d\nS1' -> b | c\n",
		},
		{
			caption: "no shared prefix",
			src:     "S -> a b | c d",
			changed: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := mustGrammar(t, tt.src)
			got, changed := factorLeft(g)
			if changed != tt.changed {
				t.Fatalf("changed is mismatched\nwant: %v\ngot: %v", tt.changed, changed)
			}
			if !changed {
				return
			}
			if got.Text() != tt.text {
				t.Fatalf("the rewritten grammar is mismatched\nwant:\n%v\ngot:\n%v", tt.text, got.Text())
			}
		})
	}
}

func TestRestructurePrecedence(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		changed bool
		text    string
	}{
		{
			caption: "mixed precedence operators",
			src:     "E -> E + E | E * E | id",
			changed: true,
			text:    "E -> E + ET | ET\nET -> ET * EF | EF\nEF -> id\n",
		},
		{
			caption: "self references in base retarget to the factor level",
			src:     "E -> E + E | E * E | ( E ) | id",
			changed: true,
			text:    "E -> E + ET | ET\nET -> ET * EF | EF\nEF -> ( EF ) | id\n",
		},
		{
			caption: "single bucket is left alone",
			src:     "E -> E + E | E - E | id",
			changed: false,
		},
		{
			caption: "one operator is left alone",
			src:     "E -> E * E | id",
			changed: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := mustGrammar(t, tt.src)
			got, changed := restructurePrecedence(g)
			if changed != tt.changed {
				t.Fatalf("changed is mismatched\nwant: %v\ngot: %v", tt.changed, changed)
			}
			if !changed {
				return
			}
			if got.Text() != tt.text {
				t.Fatalf("the rewritten grammar is mismatched\nwant:\n%v\ngot:\n%v", tt.text, got.Text())
			}
		})
	}
}

func TestResolveDanglingElse(t *testing.T) {
	g := mustGrammar(t, "S -> if cond then S else S | if cond then S | other")
	got, changed := resolveDanglingElse(g)
	if !changed {
		t.Fatalf("the pass must change the grammar")
	}
	want := "S -> SM | SU\n" +
		"SM -> other | if cond then SM else SM\n" +
		"SU -> if cond then S | if cond then SM else SU\n"
	if got.Text() != want {
		t.Fatalf("the rewritten grammar is mismatched\nwant:\n%v\ngot:\n%v", want, got.Text())
	}

	g = mustGrammar(t, "S -> if cond then S else S | other")
	if _, changed := resolveDanglingElse(g); changed {
		t.Fatalf("a head without a bare-if alternative must be left alone")
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		caption     string
		src         string
		success     bool
		steps       []string
		text        string
		explanation string
	}{
		{
			caption: "nothing to do",
			src: `
S -> a B
B -> b
`,
			success:     false,
			explanation: "no applicable transformation",
		},
		{
			caption: "left recursion only",
			src: `
E -> E + T | T
T -> id
`,
			success: true,
			steps:   []string{"Left Recursion Elimination"},
			text:    "E -> T E'\nT -> id\nE' -> + T E' | ε\n",
		},
		{
			caption: "precedence then left recursion",
			src:     "E -> E + E | E * E | id",
			success: true,
			steps:   []string{"Operator Precedence", "Left Recursion Elimination"},
			text: "E -> ET E'\nET -> EF ET'\nEF -> id\n" +
				"E' -> + ET E' | ε\nET' -> * EF ET' | ε\n",
		},
		{
			caption: "dangling else is factored away first",
			src:     "S -> if cond then S else S | if cond then S | other",
			success: true,
			steps:   []string{"Left Factoring"},
			text:    "S -> if cond then S S1 | other\nS1 -> else S | ε\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g := mustGrammar(t, tt.src)
			res := Transform(g)
			if res.Success != tt.success {
				t.Fatalf("success is mismatched\nwant: %v\ngot: %v", tt.success, res.Success)
			}
			if len(res.Steps) != len(tt.steps) {
				t.Fatalf("number of steps is mismatched\nwant: %v\ngot: %v", len(tt.steps), len(res.Steps))
			}
			for i, name := range tt.steps {
				step := res.Steps[i]
				if step.Name != name {
					t.Errorf("step #%v: name is mismatched\nwant: %v\ngot: %v", i+1, name, step.Name)
				}
				if step.Before == "" || step.After == "" {
					t.Errorf("step #%v: snapshots must not be empty", i+1)
				}
				if step.Before == step.After {
					t.Errorf("step #%v: the pass logged a step without changing the text", i+1)
				}
			}
			if !tt.success {
				if res.Grammar != g {
					t.Fatalf("a failed transformation must return the original grammar")
				}
				if res.Explanation != tt.explanation {
					t.Fatalf("explanation is mismatched\nwant: %v\ngot: %v", tt.explanation, res.Explanation)
				}
				return
			}
			if res.Grammar.Text() != tt.text {
				t.Fatalf("the final grammar is mismatched\nwant:\n%v\ngot:\n%v", tt.text, res.Grammar.Text())
			}
			if len(res.Steps) > 0 && res.Steps[0].Before != g.Text() {
				t.Fatalf("the first snapshot must be the original grammar\nwant:\n%v\ngot:\n%v", g.Text(), res.Steps[0].Before)
			}
		})
	}
}
