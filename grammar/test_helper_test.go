package grammar

import (
	"strings"
	"testing"

	"github.com/manideep395/KRS-Ambiguity-Checker/spec"
)

// mustGrammar parses a grammar source that the test expects to be valid.
func mustGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	g, errs := Parse(strings.NewReader(src))
	if len(errs) > 0 {
		t.Fatalf("failed to parse the grammar: %v", errs)
	}
	return g
}

func mustCompactGrammar(t *testing.T, src string) *Grammar {
	t.Helper()

	g, errs := ParseWith(spec.Parser{Compact: true}, strings.NewReader(src))
	if len(errs) > 0 {
		t.Fatalf("failed to parse the grammar: %v", errs)
	}
	return g
}

// testStrings compares two string slices elementwise.
func testStrings(t *testing.T, caption string, actual, expected []string) {
	t.Helper()

	if len(actual) != len(expected) {
		t.Fatalf("%v is mismatched\nwant: %v\ngot: %v", caption, expected, actual)
	}
	for i, want := range expected {
		if actual[i] != want {
			t.Fatalf("%v is mismatched\nwant: %v\ngot: %v", caption, expected, actual)
		}
	}
}

// testBodies checks the alternatives of a head against serialized bodies.
func testBodies(t *testing.T, g *Grammar, head string, expected []string) {
	t.Helper()

	alts := g.Alternatives(head)
	if len(alts) != len(expected) {
		t.Fatalf("alternatives of %v are mismatched\nwant: %v\ngot: %v", head, expected, alts)
	}
	for i, want := range expected {
		if alts[i].String() != want {
			t.Fatalf("alternative %v of %v is mismatched\nwant: %v\ngot: %v", i+1, head, want, alts[i])
		}
	}
}
