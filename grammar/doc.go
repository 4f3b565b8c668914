/*
Package grammar holds the context-free grammar model of the ambiguity
checker and every analysis that runs over it: reachability, FIRST/FOLLOW
sets, LL(1) conflict detection, the ambiguity heuristics, the
grammar-preserving transformation pipeline, and the bounded derivation of
parse-tree skeletons and sample strings.

A Grammar is built once from the textual notation (package spec) and is
never mutated afterwards; each transformation pass produces a fresh copy.
*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'krs.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("krs.grammar")
}
