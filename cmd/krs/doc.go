/*
krs is the command line front end of the KRS ambiguity checker. It parses a
context-free grammar in production-rule notation and reports likely
ambiguity sources, LL(1) conflicts, FIRST/FOLLOW sets, grammar rewrites,
and bounded derivations.
*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'krs.cli'.
func tracer() tracing.Trace {
	return tracing.Select("krs.cli")
}
