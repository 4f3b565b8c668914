package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Step is the record of one applied transformation pass, with textual
// snapshots of the grammar around it.
type Step struct {
	Name        string
	Description string
	Before      string
	After       string
}

// TransformResult is the outcome of the whole pipeline. Success is false
// when no pass applied; the grammar is then the original.
type TransformResult struct {
	Success     bool
	Grammar     *Grammar
	Steps       []*Step
	Explanation string
}

type pass struct {
	name        string
	description string
	apply       func(*Grammar) (*Grammar, bool)
}

// transformationPasses returns the pipeline in its designed order. The
// order is a dependency chain: precedence restructuring introduces the
// left-recursive shapes the next pass eliminates, elimination introduces
// the common prefixes left factoring extracts, and dangling-else
// resolution runs on the settled grammar.
func transformationPasses() []*pass {
	return []*pass{
		{
			name:        "Operator Precedence",
			description: "split mixed-precedence operator alternatives into term and factor levels",
			apply:       restructurePrecedence,
		},
		{
			name:        "Left Recursion Elimination",
			description: "replace left-recursive alternatives with right-recursive tail productions",
			apply:       eliminateLeftRecursion,
		},
		{
			name:        "Left Factoring",
			description: "extract the longest shared prefix of alternatives into a fresh non-terminal",
			apply:       factorLeft,
		},
		{
			name:        "Dangling Else Resolution",
			description: "split a conditional non-terminal into matched and unmatched variants",
			apply:       resolveDanglingElse,
		},
	}
}

// Transform runs every pass over the grammar, each receiving the result of
// the previous one. A pass logs a step only when it changed something;
// intermediate grammars stay valid snapshots because passes copy instead of
// mutating.
func Transform(g *Grammar) *TransformResult {
	passes := transformationPasses()
	cur := g
	var steps []*Step
	for _, p := range passes {
		next, changed := p.apply(cur)
		if !changed {
			continue
		}
		tracer().Debugf("pass %q applied", p.name)
		steps = append(steps, &Step{
			Name:        p.name,
			Description: p.description,
			Before:      cur.Text(),
			After:       next.Text(),
		})
		cur = next
	}

	if len(steps) == 0 {
		return &TransformResult{
			Success:     false,
			Grammar:     g,
			Explanation: "no applicable transformation",
		}
	}
	return &TransformResult{
		Success:     true,
		Grammar:     cur,
		Steps:       steps,
		Explanation: fmt.Sprintf("applied %v of %v passes", len(steps), len(passes)),
	}
}

// rewriter collects per-head rewrites of one pass into a fresh ordered
// production map; the source grammar is left untouched.
type rewriter struct {
	g       *Grammar
	prods   *linkedhashmap.Map
	changed bool
}

func newRewriter(g *Grammar) *rewriter {
	prods := linkedhashmap.New()
	for _, head := range g.Heads() {
		prods.Put(head, g.Alternatives(head))
	}
	return &rewriter{
		g:     g,
		prods: prods,
	}
}

// put replaces the alternatives of an existing head or appends a fresh one
// after the stored heads.
func (r *rewriter) put(head string, alts []Body) {
	r.prods.Put(head, alts)
	r.changed = true
}

// freshHead returns base if no symbol of the source grammar and no head
// stored so far uses it, otherwise base with as many primes appended as
// needed. Heads generated earlier in the same pass count as taken; two
// rewrites claiming one name would overwrite each other's productions.
func (r *rewriter) freshHead(base string) string {
	name := base
	for r.taken(name) {
		name += "'"
	}
	return name
}

func (r *rewriter) taken(name string) bool {
	if r.g.nonTerms.Contains(name) {
		return true
	}
	_, ok := r.prods.Get(name)
	return ok
}

func (r *rewriter) result() (*Grammar, bool) {
	if !r.changed {
		return r.g, false
	}
	return newGrammar(r.g.Start(), r.prods), true
}

// retarget copies a body, redirecting references of one non-terminal to
// another.
func retarget(body Body, from, to string) Body {
	out := make(Body, len(body))
	for i, sym := range body {
		if sym.IsNonTerminal() && sym.Text == from {
			out[i] = NewNonTerminal(to)
		} else {
			out[i] = sym
		}
	}
	return out
}

// appendNonTerminal extends a body with a trailing non-terminal, collapsing
// an empty-only body so that `ε X` becomes just `X`.
func appendNonTerminal(body Body, name string) Body {
	if body.isEmptyBody() {
		return Body{NewNonTerminal(name)}
	}
	out := make(Body, 0, len(body)+1)
	out = append(out, body...)
	return append(out, NewNonTerminal(name))
}
