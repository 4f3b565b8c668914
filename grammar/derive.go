package grammar

import (
	"strings"
)

const (
	DefaultTreeDepth        = 4
	DefaultTreeAlternatives = 2
	DefaultSampleDepth      = 6
	DefaultSampleCount      = 10
	DefaultSampleTokens     = 12
)

// TreeNode is one node of a display parse-tree skeleton. Trees are rebuilt
// per request and ids carry no meaning across builds.
type TreeNode struct {
	ID       int
	Label    string
	Terminal bool
	Children []*TreeNode
}

// treeBuilder scopes the depth bound and the node id counter to a single
// build, so interleaved builds (original and transformed grammar in one
// request) cannot cross-contaminate ids.
type treeBuilder struct {
	g        *Grammar
	maxDepth int
	nextID   int
}

// BuildParseTrees derives one skeleton per start-symbol alternative, up to
// maxTrees. More than one tree for the same start symbol is itself a visual
// hint of ambiguity. Non-positive bounds fall back to the defaults.
func BuildParseTrees(g *Grammar, maxDepth, maxTrees int) []*TreeNode {
	if maxDepth <= 0 {
		maxDepth = DefaultTreeDepth
	}
	if maxTrees <= 0 {
		maxTrees = DefaultTreeAlternatives
	}
	b := &treeBuilder{
		g:        g,
		maxDepth: maxDepth,
	}

	alts := g.Alternatives(g.Start())
	if len(alts) > maxTrees {
		alts = alts[:maxTrees]
	}
	trees := make([]*TreeNode, 0, len(alts))
	for _, alt := range alts {
		root := b.node(g.Start(), false)
		for _, sym := range alt {
			root.Children = append(root.Children, b.expandSymbol(sym, 1))
		}
		trees = append(trees, root)
	}
	return trees
}

func (b *treeBuilder) node(label string, terminal bool) *TreeNode {
	b.nextID++
	return &TreeNode{
		ID:       b.nextID,
		Label:    label,
		Terminal: terminal,
	}
}

// expandSymbol keeps a non-terminal node childless once the depth bound is
// reached; cycles through non-terminals are intended up to that bound, so
// the guard is the depth counter, not a visited set.
func (b *treeBuilder) expandSymbol(sym Symbol, depth int) *TreeNode {
	if !sym.IsNonTerminal() {
		return b.node(sym.Text, true)
	}
	n := b.node(sym.Text, false)
	if depth >= b.maxDepth {
		return n
	}
	alt := shortestAlternative(b.g, sym.Text)
	if alt == nil {
		return n
	}
	for _, child := range alt {
		n.Children = append(n.Children, b.expandSymbol(child, depth+1))
	}
	return n
}

// shortestAlternative picks the alternative with the fewest symbols, the
// first one on a tie, so expansion stays small and deterministic.
func shortestAlternative(g *Grammar, head string) Body {
	var best Body
	for _, alt := range g.Alternatives(head) {
		if best == nil || len(alt) < len(best) {
			best = alt
		}
	}
	return best
}

// GenerateSamples derives example terminal strings by bounded depth-first
// expansion of the leftmost non-terminal. Sentential forms that exceed the
// token bound are discarded, finished strings are deduplicated, and the
// walk stops after maxCount samples. Non-positive bounds fall back to the
// defaults.
func GenerateSamples(g *Grammar, maxDepth, maxTokens, maxCount int) []string {
	if maxDepth <= 0 {
		maxDepth = DefaultSampleDepth
	}
	if maxTokens <= 0 {
		maxTokens = DefaultSampleTokens
	}
	if maxCount <= 0 {
		maxCount = DefaultSampleCount
	}

	seen := map[string]struct{}{}
	var samples []string

	var expand func(form []Symbol, depth int)
	expand = func(form []Symbol, depth int) {
		if len(samples) >= maxCount {
			return
		}

		next := -1
		for i, sym := range form {
			if sym.IsNonTerminal() {
				next = i
				break
			}
		}
		if next < 0 {
			texts := make([]string, 0, len(form))
			for _, sym := range form {
				if sym.IsTerminal() {
					texts = append(texts, sym.Text)
				}
			}
			s := strings.Join(texts, " ")
			if s == "" {
				s = EmptyText
			}
			if _, ok := seen[s]; ok {
				return
			}
			seen[s] = struct{}{}
			samples = append(samples, s)
			return
		}

		if depth <= 0 || len(form) > maxTokens {
			return
		}
		for _, alt := range g.Alternatives(form[next].Text) {
			expanded := make([]Symbol, 0, len(form)+len(alt))
			expanded = append(expanded, form[:next]...)
			for _, sym := range alt {
				if !sym.IsEmpty() {
					expanded = append(expanded, sym)
				}
			}
			expanded = append(expanded, form[next+1:]...)
			expand(expanded, depth-1)
		}
	}

	for _, alt := range g.Alternatives(g.Start()) {
		expand(alt, maxDepth)
	}
	tracer().Debugf("generated %d sample strings", len(samples))
	return samples
}
