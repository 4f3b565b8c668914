package grammar

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	verr "github.com/manideep395/KRS-Ambiguity-Checker/error"
	"github.com/manideep395/KRS-Ambiguity-Checker/spec"
)

// Grammar is an immutable context-free grammar. The production map keeps
// head insertion order; the first head of the source is the start symbol,
// and serialization replays the stored order, so an unordered map would not
// do here.
type Grammar struct {
	start    string
	prods    *linkedhashmap.Map // head name -> []Body
	nonTerms *treeset.Set
	terms    *treeset.Set
}

func newGrammar(start string, prods *linkedhashmap.Map) *Grammar {
	g := &Grammar{
		start:    start,
		prods:    prods,
		nonTerms: treeset.NewWith(utils.StringComparator),
		terms:    treeset.NewWith(utils.StringComparator),
	}
	for _, head := range g.Heads() {
		g.nonTerms.Add(head)
		for _, alt := range g.Alternatives(head) {
			for _, sym := range alt {
				switch sym.Kind {
				case SymbolKindNonTerminal:
					g.nonTerms.Add(sym.Text)
				case SymbolKindTerminal:
					g.terms.Add(sym.Text)
				}
			}
		}
	}
	return g
}

func (g *Grammar) Start() string {
	return g.start
}

// Heads returns the production heads in source order.
func (g *Grammar) Heads() []string {
	keys := g.prods.Keys()
	heads := make([]string, len(keys))
	for i, k := range keys {
		heads[i] = k.(string)
	}
	return heads
}

// Alternatives returns the bodies of a head in declaration order. The order
// matters: it decides which transformation branch fires first and which
// alternative index a conflict message reports.
func (g *Grammar) Alternatives(head string) []Body {
	v, ok := g.prods.Get(head)
	if !ok {
		return nil
	}
	return v.([]Body)
}

func (g *Grammar) IsNonTerminal(name string) bool {
	return g.nonTerms.Contains(name)
}

// NonTerminals returns all non-terminal names in lexical order.
func (g *Grammar) NonTerminals() []string {
	return setStrings(g.nonTerms)
}

// Terminals returns all terminal texts in lexical order.
func (g *Grammar) Terminals() []string {
	return setStrings(g.terms)
}

func setStrings(s *treeset.Set) []string {
	vals := s.Values()
	texts := make([]string, len(vals))
	for i, v := range vals {
		texts[i] = v.(string)
	}
	return texts
}

// Unreachable returns the heads that a breadth-first walk over non-terminal
// references never visits from the start symbol, in source order.
func (g *Grammar) Unreachable() []string {
	visited := map[string]struct{}{
		g.start: {},
	}
	queue := []string{g.start}
	for len(queue) > 0 {
		head := queue[0]
		queue = queue[1:]
		for _, alt := range g.Alternatives(head) {
			for _, sym := range alt {
				if !sym.IsNonTerminal() {
					continue
				}
				if _, ok := visited[sym.Text]; ok {
					continue
				}
				visited[sym.Text] = struct{}{}
				queue = append(queue, sym.Text)
			}
		}
	}

	var unreachable []string
	for _, head := range g.Heads() {
		if _, ok := visited[head]; !ok {
			unreachable = append(unreachable, head)
		}
	}
	return unreachable
}

// Text serializes the grammar: the start production first, then the
// remaining heads in stored order. Parsing the result yields a structurally
// identical grammar.
func (g *Grammar) Text() string {
	var b strings.Builder
	g.writeProduction(&b, g.start)
	for _, head := range g.Heads() {
		if head == g.start {
			continue
		}
		g.writeProduction(&b, head)
	}
	return b.String()
}

func (g *Grammar) writeProduction(w io.Writer, head string) {
	alts := g.Alternatives(head)
	texts := make([]string, len(alts))
	for i, alt := range alts {
		texts[i] = alt.String()
	}
	fmt.Fprintf(w, "%v -> %v\n", head, strings.Join(texts, " | "))
}

// Builder turns a parsed AST into a Grammar. It classifies every symbol
// usage, derives the terminal and non-terminal sets, and verifies that each
// referenced non-terminal has a production.
type Builder struct {
	AST        *spec.RootNode
	SourceName string
}

// Build returns either a valid Grammar and no errors, or nil and all the
// errors it found, never both.
func (b *Builder) Build() (*Grammar, verr.SpecErrors) {
	prods := linkedhashmap.New()
	start := ""
	for _, prodNode := range b.AST.Productions {
		alts := make([]Body, 0, len(prodNode.RHS))
		for _, altNode := range prodNode.RHS {
			body := make(Body, 0, len(altNode.Elements))
			for _, elem := range altNode.Elements {
				body = append(body, symbolOfElement(elem))
			}
			alts = append(alts, body)
		}
		if start == "" {
			start = prodNode.LHS
		}
		if existing, ok := prods.Get(prodNode.LHS); ok {
			// A head may be declared on several lines; alternatives merge
			// in source order.
			prods.Put(prodNode.LHS, append(existing.([]Body), alts...))
		} else {
			prods.Put(prodNode.LHS, alts)
		}
	}

	var errs verr.SpecErrors
	it := prods.Iterator()
	reported := map[string]struct{}{}
	for it.Next() {
		for _, alt := range it.Value().([]Body) {
			for _, sym := range alt {
				if !sym.IsNonTerminal() {
					continue
				}
				if _, ok := prods.Get(sym.Text); ok {
					continue
				}
				if _, ok := reported[sym.Text]; ok {
					continue
				}
				reported[sym.Text] = struct{}{}
				errs = append(errs, &verr.SpecError{
					Cause:      fmt.Errorf("non-terminal %v is used but never defined", sym.Text),
					SourceName: b.SourceName,
				})
			}
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return newGrammar(start, prods), nil
}

func symbolOfElement(elem *spec.ElementNode) Symbol {
	switch elem.Kind {
	case spec.ElementKindNonTerminal:
		return NewNonTerminal(elem.Text)
	case spec.ElementKindEmpty:
		return NewEmpty()
	default:
		return NewTerminal(elem.Text)
	}
}

// Parse reads a grammar source with the default tokenization.
func Parse(src io.Reader) (*Grammar, verr.SpecErrors) {
	return ParseWith(spec.Parser{}, src)
}

// ParseWith composes the notation parser and the builder; errors of both
// stages accumulate behind a single error list.
func ParseWith(p spec.Parser, src io.Reader) (*Grammar, verr.SpecErrors) {
	ast, errs := p.Parse(src)
	if len(errs) > 0 {
		return nil, errs
	}
	b := &Builder{
		AST:        ast,
		SourceName: p.SourceName,
	}
	return b.Build()
}
