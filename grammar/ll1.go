package grammar

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// EndMarker is the end-of-input marker appearing in FOLLOW sets.
const EndMarker = "$"

// FirstFollow is the finished result of the FIRST/FOLLOW computation, with
// the internal empty marker rendered as ε in FIRST sets and the end marker
// rendered as $ in FOLLOW sets.
type FirstFollow struct {
	g   *Grammar
	fst *firstSet
	flw *followSet
}

// GenFirstFollow computes both set families for a grammar.
func GenFirstFollow(g *Grammar) *FirstFollow {
	fst := genFirstSet(g)
	return &FirstFollow{
		g:   g,
		fst: fst,
		flw: genFollowSet(g, fst),
	}
}

// First returns FIRST of a symbol name in lexical order. A terminal maps to
// itself.
func (ff *FirstFollow) First(name string) ([]string, bool) {
	if e := ff.fst.findByHead(name); e != nil {
		set := treeset.NewWith(utils.StringComparator)
		for text := range e.symbols {
			set.Add(text)
		}
		texts := setStrings(set)
		if e.empty {
			texts = append(texts, EmptyText)
		}
		return texts, true
	}
	if ff.g.terms.Contains(name) {
		return []string{name}, true
	}
	return nil, false
}

// Follow returns FOLLOW of a non-terminal in lexical order, with the end
// marker first when present.
func (ff *FirstFollow) Follow(name string) ([]string, bool) {
	e := ff.flw.findByHead(name)
	if e == nil {
		return nil, false
	}
	var texts []string
	if e.eof {
		texts = append(texts, EndMarker)
	}
	set := treeset.NewWith(utils.StringComparator)
	for text := range e.symbols {
		set.Add(text)
	}
	return append(texts, setStrings(set)...), true
}

type ConflictKind string

const (
	ConflictKindFirstFirst  = ConflictKind("FIRST/FIRST")
	ConflictKindFirstFollow = ConflictKind("FIRST/FOLLOW")
)

// Conflict is one LL(1) prediction conflict between two alternatives of a
// head. Alternative indices are 1-based.
type Conflict struct {
	Kind         ConflictKind
	Head         string
	Alternative1 int
	Alternative2 int
	Terminals    []string
}

func (c *Conflict) Description() string {
	return fmt.Sprintf("%v conflict on %v between alternatives %v and %v (lookahead: %v)",
		c.Kind, c.Head, c.Alternative1, c.Alternative2, c.Terminals)
}

// Conflicts lists every LL(1) conflict in a stable order: heads in source
// order, alternative pairs with i < j, shared terminals sorted.
func (ff *FirstFollow) Conflicts() []*Conflict {
	var conflicts []*Conflict
	for _, head := range ff.g.Heads() {
		alts := ff.g.Alternatives(head)
		if len(alts) < 2 {
			continue
		}
		headFlw := ff.flw.findByHead(head)
		for i := 0; i < len(alts); i++ {
			fi := ff.fst.findBySequence(alts[i])
			for j := i + 1; j < len(alts); j++ {
				fj := ff.fst.findBySequence(alts[j])

				if shared := sharedTerminals(fi.symbols, fj.symbols); len(shared) > 0 {
					conflicts = append(conflicts, &Conflict{
						Kind:         ConflictKindFirstFirst,
						Head:         head,
						Alternative1: i + 1,
						Alternative2: j + 1,
						Terminals:    shared,
					})
				}
				// The pair is unordered: either alternative deriving the
				// empty sequence pits the other's FIRST against FOLLOW(head).
				var shared []string
				if fi.empty {
					shared = sharedTerminals(fj.symbols, headFlw.symbols)
				} else if fj.empty {
					shared = sharedTerminals(fi.symbols, headFlw.symbols)
				}
				if len(shared) > 0 {
					conflicts = append(conflicts, &Conflict{
						Kind:         ConflictKindFirstFollow,
						Head:         head,
						Alternative1: i + 1,
						Alternative2: j + 1,
						Terminals:    shared,
					})
				}
			}
		}
	}
	return conflicts
}

func sharedTerminals(a, b map[string]struct{}) []string {
	set := treeset.NewWith(utils.StringComparator)
	for text := range a {
		if _, ok := b[text]; ok {
			set.Add(text)
		}
	}
	if set.Size() == 0 {
		return nil
	}
	return setStrings(set)
}
