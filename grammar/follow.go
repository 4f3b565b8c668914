package grammar

type followEntry struct {
	symbols map[string]struct{}
	eof     bool
}

func newFollowEntry() *followEntry {
	return &followEntry{
		symbols: map[string]struct{}{},
		eof:     false,
	}
}

func (e *followEntry) add(text string) bool {
	if _, ok := e.symbols[text]; ok {
		return false
	}
	e.symbols[text] = struct{}{}
	return true
}

func (e *followEntry) addEOF() bool {
	if !e.eof {
		e.eof = true
		return true
	}
	return false
}

// merge absorbs the non-empty part of a FIRST entry and, optionally, a
// whole FOLLOW entry. The empty marker never enters a FOLLOW set.
func (e *followEntry) merge(fst *firstEntry, flw *followEntry) bool {
	changed := false

	if fst != nil {
		for text := range fst.symbols {
			added := e.add(text)
			if added {
				changed = true
			}
		}
	}

	if flw != nil {
		for text := range flw.symbols {
			added := e.add(text)
			if added {
				changed = true
			}
		}
		if flw.eof {
			added := e.addEOF()
			if added {
				changed = true
			}
		}
	}

	return changed
}

type followSet struct {
	set map[string]*followEntry
}

func newFollowSet(g *Grammar) *followSet {
	flw := &followSet{
		set: map[string]*followEntry{},
	}
	for _, head := range g.Heads() {
		flw.set[head] = newFollowEntry()
	}
	return flw
}

func (flw *followSet) findByHead(head string) *followEntry {
	return flw.set[head]
}

// genFollowSet iterates to the fixed point: for every occurrence of a
// non-terminal X in a body, FOLLOW(X) absorbs FIRST of the rest of the
// body, and when that rest can vanish it absorbs FOLLOW of the head too.
// FOLLOW(start) is seeded with the end-of-input marker.
func genFollowSet(g *Grammar, fst *firstSet) *followSet {
	flw := newFollowSet(g)
	flw.findByHead(g.Start()).addEOF()

	rounds := 0
	for {
		more := false
		for _, head := range g.Heads() {
			headFlw := flw.findByHead(head)
			for _, alt := range g.Alternatives(head) {
				for i, sym := range alt {
					if !sym.IsNonTerminal() {
						continue
					}
					e := flw.findByHead(sym.Text)
					restFst := fst.findBySequence(alt[i+1:])
					if e.merge(restFst, nil) {
						more = true
					}
					if restFst.empty {
						if e.merge(nil, headFlw) {
							more = true
						}
					}
				}
			}
		}
		rounds++
		if !more {
			break
		}
	}
	tracer().Debugf("FOLLOW fixed point after %d rounds", rounds)
	return flw
}
