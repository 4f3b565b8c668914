package grammar

type firstEntry struct {
	symbols map[string]struct{}
	empty   bool
}

func newFirstEntry() *firstEntry {
	return &firstEntry{
		symbols: map[string]struct{}{},
		empty:   false,
	}
}

func (e *firstEntry) add(text string) bool {
	if _, ok := e.symbols[text]; ok {
		return false
	}
	e.symbols[text] = struct{}{}
	return true
}

func (e *firstEntry) addEmpty() bool {
	if !e.empty {
		e.empty = true
		return true
	}
	return false
}

func (e *firstEntry) mergeExceptEmpty(target *firstEntry) bool {
	if target == nil {
		return false
	}
	changed := false
	for text := range target.symbols {
		added := e.add(text)
		if added {
			changed = true
		}
	}
	return changed
}

type firstSet struct {
	set map[string]*firstEntry
}

func newFirstSet(g *Grammar) *firstSet {
	fst := &firstSet{
		set: map[string]*firstEntry{},
	}
	for _, head := range g.Heads() {
		fst.set[head] = newFirstEntry()
	}
	return fst
}

func (fst *firstSet) findByHead(head string) *firstEntry {
	return fst.set[head]
}

// findBySequence computes FIRST of a symbol sequence from the per-head
// entries: scan left to right, stop at the first terminal or at the first
// non-terminal whose FIRST lacks the empty marker; if every symbol admits
// the empty sequence, the sequence does too.
func (fst *firstSet) findBySequence(seq []Symbol) *firstEntry {
	entry := newFirstEntry()
	for _, sym := range seq {
		switch {
		case sym.IsEmpty():
			continue
		case sym.IsTerminal():
			entry.add(sym.Text)
			return entry
		}
		e := fst.findByHead(sym.Text)
		if e == nil {
			return entry
		}
		entry.mergeExceptEmpty(e)
		if !e.empty {
			return entry
		}
	}
	entry.addEmpty()
	return entry
}

// genFirstSet iterates to the least fixed point: every head absorbs the
// FIRST of each of its alternatives until no entry grows. Termination is
// guaranteed because entries only grow and are bounded by the terminal
// alphabet.
func genFirstSet(g *Grammar) *firstSet {
	fst := newFirstSet(g)
	rounds := 0
	for {
		more := false
		for _, head := range g.Heads() {
			acc := fst.findByHead(head)
			for _, alt := range g.Alternatives(head) {
				if genBodyFirstEntry(fst, acc, alt) {
					more = true
				}
			}
		}
		rounds++
		if !more {
			break
		}
	}
	tracer().Debugf("FIRST fixed point after %d rounds", rounds)
	return fst
}

func genBodyFirstEntry(fst *firstSet, acc *firstEntry, body Body) bool {
	if body.isEmptyBody() {
		return acc.addEmpty()
	}

	changed := false
	for _, sym := range body {
		if sym.IsEmpty() {
			continue
		}
		if sym.IsTerminal() {
			if acc.add(sym.Text) {
				changed = true
			}
			return changed
		}

		e := fst.findByHead(sym.Text)
		if acc.mergeExceptEmpty(e) {
			changed = true
		}
		if e == nil || !e.empty {
			return changed
		}
	}
	if acc.addEmpty() {
		changed = true
	}
	return changed
}
