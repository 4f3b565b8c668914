package grammar

import (
	"strconv"
)

// factorLeft groups the alternatives of each head by their first symbol and
// extracts the longest prefix shared by every member of a group of two or
// more into a fresh non-terminal:
//
//	S -> i E t S | i E t S e S | a
//
// becomes
//
//	S  -> i E t S S1 | a
//	S1 -> ε | e S
//
// The numeric suffix counts up across the whole pass invocation, so names
// stay unique even when several heads factor.
func factorLeft(g *Grammar) (*Grammar, bool) {
	r := newRewriter(g)
	counter := 1
	for _, head := range g.Heads() {
		alts := g.Alternatives(head)
		if len(alts) < 2 {
			continue
		}

		type group struct {
			members []Body
		}
		var order []*group
		index := map[Symbol]*group{}
		for _, alt := range alts {
			key := alt[0]
			grp, ok := index[key]
			if !ok {
				grp = &group{}
				index[key] = grp
				order = append(order, grp)
			}
			grp.members = append(grp.members, alt)
		}

		factored := false
		var headAlts []Body
		for _, grp := range order {
			if len(grp.members) == 1 {
				headAlts = append(headAlts, grp.members[0])
				continue
			}

			prefix := grp.members[0]
			for _, m := range grp.members[1:] {
				if n := commonPrefixLen(prefix, m); n < len(prefix) {
					prefix = prefix[:n]
				}
			}

			fresh := r.freshHead(head + strconv.Itoa(counter))
			counter++
			headAlts = append(headAlts, appendNonTerminal(prefix, fresh))

			suffixAlts := make([]Body, 0, len(grp.members))
			for _, m := range grp.members {
				suffix := m[len(prefix):]
				if len(suffix) == 0 {
					suffixAlts = append(suffixAlts, Body{NewEmpty()})
				} else {
					suffixAlts = append(suffixAlts, suffix)
				}
			}
			r.put(fresh, suffixAlts)
			factored = true
		}
		if factored {
			r.put(head, headAlts)
		}
	}
	return r.result()
}
