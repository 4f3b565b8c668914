package grammar

// resolveDanglingElse rewrites a head showing the dangling-else pattern
// into the classic matched/unmatched split: every conditional either
// carries a full else chain of matched statements, or trails off into an
// unmatched conditional. Each else then has exactly one binding site.
//
//	S  -> M | U
//	M  -> (non-if bodies) | if cond then M else M
//	U  -> if cond then S | if cond then M else U
func resolveDanglingElse(g *Grammar) (*Grammar, bool) {
	r := newRewriter(g)
	for _, head := range g.Heads() {
		ifElse, ifOnly := danglingElseBodies(g, head)
		if ifElse == nil || ifOnly == nil {
			continue
		}

		matched := r.freshHead(head + "M")
		unmatched := r.freshHead(head + "U")

		var matchedAlts []Body
		for _, alt := range g.Alternatives(head) {
			if !bodyHasTerminal(alt, "if") {
				matchedAlts = append(matchedAlts, alt)
			}
		}
		matchedAlts = append(matchedAlts, Body{
			NewTerminal("if"), NewTerminal("cond"), NewTerminal("then"),
			NewNonTerminal(matched),
			NewTerminal("else"),
			NewNonTerminal(matched),
		})

		unmatchedAlts := []Body{
			{
				NewTerminal("if"), NewTerminal("cond"), NewTerminal("then"),
				NewNonTerminal(head),
			},
			{
				NewTerminal("if"), NewTerminal("cond"), NewTerminal("then"),
				NewNonTerminal(matched),
				NewTerminal("else"),
				NewNonTerminal(unmatched),
			},
		}

		r.put(head, []Body{
			{NewNonTerminal(matched)},
			{NewNonTerminal(unmatched)},
		})
		r.put(matched, matchedAlts)
		r.put(unmatched, unmatchedAlts)
	}
	return r.result()
}
