package grammar

// eliminateLeftRecursion applies the standard immediate-left-recursion
// rewrite per head:
//
//	H  -> a1 | a2 | H t1 | H t2
//
// becomes
//
//	H  -> a1 H' | a2 H'
//	H' -> t1 H' | t2 H' | ε
//
// The pass only fires when a head has both left-recursive and
// non-left-recursive alternatives; without a non-recursive base the head
// derives nothing and rewriting cannot fix that. A bare self loop `H -> H`
// carries an empty tail and is dropped, it contributes no sentence.
func eliminateLeftRecursion(g *Grammar) (*Grammar, bool) {
	r := newRewriter(g)
	for _, head := range g.Heads() {
		var tails []Body
		var rest []Body
		recursive := 0
		for _, alt := range g.Alternatives(head) {
			if !isLeftRecursive(head, alt) {
				rest = append(rest, alt)
				continue
			}
			recursive++
			if tail := alt[1:]; len(tail) > 0 {
				tails = append(tails, tail)
			}
		}
		if recursive == 0 || len(rest) == 0 {
			continue
		}

		prime := r.freshHead(head + "'")

		headAlts := make([]Body, 0, len(rest))
		for _, alt := range rest {
			headAlts = append(headAlts, appendNonTerminal(alt, prime))
		}

		primeAlts := make([]Body, 0, len(tails)+1)
		for _, tail := range tails {
			primeAlts = append(primeAlts, appendNonTerminal(tail, prime))
		}
		primeAlts = append(primeAlts, Body{NewEmpty()})

		r.put(head, headAlts)
		r.put(prime, primeAlts)
	}
	return r.result()
}
