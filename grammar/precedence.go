package grammar

// highPrecOps are the operators restructured into the inner (term) level;
// every other operator found lands in the outer level.
var highPrecOps = map[string]struct{}{
	"*": {},
	"/": {},
	"%": {},
}

// binaryOperator recognizes a same-head binary operator alternative of the
// shape `H op H` and returns the operator terminal.
func binaryOperator(head string, body Body) (string, bool) {
	if len(body) != 3 {
		return "", false
	}
	if body[0] != NewNonTerminal(head) || body[2] != NewNonTerminal(head) {
		return "", false
	}
	if !body[1].IsTerminal() {
		return "", false
	}
	return body[1].Text, true
}

// restructurePrecedence rewrites a head that mixes operators of both
// precedence buckets into the classic three-level shape
//
//	H  -> H lowOp T | T
//	T  -> T highOp F | F
//	F  -> base bodies (self references retargeted to F)
//
// so that * / % bind tighter than the remaining operators. The pass only
// fires when at least two operator alternatives exist and both buckets are
// non-empty; with a single bucket there is nothing to rank.
func restructurePrecedence(g *Grammar) (*Grammar, bool) {
	r := newRewriter(g)
	for _, head := range g.Heads() {
		var high, low []string
		var base []Body
		opCount := 0
		for _, alt := range g.Alternatives(head) {
			op, ok := binaryOperator(head, alt)
			if !ok {
				base = append(base, alt)
				continue
			}
			opCount++
			if _, hi := highPrecOps[op]; hi {
				high = append(high, op)
			} else {
				low = append(low, op)
			}
		}
		if opCount < 2 || len(high) == 0 || len(low) == 0 {
			continue
		}

		term := r.freshHead(head + "T")
		factor := r.freshHead(head + "F")

		headAlts := make([]Body, 0, len(low)+1)
		for _, op := range low {
			headAlts = append(headAlts, Body{NewNonTerminal(head), NewTerminal(op), NewNonTerminal(term)})
		}
		headAlts = append(headAlts, Body{NewNonTerminal(term)})

		termAlts := make([]Body, 0, len(high)+1)
		for _, op := range high {
			termAlts = append(termAlts, Body{NewNonTerminal(term), NewTerminal(op), NewNonTerminal(factor)})
		}
		termAlts = append(termAlts, Body{NewNonTerminal(factor)})

		var factorAlts []Body
		if len(base) == 0 {
			factorAlts = []Body{{NewTerminal("id")}}
		} else {
			for _, alt := range base {
				factorAlts = append(factorAlts, retarget(alt, head, factor))
			}
		}

		r.put(head, headAlts)
		r.put(term, termAlts)
		r.put(factor, factorAlts)
	}
	return r.result()
}
