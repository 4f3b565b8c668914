package grammar

import (
	"fmt"
)

type Severity string

const (
	SeverityHigh   = Severity("High")
	SeverityMedium = Severity("Medium")
	SeverityLow    = Severity("Low")
)

type Status string

const (
	StatusAmbiguous         = Status("ambiguous")
	StatusPossiblyAmbiguous = Status("possibly ambiguous")
	StatusNoneDetected      = Status("none detected")
)

// Reason is one finding of the ambiguity detector.
type Reason struct {
	Type          string
	Description   string
	InvolvedRules []string
	Severity      Severity
}

// Result aggregates all findings. The status derives from the reasons: any
// High severity reason makes the grammar ambiguous, any reason at all makes
// it possibly ambiguous.
type Result struct {
	Status      Status
	Reasons     []*Reason
	Explanation string
}

const undecidabilityNote = "ambiguity of context-free grammars is undecidable in general, so this verdict is not a proof"

// DetectAmbiguity runs the structural pattern checks and folds in the LL(1)
// conflicts. The checks run in a fixed order so reports are stable.
func DetectAmbiguity(g *Grammar) *Result {
	var reasons []*Reason
	reasons = append(reasons, detectExpressionAmbiguity(g)...)
	reasons = append(reasons, detectDanglingElse(g)...)
	reasons = append(reasons, detectPrefixConflicts(g)...)
	reasons = append(reasons, detectMixedRecursion(g)...)
	reasons = append(reasons, detectLL1Reasons(g)...)

	res := &Result{
		Reasons: reasons,
	}
	switch {
	case hasSeverity(reasons, SeverityHigh):
		res.Status = StatusAmbiguous
		res.Explanation = fmt.Sprintf("the grammar is ambiguous: %v high-severity pattern(s) guarantee multiple derivations for some input", countSeverity(reasons, SeverityHigh))
	case len(reasons) > 0:
		res.Status = StatusPossiblyAmbiguous
		res.Explanation = fmt.Sprintf("%v finding(s) suggest the grammar may be ambiguous; %v", len(reasons), undecidabilityNote)
	default:
		res.Status = StatusNoneDetected
		res.Explanation = fmt.Sprintf("no ambiguity pattern detected; %v", undecidabilityNote)
	}
	tracer().Debugf("ambiguity verdict: %v (%d reasons)", res.Status, len(reasons))
	return res
}

func hasSeverity(reasons []*Reason, sev Severity) bool {
	return countSeverity(reasons, sev) > 0
}

func countSeverity(reasons []*Reason, sev Severity) int {
	n := 0
	for _, r := range reasons {
		if r.Severity == sev {
			n++
		}
	}
	return n
}

func ruleText(head string, body Body) string {
	return fmt.Sprintf("%v -> %v", head, body)
}

func isLeftRecursive(head string, body Body) bool {
	return len(body) > 0 && body[0] == NewNonTerminal(head)
}

func isRightRecursive(head string, body Body) bool {
	return len(body) > 0 && body[len(body)-1] == NewNonTerminal(head)
}

// detectExpressionAmbiguity flags bodies that are self-recursive on both
// ends, like E -> E + E: a string "a op b op c" has a left- and a
// right-leaning derivation.
func detectExpressionAmbiguity(g *Grammar) []*Reason {
	var reasons []*Reason
	for _, head := range g.Heads() {
		for _, alt := range g.Alternatives(head) {
			if len(alt) < 3 {
				continue
			}
			if !isLeftRecursive(head, alt) || !isRightRecursive(head, alt) {
				continue
			}
			reasons = append(reasons, &Reason{
				Type:          "Expression Ambiguity",
				Description:   fmt.Sprintf("rule %v is recursive on both ends, so an input of the form \"a op b op c\" can associate either way", ruleText(head, alt)),
				InvolvedRules: []string{ruleText(head, alt)},
				Severity:      SeverityHigh,
			})
		}
	}
	return reasons
}

func bodyHasTerminal(body Body, text string) bool {
	for _, sym := range body {
		if sym.IsTerminal() && sym.Text == text {
			return true
		}
	}
	return false
}

// detectDanglingElse flags heads that have both an if-else alternative and
// a bare-if alternative; an else in nested conditionals then has two
// possible binding sites.
func detectDanglingElse(g *Grammar) []*Reason {
	var reasons []*Reason
	for _, head := range g.Heads() {
		ifElse, ifOnly := danglingElseBodies(g, head)
		if ifElse == nil || ifOnly == nil {
			continue
		}
		reasons = append(reasons, &Reason{
			Type:          "Dangling Else",
			Description:   fmt.Sprintf("non-terminal %v derives a conditional with an else branch and one without, so the else of a nested conditional can bind to either if", head),
			InvolvedRules: []string{ruleText(head, ifElse), ruleText(head, ifOnly)},
			Severity:      SeverityHigh,
		})
	}
	return reasons
}

// danglingElseBodies returns the first if-else alternative and the first
// bare-if alternative of a head, or nils when the pattern is absent.
func danglingElseBodies(g *Grammar, head string) (Body, Body) {
	var ifElse, ifOnly Body
	for _, alt := range g.Alternatives(head) {
		hasIf := bodyHasTerminal(alt, "if")
		hasElse := bodyHasTerminal(alt, "else")
		switch {
		case hasIf && hasElse && ifElse == nil:
			ifElse = alt
		case hasIf && !hasElse && ifOnly == nil:
			ifOnly = alt
		}
	}
	return ifElse, ifOnly
}

// detectPrefixConflicts flags alternative pairs of a head that share a
// non-empty symbol prefix; a top-down parser cannot pick between them on
// one lookahead token.
func detectPrefixConflicts(g *Grammar) []*Reason {
	var reasons []*Reason
	for _, head := range g.Heads() {
		alts := g.Alternatives(head)
		for i := 0; i < len(alts); i++ {
			for j := i + 1; j < len(alts); j++ {
				if alts[i].equal(alts[j]) {
					continue
				}
				if commonPrefixLen(alts[i], alts[j]) == 0 {
					continue
				}
				reasons = append(reasons, &Reason{
					Type:          "Prefix Conflict",
					Description:   fmt.Sprintf("alternatives %v and %v of %v share a common prefix", i+1, j+1, head),
					InvolvedRules: []string{ruleText(head, alts[i]), ruleText(head, alts[j])},
					Severity:      SeverityLow,
				})
			}
		}
	}
	return reasons
}

func commonPrefixLen(a, b Body) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// detectMixedRecursion flags heads that are left-recursive through one
// alternative and right-recursive through a different one.
func detectMixedRecursion(g *Grammar) []*Reason {
	var reasons []*Reason
	for _, head := range g.Heads() {
		alts := g.Alternatives(head)
		var left, right Body
		for _, alt := range alts {
			if left == nil && isLeftRecursive(head, alt) && !isRightRecursive(head, alt) {
				left = alt
			}
		}
		if left == nil {
			continue
		}
		for _, alt := range alts {
			if alt.equal(left) {
				continue
			}
			if isRightRecursive(head, alt) && !isLeftRecursive(head, alt) {
				right = alt
				break
			}
		}
		if right == nil {
			continue
		}
		reasons = append(reasons, &Reason{
			Type:          "Mixed Recursion",
			Description:   fmt.Sprintf("non-terminal %v is left-recursive through one alternative and right-recursive through another", head),
			InvolvedRules: []string{ruleText(head, left), ruleText(head, right)},
			Severity:      SeverityMedium,
		})
	}
	return reasons
}

// detectLL1Reasons folds every LL(1) prediction conflict in as a
// medium-severity reason.
func detectLL1Reasons(g *Grammar) []*Reason {
	ff := GenFirstFollow(g)
	var reasons []*Reason
	for _, c := range ff.Conflicts() {
		alts := g.Alternatives(c.Head)
		reasons = append(reasons, &Reason{
			Type:        "LL(1) Conflict",
			Description: c.Description(),
			InvolvedRules: []string{
				ruleText(c.Head, alts[c.Alternative1-1]),
				ruleText(c.Head, alts[c.Alternative2-1]),
			},
			Severity: SeverityMedium,
		})
	}
	return reasons
}
