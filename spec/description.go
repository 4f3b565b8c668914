package spec

// Report is the analysis artifact written by `krs analyze --json` and
// rendered by `krs show`.

type Reason struct {
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	InvolvedRules []string `json:"involved_rules"`
	Severity      string   `json:"severity"`
}

type Conflict struct {
	Kind         string   `json:"kind"`
	NonTerminal  string   `json:"non_terminal"`
	Alternative1 int      `json:"alternative_1"`
	Alternative2 int      `json:"alternative_2"`
	Terminals    []string `json:"terminals"`
}

type SymbolSets struct {
	Symbol string   `json:"symbol"`
	First  []string `json:"first"`
	Follow []string `json:"follow,omitempty"`
}

type Step struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Before      string `json:"before"`
	After       string `json:"after"`
}

type Report struct {
	Status      string        `json:"status"`
	Source      string        `json:"source"`
	Explanation string        `json:"explanation"`
	Converted   string        `json:"converted,omitempty"`
	Reasons     []*Reason     `json:"reasons"`
	Conflicts   []*Conflict   `json:"conflicts"`
	Unreachable []string      `json:"unreachable"`
	Symbols     []*SymbolSets `json:"symbols"`
	Steps       []*Step       `json:"steps"`
}
