package grammar

import (
	"strings"
)

type SymbolKind string

const (
	SymbolKindNonTerminal = SymbolKind("non-terminal")
	SymbolKindTerminal    = SymbolKind("terminal")
	SymbolKindEmpty       = SymbolKind("empty")
)

func (k SymbolKind) String() string {
	return string(k)
}

// EmptyText is the canonical spelling of the empty-sequence symbol. The
// parser accepts the alternative spellings `epsilon` and `eps` but they are
// normalized here, so symbol equality is plain value equality.
const EmptyText = "ε"

// Symbol is one element of a production body. Equality is by (Kind, Text).
type Symbol struct {
	Kind SymbolKind
	Text string
}

func NewNonTerminal(name string) Symbol {
	return Symbol{
		Kind: SymbolKindNonTerminal,
		Text: name,
	}
}

func NewTerminal(text string) Symbol {
	return Symbol{
		Kind: SymbolKindTerminal,
		Text: text,
	}
}

func NewEmpty() Symbol {
	return Symbol{
		Kind: SymbolKindEmpty,
		Text: EmptyText,
	}
}

func (s Symbol) IsNonTerminal() bool {
	return s.Kind == SymbolKindNonTerminal
}

func (s Symbol) IsTerminal() bool {
	return s.Kind == SymbolKindTerminal
}

func (s Symbol) IsEmpty() bool {
	return s.Kind == SymbolKindEmpty
}

func (s Symbol) String() string {
	return s.Text
}

// Body is one alternative of a production.
type Body []Symbol

func (b Body) String() string {
	texts := make([]string, len(b))
	for i, sym := range b {
		texts[i] = sym.Text
	}
	return strings.Join(texts, " ")
}

func (b Body) equal(c Body) bool {
	if len(b) != len(c) {
		return false
	}
	for i, sym := range b {
		if sym != c[i] {
			return false
		}
	}
	return true
}

// isEmptyBody reports whether the body derives only the empty sequence
// without expanding anything, i.e. it consists of empty symbols only.
func (b Body) isEmptyBody() bool {
	for _, sym := range b {
		if !sym.IsEmpty() {
			return false
		}
	}
	return true
}
