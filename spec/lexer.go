package spec

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

type ElementKind string

const (
	ElementKindNonTerminal = ElementKind("non-terminal")
	ElementKindTerminal    = ElementKind("terminal")
	ElementKindEmpty       = ElementKind("empty")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

var nonTermIDRE = regexp.MustCompile(`^[A-Z][A-Za-z0-9'_]*$`)

func isEmptySpelling(text string) bool {
	switch text {
	case "ε", "epsilon", "eps":
		return true
	}
	return false
}

// tokenizeAlternative splits the text of one alternative into symbol
// elements. Tokens are separated by whitespace; a token matching the
// non-terminal ID pattern becomes a non-terminal, one of the epsilon
// spellings becomes the empty symbol, and anything else is a literal
// terminal.
//
// In compact mode a chunk is additionally scanned character-wise: an
// uppercase letter opens a non-terminal token that consumes following
// lowercase letters, digits, primes, and underscores up to the next
// uppercase letter, and every other character is a single-character
// terminal. A chunk made of name-tail runes only carries no structure for
// the scan to find and is kept whole, so whitespace-separated lowercase
// tokens like `id` tokenize the same in both modes. The scan is heuristic
// and lossy for some inputs: `Sa` is the non-terminal `Sa`, which compact
// sources cannot distinguish from the two tokens `S a`.
func tokenizeAlternative(text string, pos Position, compact bool) []*ElementNode {
	var elems []*ElementNode
	col := pos.Col
	rest := text
	for rest != "" {
		trimmed := strings.TrimLeft(rest, " \t")
		col += len(rest) - len(trimmed)
		if trimmed == "" {
			break
		}
		chunk := trimmed
		if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
			chunk = trimmed[:i]
		}
		rest = trimmed[len(chunk):]

		chunkPos := newPosition(pos.Row, col)
		col += utf8.RuneCountInString(chunk)

		switch {
		case isEmptySpelling(chunk):
			elems = append(elems, &ElementNode{
				Kind: ElementKindEmpty,
				Text: chunk,
				Pos:  chunkPos,
			})
		case compact && needsCompactScan(chunk):
			elems = append(elems, scanCompactChunk(chunk, chunkPos)...)
		case nonTermIDRE.MatchString(chunk):
			elems = append(elems, &ElementNode{
				Kind: ElementKindNonTerminal,
				Text: chunk,
				Pos:  chunkPos,
			})
		default:
			elems = append(elems, &ElementNode{
				Kind: ElementKindTerminal,
				Text: chunk,
				Pos:  chunkPos,
			})
		}
	}
	return elems
}

func isUpperASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isNonTermTailRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '\'' || r == '_'
}

// needsCompactScan reports whether a chunk of the compact notation must be
// scanned character-wise. Uppercase letters, ε, and operator characters all
// demand a scan; a chunk of name-tail runes only does not.
func needsCompactScan(chunk string) bool {
	return strings.IndexFunc(chunk, func(r rune) bool {
		return !isNonTermTailRune(r)
	}) >= 0
}

// scanCompactChunk scans a whitespace-free chunk of the compact notation.
// Non-terminal names end at the next uppercase letter, so `EA` is the two
// non-terminals `E` and `A` even though `EA` matches the ID pattern.
func scanCompactChunk(chunk string, pos Position) []*ElementNode {
	var elems []*ElementNode
	runes := []rune(chunk)
	for i := 0; i < len(runes); {
		r := runes[i]
		elemPos := newPosition(pos.Row, pos.Col+i)
		switch {
		case isUpperASCII(r):
			j := i + 1
			for j < len(runes) && isNonTermTailRune(runes[j]) {
				j++
			}
			elems = append(elems, &ElementNode{
				Kind: ElementKindNonTerminal,
				Text: string(runes[i:j]),
				Pos:  elemPos,
			})
			i = j
		case r == 'ε':
			elems = append(elems, &ElementNode{
				Kind: ElementKindEmpty,
				Text: string(r),
				Pos:  elemPos,
			})
			i++
		default:
			elems = append(elems, &ElementNode{
				Kind: ElementKindTerminal,
				Text: string(r),
				Pos:  elemPos,
			})
			i++
		}
	}
	return elems
}
