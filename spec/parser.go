package spec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	verr "github.com/manideep395/KRS-Ambiguity-Checker/error"
)

type RootNode struct {
	Productions []*ProductionNode
}

type ProductionNode struct {
	LHS string
	RHS []*AlternativeNode
	Pos Position
}

type AlternativeNode struct {
	Elements []*ElementNode
	Pos      Position
}

type ElementNode struct {
	Kind ElementKind
	Text string
	Pos  Position
}

// Parser reads the production-rule notation. One production per non-empty,
// non-comment line:
//
//	Head -> Alt1 | Alt2 | ...
//
// The arrow may be the ASCII `->` or the Unicode arrow. Compact enables the
// compact notation scanner (see tokenizeAlternative); SourceName, when set,
// prefixes error positions.
type Parser struct {
	Compact    bool
	SourceName string
}

// Parse accumulates every error it finds rather than stopping at the first
// one. A nil error list means the AST is complete.
func (p Parser) Parse(src io.Reader) (*RootNode, verr.SpecErrors) {
	var prods []*ProductionNode
	var errs verr.SpecErrors

	scanner := bufio.NewScanner(src)
	row := 0
	for scanner.Scan() {
		row++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		prod, prodErrs := p.parseLine(line, row)
		errs = append(errs, prodErrs...)
		if prod != nil {
			prods = append(prods, prod)
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, p.specError(err, 0, 0))
	}

	if len(prods) == 0 && len(errs) == 0 {
		errs = append(errs, p.specError(synErrNoProduction, 0, 0))
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &RootNode{
		Productions: prods,
	}, nil
}

func (p Parser) parseLine(line string, row int) (*ProductionNode, verr.SpecErrors) {
	head, rhs, arrowCol, ok := splitArrow(line)
	if !ok {
		return nil, verr.SpecErrors{p.specError(synErrNoArrow, row, 1)}
	}

	headText := strings.TrimSpace(head)
	headCol := utf8.RuneCountInString(line[:strings.Index(line, headText)]) + 1
	if !nonTermIDRE.MatchString(headText) {
		cause := fmt.Errorf("%w: %q", synErrInvalidHead, headText)
		return nil, verr.SpecErrors{p.specError(cause, row, headCol)}
	}

	var errs verr.SpecErrors
	var alts []*AlternativeNode
	col := arrowCol
	for _, altText := range strings.Split(rhs, "|") {
		altCol := col + utf8.RuneCountInString(altText) - utf8.RuneCountInString(strings.TrimLeft(altText, " \t"))
		trimmed := strings.TrimSpace(altText)
		if trimmed == "" {
			errs = append(errs, p.specError(synErrEmptyAlternative, row, col))
		} else {
			pos := newPosition(row, altCol)
			alts = append(alts, &AlternativeNode{
				Elements: tokenizeAlternative(trimmed, pos, p.Compact),
				Pos:      pos,
			})
		}
		col += utf8.RuneCountInString(altText) + 1
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &ProductionNode{
		LHS: headText,
		RHS: alts,
		Pos: newPosition(row, headCol),
	}, nil
}

// splitArrow cuts a production line at the first arrow. The returned column
// is the 1-based rune position just after the arrow; byte offsets would
// drift on lines holding the Unicode arrow or ε.
func splitArrow(line string) (head, rhs string, col int, ok bool) {
	if i := strings.Index(line, "->"); i >= 0 {
		return line[:i], line[i+2:], utf8.RuneCountInString(line[:i+2]) + 1, true
	}
	if i := strings.Index(line, "→"); i >= 0 {
		w := len("→")
		return line[:i], line[i+w:], utf8.RuneCountInString(line[:i+w]) + 1, true
	}
	return "", "", 0, false
}

func (p Parser) specError(cause error, row, col int) *verr.SpecError {
	return &verr.SpecError{
		Cause:      cause,
		SourceName: p.SourceName,
		Row:        row,
		Col:        col,
	}
}

// Parse reads a grammar source with the default whitespace tokenization.
func Parse(src io.Reader) (*RootNode, verr.SpecErrors) {
	return Parser{}.Parse(src)
}
