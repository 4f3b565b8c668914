package error

import (
	"fmt"
	"strings"
)

// SpecError is a positioned error in a grammar source. Row 0 means the error
// is not tied to a particular line (e.g. a symbol used but never defined).
type SpecError struct {
	Cause      error
	SourceName string
	Row        int
	Col        int
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v", e.Row)
		if e.Col != 0 {
			fmt.Fprintf(&b, ":%v", e.Col)
		}
		fmt.Fprintf(&b, ": ")
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	return b.String()
}

// SpecErrors accumulates every error found in one grammar source. The parser
// never fails fast; callers receive all of the errors at once.
type SpecErrors []*SpecError

func (e SpecErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, err := range e[1:] {
		fmt.Fprintf(&b, "\n%v", err)
	}
	return b.String()
}
