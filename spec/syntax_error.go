package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	synErrNoArrow          = newSyntaxError("a production needs an arrow between its head and its alternatives")
	synErrInvalidHead      = newSyntaxError("a production head must start with an uppercase letter")
	synErrEmptyAlternative = newSyntaxError("an alternative must contain at least one symbol; use ε for the empty sequence")
	synErrNoProduction     = newSyntaxError("no productions found")
)
