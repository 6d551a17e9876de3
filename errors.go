package suffixrank

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("suffixrank: invalid input")
	ErrInvalidUTF8  = errors.New("suffixrank: invalid UTF-8 encoding in input text")
)

// InvalidInputError reports a text the builder refuses to sort.
// Pos is -1 when the text is empty. Symbol keeps the caller's symbol type.
type InvalidInputError struct {
	Pos    int
	Symbol any
	Max    int
}

func (e *InvalidInputError) Error() string {
	if e.Pos < 0 {
		return "suffixrank: invalid input: empty text"
	}
	return fmt.Sprintf("suffixrank: invalid input: symbol %v at position %d outside [%d, %d]",
		e.Symbol, e.Pos, Sentinel+1, e.Max)
}

// Is makes every InvalidInputError match ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
