package decimal64

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal64")

// InvalidCharacterError indicates that parse input contained a byte
// that is neither an ASCII digit nor the decimal separator.
type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character in input: %c", e.Char)
}

// OverflowError indicates that an input cannot be represented in 64
// bits at the target scale. This includes inputs with more fractional
// digits than the scale supports.
type OverflowError struct {
	Input string
}

func (e *OverflowError) Error() string {
	return "overflow: " + e.Input
}

func errInvalidCharacter(b byte) error {
	return Error.Wrap(&InvalidCharacterError{Char: b})
}

func errOverflow(input []byte) error {
	return Error.Wrap(&OverflowError{Input: string(input)})
}
