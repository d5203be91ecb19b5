package parser

import "fmt"

// ErrorKind enumerates the two structured parse error records.
type ErrorKind uint8

const (
	// UnexpectedToken: the input is inconsistent with every active
	// production at this point.
	UnexpectedToken ErrorKind = iota

	// UnexpectedEndOfProgram: the source ended while a production still
	// needed tokens.
	UnexpectedEndOfProgram
)

// SyntaxError is one recorded parse error. Start and End are byte
// offsets of the offending span; rendering them against the source for
// end users is a caller concern.
type SyntaxError struct {
	Kind  ErrorKind
	Start int
	End   int
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Kind == UnexpectedEndOfProgram {
		return fmt.Sprintf("unexpected end of program at %d", e.Start)
	}
	return fmt.Sprintf("unexpected token at %d..%d", e.Start, e.End)
}
