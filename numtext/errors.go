package numtext

import (
	"errors"
	"fmt"
)

// ErrInvalidLiteral is matched by every *LiteralError.
var ErrInvalidLiteral = errors.New("invalid literal for text2num")

// ErrMalformedToken reports a token that breaks the Token contract.
// The scan is aborted, no partial result is returned.
var ErrMalformedToken = errors.New("numtext: malformed token")

// LiteralError reports text that does not compose into one number.
type LiteralError struct {
	Text string // the offending input, as given
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("%s: '%s'", ErrInvalidLiteral, e.Text)
}

// Unwrap allows errors.Is(err, ErrInvalidLiteral).
func (e *LiteralError) Unwrap() error { return ErrInvalidLiteral }
