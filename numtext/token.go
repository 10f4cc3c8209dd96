package numtext

import "fmt"

// Token is the view of a word the scanner needs. Any tokenizer can be used
// with FindNumbers by wrapping its tokens in a type implementing Token.
type Token interface {
	// Text returns the token as it appears in the source.
	Text() string
	// TextLowercase returns the lower-cased text used for lexicon lookups.
	TextLowercase() string
	// NotANumberPart reports whether the token can never belong to a
	// number phrase (punctuation, digits, symbols).
	NotANumberPart() bool
	// NTSeparated reports whether a sentence or clause boundary lies
	// between previous and this token.
	NTSeparated(previous Token) bool
}

// Occurrence is one number phrase found in a token stream.
// Start and End are token positions, End exclusive.
type Occurrence struct {
	Start     int     `json:"start"`
	End       int     `json:"end"`
	Value     float64 `json:"value"`
	Text      string  `json:"text"`   // source span; other Token types get their texts joined by spaces
	Digits    string  `json:"digits"` // digit rendering, e.g. "23", "3rd", "2 1/2"
	IsOrdinal bool    `json:"is_ordinal"`
}

// String returns a debug representation, e.g. "twenty three"[2:4]=23.
func (o Occurrence) String() string {
	return fmt.Sprintf("%q[%d:%d]=%s", o.Text, o.Start, o.End, o.Digits)
}
