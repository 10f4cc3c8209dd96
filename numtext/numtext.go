// Package numtext turns number words into digits.
//
// The package works at three levels:
//
//   - TextToNum and Text2Digits compose a whole string that must be exactly
//     one number phrase ("two hundred and five" → 205, "twenty third" → "23rd").
//   - FindNumbers locates number phrases in an arbitrary token stream and
//     returns them as ordered, non-overlapping Occurrences.
//   - Alpha2Digit rewrites number phrases inside free text, leaving every
//     other byte untouched.
//
// Lone small cardinals ("I have two cats") stay spelled out unless their
// value reaches the threshold, while grouped numbers and ordinals are
// always converted. Digit-by-digit dictation ("one two three") is converted
// as a whole, and where the language allows it leading zeros are kept
// ("zero six" → "06").
//
// Grammars come from package lang. All functions are safe for concurrent use
// by multiple goroutines.
//
// Known limitations:
//
//   - Integer range is limited to ±10^18.
//   - TextToNum rejects decimals and fractions; use Text2Digits for them.
package numtext

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/allo-media/text2num/internal/fold"
	"github.com/allo-media/text2num/lang"
)

// DefaultThreshold is the value below which isolated cardinals stay spelled out.
const DefaultThreshold = 3.0

// tracer writes to trace with key 'text2num.numtext'
func tracer() tracing.Trace {
	return tracing.Select("text2num.numtext")
}

// TextToNum returns the integer value of text, which must be exactly one
// cardinal or ordinal number phrase in language langID.
func TextToNum(text, langID string) (int64, error) {
	g, err := lang.Get(langID)
	if err != nil {
		return 0, err
	}
	acc, err := compose(text, g)
	if err != nil {
		return 0, err
	}
	switch acc.phase {
	case phaseInteger, phaseZero, phaseOrdinal:
	default:
		return 0, &LiteralError{Text: text}
	}
	v := acc.integerValue()
	if acc.negative() {
		v = -v
	}
	return v, nil
}

// Text2Digits returns the digit rendering of text, which must be exactly one
// number phrase: "minus twelve point five" → "-12.5", "three quarters" → "3/4".
func Text2Digits(text, langID string) (string, error) {
	g, err := lang.Get(langID)
	if err != nil {
		return "", err
	}
	acc, err := compose(text, g)
	if err != nil {
		return "", err
	}
	return acc.render(), nil
}

// FindNumbers returns the number phrases of tokens in language langID.
// Isolated cardinals below threshold are left out.
func FindNumbers(tokens []Token, langID string, threshold float64) ([]Occurrence, error) {
	g, err := lang.Get(langID)
	if err != nil {
		return nil, err
	}
	return scan(tokens, g, threshold)
}

// Alpha2Digit rewrites the number phrases of text in language langID as
// digits. Isolated cardinals below threshold are left out.
func Alpha2Digit(text, langID string, threshold float64) (string, error) {
	g, err := lang.Get(langID)
	if err != nil {
		return "", err
	}
	return Replace(text, g, threshold), nil
}

// Spell returns the cardinal words for n in language langID, the inverse of
// TextToNum for 0 <= n < lang.MaxSpell. It returns "" outside that range.
func Spell(n int64, langID string) (string, error) {
	g, err := lang.Get(langID)
	if err != nil {
		return "", err
	}
	return g.Spell(n), nil
}

// compose folds every whitespace-separated word of text into one phrase.
func compose(text string, g *lang.Grammar) (accumulator, error) {
	words := strings.Fields(fold.Lower(g.Tag(), text))
	if len(words) == 0 {
		return accumulator{}, &LiteralError{Text: text}
	}
	acc := newAccumulator(g)
	for _, w := range words {
		next, ok := acc.pushToken(w)
		if !ok {
			tracer().Debugf("numtext: %q rejected at %q in phase %s", text, w, acc.phase)
			return accumulator{}, &LiteralError{Text: text}
		}
		acc = next
	}
	if !acc.phase.complete() {
		tracer().Debugf("numtext: %q ends in phase %s", text, acc.phase)
		return accumulator{}, &LiteralError{Text: text}
	}
	return acc, nil
}
