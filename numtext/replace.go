package numtext

import (
	"strings"

	"github.com/allo-media/text2num/lang"
)

// Replace rewrites every number phrase of text found with grammar g as
// digits. Bytes outside the replaced phrases are copied unchanged.
func Replace(text string, g *lang.Grammar, threshold float64) string {
	lex := tokenize(text, g.Tag())
	if len(lex) == 0 {
		return text
	}
	tokens := make([]Token, len(lex))
	for i, l := range lex {
		tokens[i] = l
	}
	occs, err := scan(tokens, g, threshold)
	if err != nil || len(occs) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, o := range occs {
		from, to := lex[o.Start].tok.Start, lex[o.End-1].tok.End
		b.WriteString(text[pos:from])
		b.WriteString(o.Digits)
		pos = to
	}
	b.WriteString(text[pos:])
	return b.String()
}
