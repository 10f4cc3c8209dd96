// Occurrence scanning over token streams.
package numtext

import (
	"fmt"
	"strings"

	"github.com/allo-media/text2num/lang"
)

// scanner finds number phrases left to right. From each start position it
// extends the phrase token by token and keeps the last complete state, so a
// trailing connector, sign or separator that nothing continues is left out.
type scanner struct {
	g         *lang.Grammar
	tokens    []Token
	lower     []string
	threshold float64

	out  []Occurrence
	held *Occurrence // low isolated cardinal, emitted only if a neighbour touches it
}

func scan(tokens []Token, g *lang.Grammar, threshold float64) ([]Occurrence, error) {
	s := &scanner{g: g, tokens: tokens, threshold: threshold, lower: make([]string, len(tokens))}
	for i, t := range tokens {
		if t == nil {
			return nil, fmt.Errorf("%w: token %d is nil", ErrMalformedToken, i)
		}
		s.lower[i] = t.TextLowercase()
	}

	for i := 0; i < len(tokens); {
		i = s.phrase(i)
	}
	tracer().Debugf("numtext: %d occurrences in %d tokens", len(s.out), len(tokens))
	return s.out, nil
}

// phrase scans the longest complete phrase starting at start and returns the
// position where scanning resumes.
func (s *scanner) phrase(start int) int {
	if s.tokens[start].NotANumberPart() {
		return start + 1
	}
	acc, ok := newAccumulator(s.g).pushToken(s.lower[start])
	if !ok {
		return start + 1
	}

	best, end := acc, start
	if acc.phase.complete() {
		end = start + 1
	}
	for j := start + 1; j < len(s.tokens); j++ {
		t := s.tokens[j]
		if t.NotANumberPart() || t.NTSeparated(s.tokens[j-1]) {
			break
		}
		next, ok := acc.pushToken(s.lower[j])
		if !ok {
			break
		}
		acc = next
		if acc.phase.complete() {
			best, end = acc, j+1
		}
	}
	if end == start {
		return start + 1
	}
	s.emit(best, start, end)
	return end
}

// emit applies the isolation policy to a complete phrase.
func (s *scanner) emit(acc accumulator, start, end int) {
	occ := Occurrence{
		Start:     start,
		End:       end,
		Value:     acc.value(),
		Text:      s.text(start, end),
		Digits:    acc.render(),
		IsOrdinal: acc.phase == phaseOrdinal,
	}

	lone := end-start == 1 && acc.words == 1
	if lone && !occ.IsOrdinal && !acc.scaleOnly() && occ.Value < s.threshold {
		if s.touches(start) {
			s.flush()
			s.out = append(s.out, occ)
			return
		}
		tracer().Debugf("numtext: %q below threshold %g, held", occ.Text, s.threshold)
		s.held = &occ
		return
	}

	if s.held != nil && s.held.End == start && !occ.IsOrdinal && !s.separated(start) {
		s.flush()
	}
	s.held = nil
	s.out = append(s.out, occ)
}

// touches reports whether a cardinal occurrence ends right at start, with no
// sentence or line boundary in between.
func (s *scanner) touches(start int) bool {
	if s.separated(start) {
		return false
	}
	if s.held != nil {
		return s.held.End == start
	}
	n := len(s.out)
	return n > 0 && !s.out[n-1].IsOrdinal && s.out[n-1].End == start
}

// separated reports whether a boundary lies between tokens i-1 and i.
func (s *scanner) separated(i int) bool {
	return i > 0 && s.tokens[i].NTSeparated(s.tokens[i-1])
}

func (s *scanner) flush() {
	if s.held != nil {
		s.out = append(s.out, *s.held)
		s.held = nil
	}
}

// text returns the source substring of the span when the tokens come from
// Tokenize, or the token texts joined by single spaces otherwise.
func (s *scanner) text(start, end int) string {
	if first, ok := s.tokens[start].(*lexical); ok {
		if last, ok := s.tokens[end-1].(*lexical); ok {
			return first.src[first.tok.Start:last.tok.End]
		}
	}
	parts := make([]string, 0, end-start)
	for _, t := range s.tokens[start:end] {
		parts = append(parts, t.Text())
	}
	return strings.Join(parts, " ")
}
