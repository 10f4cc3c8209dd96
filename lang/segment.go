package lang

import (
	"strings"
	"unicode/utf8"
)

// Segment splits one lowercase token into grammar words (lexicon entries and
// connectors). Hyphenated tokens are split by greedy longest match over their
// hyphen-separated parts, so "quatre-vingt-dix-huit" yields "quatre-vingt" and
// "dix-huit". In compound languages each part that is not a word by itself is
// decomposed by longest prefix with backtracking:
// "dreiundzwanzig" yields "drei", "und", "zwanzig".
//
// The second result is false when the token is not made of grammar words.
func (g *Grammar) Segment(token string) ([]string, bool) {
	if token == "" {
		return nil, false
	}
	if g.known(token) {
		return []string{token}, true
	}
	parts := strings.Split(token, "-")
	if len(parts) == 1 && !g.compounds {
		return nil, false
	}

	out := make([]string, 0, len(parts)+2)
	for i := 0; i < len(parts); {
		if parts[i] == "" {
			return nil, false
		}
		j := len(parts)
		for ; j > i; j-- {
			if g.known(strings.Join(parts[i:j], "-")) {
				break
			}
		}
		if j > i {
			out = append(out, strings.Join(parts[i:j], "-"))
			i = j
			continue
		}
		if !g.compounds {
			return nil, false
		}
		sub, ok := g.decompose(parts[i])
		if !ok {
			return nil, false
		}
		out = append(out, sub...)
		i++
	}
	return out, true
}

func (g *Grammar) known(w string) bool {
	if _, ok := g.lexicon[w]; ok {
		return true
	}
	_, ok := g.connectors[w]
	return ok
}

// decompose splits a glued compound into trie words. Failed offsets are
// memoised so the backtracking stays linear in practice.
func (g *Grammar) decompose(s string) ([]string, bool) {
	failed := make(map[int]bool)

	var walk func(pos int) []string
	walk = func(pos int) []string {
		if pos == len(s) {
			return []string{}
		}
		if failed[pos] {
			return nil
		}
		var ends []int
		for end := pos; end < len(s); {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			prefix := s[pos:end]
			if !g.words.HasKeysWithPrefix(prefix) {
				break
			}
			if _, ok := g.words.Find(prefix); ok {
				ends = append(ends, end)
			}
		}
		for k := len(ends) - 1; k >= 0; k-- {
			if rest := walk(ends[k]); rest != nil {
				return append([]string{s[pos:ends[k]]}, rest...)
			}
		}
		failed[pos] = true
		return nil
	}

	parts := walk(0)
	if len(parts) == 0 {
		return nil, false
	}
	return parts, true
}
