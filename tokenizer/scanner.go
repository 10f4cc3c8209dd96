package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// wordTokens splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - Whitespace runs
//   - Number grouping (inner dot or comma between digits)
//   - Words (letters and marks, inner hyphens and apostrophes)
//   - Punctuation, with runs of hyphens and terminal marks merged
//   - Symbol fallback
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		start := i

		switch {
		case unicode.IsSpace(r):
			i = skip(s, i, unicode.IsSpace)
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})

		case isDigitByte(s[i]):
			i = scanNumber(s, i)
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Number})

		case unicode.IsLetter(r):
			i = scanWord(s, i)
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Word})

		case unicode.IsPunct(r):
			i += size
			switch {
			case r == '-':
				i = skip(s, i, func(nr rune) bool { return nr == '-' })
			case isTerminal(r):
				i = skip(s, i, isTerminal)
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})

		default:
			i += size
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Symbol})
		}
	}

	return tokens
}

// skip advances past the runes of s matching keep, starting at pos.
func skip(s string, pos int, keep func(rune) bool) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !keep(r) {
			break
		}
		pos += size
	}
	return pos
}

// scanNumber reads ASCII digits starting at pos. A single dot or comma is
// kept when a digit follows it, so "1,000.50" is one token.
func scanNumber(s string, pos int) int {
	i := pos
	for i < len(s) {
		switch {
		case isDigitByte(s[i]):
			i++
		case (s[i] == '.' || s[i] == ',') && i+1 < len(s) && isDigitByte(s[i+1]):
			i += 2
		default:
			return i
		}
	}
	return i
}

// scanWord reads a word token starting at pos. A word is a run of letters,
// marks, and digits, extended across a single hyphen followed by a letter or
// digit, and across an apostrophe between letters.
func scanWord(s string, pos int) int {
	i := skip(s, pos, isWordRune)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])

		if r == '-' && (unicode.IsLetter(nr) || unicode.IsDigit(nr)) {
			i = skip(s, next, isWordRune)
			continue
		}
		if isApostrophe(r) && unicode.IsLetter(nr) {
			pr, _ := utf8.DecodeLastRuneInString(s[pos:i])
			if unicode.IsLetter(pr) {
				i = skip(s, next, isWordRune)
				continue
			}
		}
		break
	}

	return i
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// isApostrophe matches U+0027, U+2019 and U+02BC.
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!' || r == '…'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
