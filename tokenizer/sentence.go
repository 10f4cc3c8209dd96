package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations lists lowercase words that are usually followed by a dot
// without ending the sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true, "st": true,
	"vs": true, "etc": true, "no": true, "mme": true, "mlle": true, "sr": true,
	"sra": true, "dra": true, "hr": true, "fr": true, "nr": true, "bzw": true,
}

// sentenceTokens splits s into sentence-level tokens.
// Adjacent tokens cover the entire input without gaps or overlaps:
// concatenating all Token.Text values reconstructs s exactly.
func sentenceTokens(s string) []Token {
	words := wordTokens(s)
	tokens := make([]Token, 0, len(words)/32+1)
	sentStart := 0

	for i, t := range words {
		if !endsSentence(words, i) {
			continue
		}
		tokens = append(tokens, Token{Text: s[sentStart:t.End], Start: sentStart, End: t.End, Type: Sentence})
		sentStart = t.End
	}

	if sentStart < len(s) {
		tokens = append(tokens, Token{Text: s[sentStart:], Start: sentStart, End: len(s), Type: Sentence})
	}
	return tokens
}

// endsSentence reports whether a sentence boundary falls right after words[i].
func endsSentence(words []Token, i int) bool {
	t := words[i]
	switch t.Type {
	case Space:
		// A blank line ends the sentence, the newlines stay with it.
		return strings.Count(t.Text, "\n") >= 2 && i+1 < len(words)
	case Punctuation:
		r, _ := utf8.DecodeRuneInString(t.Text)
		if !isTerminal(r) || i+2 >= len(words) {
			return false
		}
		if words[i+1].Type != Space || strings.Count(words[i+1].Text, "\n") >= 2 {
			return false
		}
		if t.Text == "." && i > 0 && words[i-1].Type == Word && abbreviations[strings.ToLower(words[i-1].Text)] {
			return false
		}
		first, _ := utf8.DecodeRuneInString(words[i+2].Text)
		return unicode.IsUpper(first)
	}
	return false
}
