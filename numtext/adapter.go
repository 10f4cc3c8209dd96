package numtext

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/allo-media/text2num/internal/fold"
	"github.com/allo-media/text2num/tokenizer"
)

// lexical adapts a tokenizer.Token to the Token interface.
type lexical struct {
	tok      tokenizer.Token
	src      string // the tokenized text, tok.Start and tok.End index it
	lower    string
	sentence int  // index of the sentence holding the token
	newline  bool // a newline lies between the previous token and this one
}

func (l *lexical) Text() string          { return l.tok.Text }
func (l *lexical) TextLowercase() string { return l.lower }

func (l *lexical) NotANumberPart() bool {
	return l.tok.Type != tokenizer.Word
}

func (l *lexical) NTSeparated(previous Token) bool {
	p, ok := previous.(*lexical)
	if !ok {
		return false
	}
	return l.newline || l.sentence != p.sentence
}

// Tokenize splits text into the non-space tokens FindNumbers consumes,
// lower-cased with the case rules of tag. Tokens of different sentences,
// or on both sides of a line break, never join into one number.
func Tokenize(text string, tag language.Tag) []Token {
	lex := tokenize(text, tag)
	out := make([]Token, len(lex))
	for i, l := range lex {
		out[i] = l
	}
	return out
}

func tokenize(text string, tag language.Tag) []*lexical {
	words := tokenizer.WordTokens(text)
	if len(words) == 0 {
		return nil
	}
	sentences := tokenizer.SentenceTokens(text)
	f := fold.New(tag)

	out := make([]*lexical, 0, len(words)/2+1)
	sentence, newline := 0, false
	for _, w := range words {
		for sentence+1 < len(sentences) && w.Start >= sentences[sentence].End {
			sentence++
		}
		if w.Type == tokenizer.Space {
			newline = newline || strings.ContainsRune(w.Text, '\n')
			continue
		}
		out = append(out, &lexical{tok: w, src: text, lower: f.Lower(w.Text), sentence: sentence, newline: newline})
		newline = false
	}
	return out
}
