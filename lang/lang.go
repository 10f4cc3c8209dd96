// Package lang holds the number grammars of the supported languages.
//
// A Grammar maps lowercase number words to Lexemes (value, magnitude class,
// ordinal and fraction markers) and lists the connector, sign, decimal
// separator and article words the composition rules of numtext consult.
//
// Grammars are built once during package initialisation and never mutated
// afterwards. They are safe for concurrent use by multiple goroutines.
//
// Supported languages: English (en), French (fr), Spanish (es), German (de),
// Portuguese (pt, including Brazilian spellings) and Catalan (ca).
package lang

import (
	"fmt"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'text2num.lang'
func tracer() tracing.Trace {
	return tracing.Select("text2num.lang")
}

// Class is the structural role of a number word inside one number phrase.
type Class int

const (
	Zero    Class = iota // zero
	Unit                 // 1 to 9
	Teen                 // terminals closing both tens and units: 10 to 19, Spanish 21 to 29
	Ten                  // multiples of ten: 20 to 90
	Hundred              // the hundred multiplier, or precomposed hundreds (Spanish 200 to 900)
	Scale                // powers of one thousand
)

// String returns the name of the class.
func (c Class) String() string {
	switch c {
	case Zero:
		return "Zero"
	case Unit:
		return "Unit"
	case Teen:
		return "Teen"
	case Ten:
		return "Ten"
	case Hundred:
		return "Hundred"
	case Scale:
		return "Scale"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Lexeme is the grammar entry for one number word.
type Lexeme struct {
	Value int64 // numeric contribution; the denominator for fraction words
	Class Class

	Ordinal  bool // ordinal form ("third", "vingtième"); ends its phrase
	Fraction bool // denominator word ("half", "quarts"); ends its phrase

	// TakesTeen marks tens that combine with a teen ("soixante dix-huit").
	TakesTeen bool

	// Composite marks a Hundred that already carries its multiplier
	// ("doscientos") and therefore opens a group instead of multiplying it.
	Composite bool
}

// ordinalStem is an ordinal word stem that takes inflection endings.
type ordinalStem struct {
	stem  string
	value int64
	class Class
}

// Pair is an allowed (previous class, next class) transition.
type Pair struct {
	Left, Right Class
}

// Connector describes where a connector word ("and", "et", "und", "y") may
// sit inside a number phrase.
type Connector struct {
	Pairs []Pair

	// Right, when non-nil, restricts the word following the connector
	// ("vingt et un" but not "vingt et deux").
	Right map[string]bool

	// Fraction allows a mixed fraction after the connector ("two and a half").
	Fraction bool
}

// Follows reports whether the connector may come after a word of class left.
func (c Connector) Follows(left Class) bool {
	if c.Fraction {
		return true
	}
	for _, p := range c.Pairs {
		if p.Left == left {
			return true
		}
	}
	return false
}

// Allows reports whether the connector may join a word of class left to the
// following word of class right spelled next.
func (c Connector) Allows(left, right Class, next string) bool {
	if c.Right != nil && !c.Right[next] {
		return false
	}
	for _, p := range c.Pairs {
		if p.Left == left && p.Right == right {
			return true
		}
	}
	return false
}

// Grammar is the immutable number grammar of one language.
type Grammar struct {
	id   string
	name string
	tag  language.Tag

	lexicon    map[string]Lexeme
	connectors map[string]Connector
	signs      map[string]string
	decimals   map[string]string
	articles   map[string]bool

	implicitHundred  bool
	implicitThousand bool
	inlineThousand   bool
	scaleStacking    bool
	unitBeforeTen    bool
	compounds        bool
	leadingZeros     bool
	bareDecimal      bool
	ordinalChain     bool

	words *trie.Trie // lexicon and connector words, for segmentation

	suffix func(value int64, word string) string
	spell  func(n int64) string
}

// ID returns the language identifier ("en", "fr", ...).
func (g *Grammar) ID() string { return g.id }

// Name returns the English name of the language.
func (g *Grammar) Name() string { return g.name }

// Tag returns the BCP 47 tag of the language.
func (g *Grammar) Tag() language.Tag { return g.tag }

// Lookup returns the Lexeme for a lowercase word.
func (g *Grammar) Lookup(word string) (Lexeme, bool) {
	lx, ok := g.lexicon[word]
	return lx, ok
}

// Connector returns the connector rules for word.
func (g *Grammar) Connector(word string) (Connector, bool) {
	c, ok := g.connectors[word]
	return c, ok
}

// Sign returns "+" or "-" when word is a sign word.
func (g *Grammar) Sign(word string) (string, bool) {
	s, ok := g.signs[word]
	return s, ok
}

// DecimalSeparator returns the decimal symbol rendered for a separator word
// ("point" → ".", "virgule" → ",").
func (g *Grammar) DecimalSeparator(word string) (string, bool) {
	s, ok := g.decimals[word]
	return s, ok
}

// IsArticle reports whether word is an article that may introduce the
// fraction of a mixed number ("and a half").
func (g *Grammar) IsArticle(word string) bool {
	return g.articles[word]
}

// ImplicitHundred reports whether a bare hundred word means one hundred.
func (g *Grammar) ImplicitHundred() bool { return g.implicitHundred }

// ImplicitThousand reports whether a bare thousand word opening a phrase
// means one thousand.
func (g *Grammar) ImplicitThousand() bool { return g.implicitThousand }

// InlineThousand reports whether a bare thousand word may also follow a larger
// scale ("un millón mil"). Where it may not, "one million thousand" is two
// numbers.
func (g *Grammar) InlineThousand() bool { return g.inlineThousand }

// ScaleStacking reports whether a larger scale word may multiply an already
// scaled value ("mil millones", "mille millions").
func (g *Grammar) ScaleStacking() bool { return g.scaleStacking }

// UnitBeforeTen reports whether units precede tens through a connector
// ("dreiundzwanzig"). Such languages reject a unit directly after a ten.
func (g *Grammar) UnitBeforeTen() bool { return g.unitBeforeTen }

// LeadingZeros reports whether zeros may open a number phrase and are kept
// in its digits ("zero eight" → "08").
func (g *Grammar) LeadingZeros() bool { return g.leadingZeros }

// BareDecimal reports whether a phrase may start at the decimal separator
// ("point five" → "0.5").
func (g *Grammar) BareDecimal() bool { return g.bareDecimal }

// OrdinalChain reports whether compound ordinals are spelled as a sequence of
// ordinal words ("vigésimo primero" is 21st).
func (g *Grammar) OrdinalChain() bool { return g.ordinalChain }

// OrdinalSuffix returns the digit-notation suffix for an ordinal of value
// spelled as word ("st", "ème", "º", ".").
func (g *Grammar) OrdinalSuffix(value int64, word string) string {
	return g.suffix(value, word)
}

// Spell returns a reference cardinal spelling of n, or "" when n lies outside
// [0, MaxSpell).
func (g *Grammar) Spell(n int64) string {
	if n < 0 || n >= MaxSpell {
		return ""
	}
	return g.spell(n)
}

// MaxSpell is the exclusive upper bound of Grammar.Spell.
const MaxSpell int64 = 1_000_000_000_000

func newGrammar(id, name string) *Grammar {
	return &Grammar{
		id:         id,
		name:       name,
		tag:        language.MustParse(id),
		lexicon:    make(map[string]Lexeme),
		connectors: make(map[string]Connector),
		signs:      make(map[string]string),
		decimals:   make(map[string]string),
		articles:   make(map[string]bool),
	}
}

// add registers words with the same lexeme. Only used while building.
func (g *Grammar) add(lx Lexeme, words ...string) {
	for _, w := range words {
		g.lexicon[w] = lx
	}
}

// cardinals registers words[i] with value start+i*step.
func (g *Grammar) cardinals(class Class, start, step int64, words ...string) {
	for i, w := range words {
		g.add(Lexeme{Value: start + int64(i)*step, Class: class}, w)
	}
}

// freeze builds the segmentation trie. The grammar is read-only afterwards.
func (g *Grammar) freeze() *Grammar {
	g.words = trie.New()
	for w, lx := range g.lexicon {
		g.words.Add(w, lx)
	}
	for w, c := range g.connectors {
		g.words.Add(w, c)
	}
	return g
}
