// Composition of number words into one value.
package numtext

import (
	"strconv"
	"strings"

	"github.com/allo-media/text2num/lang"
)

// maxAbs bounds every composed integer: ±10^18.
const maxAbs int64 = 1_000_000_000_000_000_000

// phase is the tagged state of an accumulator.
type phase int

const (
	phaseEmpty     phase = iota // nothing consumed
	phaseSigned                 // a sign word, a number must follow
	phaseInteger                // composing an integer
	phaseZero                   // leading zeros only
	phaseConnector              // a connector, the next word must fit its class pairs
	phaseArticle                // "and a": a fraction word must follow
	phaseSeparator              // a decimal separator, a digit word must follow
	phaseDecimal                // digits after the separator
	phaseOrdinal                // an ordinal; only a compound ordinal continues
	phaseFraction               // terminal
)

var phaseNames = [...]string{
	"Empty", "Signed", "Integer", "Zero", "Connector",
	"Article", "Separator", "Decimal", "Ordinal", "Fraction",
}

func (p phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "phase(" + strconv.Itoa(int(p)) + ")"
}

// complete reports whether a phrase may end in this phase.
func (p phase) complete() bool {
	switch p {
	case phaseInteger, phaseZero, phaseDecimal, phaseOrdinal, phaseFraction:
		return true
	}
	return false
}

// group is the three-digit group under construction.
type group struct {
	value     int64
	last      lang.Class
	open      bool
	takesTeen bool
}

// add folds a non-scale lexeme into the group.
// via is set when a connector word precedes lx.
func (gr group) add(g *lang.Grammar, lx lang.Lexeme, via bool) (group, bool) {
	if !gr.open {
		switch lx.Class {
		case lang.Unit, lang.Teen, lang.Ten:
			return group{value: lx.Value, last: lx.Class, open: true, takesTeen: lx.TakesTeen}, true
		case lang.Hundred:
			if !lx.Composite && !g.ImplicitHundred() {
				return gr, false
			}
			return group{value: lx.Value, last: lang.Hundred, open: true}, true
		}
		return gr, false
	}

	ok := false
	switch lx.Class {
	case lang.Unit:
		switch gr.last {
		case lang.Ten:
			ok = !g.UnitBeforeTen()
		case lang.Hundred:
			ok = true
		}
	case lang.Teen:
		switch gr.last {
		case lang.Ten:
			ok = gr.takesTeen && !g.UnitBeforeTen()
		case lang.Hundred:
			ok = true
		}
	case lang.Ten:
		switch gr.last {
		case lang.Unit:
			ok = via && g.UnitBeforeTen()
		case lang.Hundred:
			ok = true
		}
	case lang.Hundred:
		if lx.Composite {
			return gr, false
		}
		switch gr.last {
		case lang.Unit:
			ok = gr.value < 10
		case lang.Teen:
			ok = gr.value < 20
		}
		if !ok {
			return gr, false
		}
		return group{value: gr.value * lx.Value, last: lang.Hundred, open: true}, true
	}
	if !ok {
		return gr, false
	}
	return group{value: gr.value + lx.Value, last: lx.Class, open: true, takesTeen: lx.TakesTeen}, true
}

// accumulator composes one number phrase. It is a value type: every push
// returns the extended copy and leaves the receiver unchanged, which lets
// the scanner roll back to the last complete state for free.
type accumulator struct {
	g     *lang.Grammar
	phase phase
	sign  string
	words int

	zeros     int   // leading zero words
	total     int64 // value of the closed scale groups
	cur       group
	lastScale int64

	conn     lang.Connector
	connLeft lang.Class
	decConn  bool // the connector joins words of a fractional digit group

	decimal string // rendered decimal symbol
	digits  string // flushed fractional digit groups
	sub     group  // digit group after the separator

	ordinal  string // the ordinal word, for its suffix
	ordLast  int64  // value of that word, for compound ordinals
	whole    int64  // integral part of a mixed fraction
	num, den int64
	mixed    bool
}

func newAccumulator(g *lang.Grammar) accumulator {
	return accumulator{g: g}
}

// pushToken folds one lowercase token, segmenting hyphenated and compound
// spellings first. The token is accepted whole or not at all.
func (a accumulator) pushToken(tok string) (accumulator, bool) {
	parts, ok := a.g.Segment(tok)
	if !ok {
		return a.push(tok)
	}
	b := a
	for _, w := range parts {
		if b, ok = b.push(w); !ok {
			return a, false
		}
	}
	return b, true
}

// push folds one word.
func (a accumulator) push(w string) (accumulator, bool) {
	if a.phase == phaseFraction || a.phase == phaseOrdinal && !a.g.OrdinalChain() {
		return a, false
	}
	b, ok := a.step(w)
	if !ok {
		return a, false
	}
	b.words++
	return b, true
}

func (a accumulator) step(w string) (accumulator, bool) {
	if s, ok := a.g.Sign(w); ok {
		if a.phase != phaseEmpty {
			return a, false
		}
		a.sign, a.phase = s, phaseSigned
		return a, true
	}
	if sym, ok := a.g.DecimalSeparator(w); ok {
		switch a.phase {
		case phaseInteger, phaseZero:
		case phaseEmpty, phaseSigned:
			if !a.g.BareDecimal() {
				return a, false
			}
		default:
			return a, false
		}
		a.decimal, a.phase = sym, phaseSeparator
		return a, true
	}
	if a.g.IsArticle(w) {
		if a.phase != phaseConnector || !a.conn.Fraction || a.decConn || a.zeros > 0 {
			return a, false
		}
		a.phase = phaseArticle
		return a, true
	}
	if c, ok := a.g.Connector(w); ok {
		switch {
		case a.phase == phaseInteger && c.Follows(a.lastClass()):
			a.conn, a.connLeft = c, a.lastClass()
		case a.phase == phaseDecimal && a.sub.open && c.Follows(a.sub.last):
			a.conn, a.connLeft, a.decConn = c, a.sub.last, true
		default:
			return a, false
		}
		a.phase = phaseConnector
		return a, true
	}
	lx, ok := a.g.Lookup(w)
	if !ok {
		return a, false
	}
	return a.fold(lx, w)
}

// lastClass is the class the next word attaches to: the last word of the
// open group, or Scale right after a scale word.
func (a accumulator) lastClass() lang.Class {
	if a.cur.open {
		return a.cur.last
	}
	if a.lastScale > 0 {
		return lang.Scale
	}
	return lang.Zero
}

func (a accumulator) fold(lx lang.Lexeme, w string) (accumulator, bool) {
	switch a.phase {
	case phaseSeparator, phaseDecimal:
		return a.decimalDigit(lx)
	case phaseArticle:
		if !lx.Fraction {
			return a, false
		}
		return a.mix(lx)
	case phaseConnector:
		if a.decConn {
			return a.decimalJoin(lx, w)
		}
		if a.conn.Allows(a.connLeft, lx.Class, w) {
			if b, ok := a.integer(lx, w, true); ok {
				return b, true
			}
		}
		if lx.Fraction && a.conn.Fraction && a.zeros == 0 {
			return a.mix(lx)
		}
		return a, false
	case phaseZero:
		switch {
		case !a.g.LeadingZeros(), lx.Ordinal, lx.Fraction:
			return a, false
		case lx.Class == lang.Zero:
			a.zeros++
			return a, true
		}
		return a.integer(lx, w, false)
	case phaseOrdinal:
		return a.chain(lx, w)
	}

	if lx.Class == lang.Zero {
		if a.phase == phaseInteger {
			return a, false
		}
		a.phase, a.zeros = phaseZero, 1
		return a, true
	}
	if b, ok := a.integer(lx, w, false); ok {
		return b, true
	}
	if lx.Fraction && a.phase == phaseInteger && a.zeros == 0 {
		return a.fraction(lx)
	}
	return a, false
}

// integer folds a cardinal or ordinal word into the integer part.
func (a accumulator) integer(lx lang.Lexeme, w string, via bool) (accumulator, bool) {
	if lx.Fraction && !lx.Ordinal {
		return a, false
	}
	if lx.Class == lang.Zero {
		return a, false
	}
	if lx.Class == lang.Scale {
		var ok bool
		if a, ok = a.scale(lx.Value); !ok {
			return a, false
		}
	} else {
		cur, ok := a.cur.add(a.g, lx, via)
		if !ok {
			return a, false
		}
		a.cur = cur
	}
	a.phase = phaseInteger
	if lx.Ordinal {
		a.phase, a.ordinal, a.ordLast = phaseOrdinal, w, lx.Value
	}
	return a, a.integerValue() <= maxAbs
}

// chain extends an ordinal with a smaller ordinal word in languages that
// spell compound ordinals word by word: "vigésimo primero" is 21, "centésimo
// quadragésimo quinto" is 145. The next word must fit below the last one's
// leading digit, so "primero segundo" fails.
func (a accumulator) chain(lx lang.Lexeme, w string) (accumulator, bool) {
	if !a.g.OrdinalChain() || !lx.Ordinal || lx.Class == lang.Scale {
		return a, false
	}
	p := place(a.ordLast)
	if a.ordLast%p != 0 || lx.Value >= p {
		return a, false
	}
	a.cur.value += lx.Value
	a.ordinal, a.ordLast = w, lx.Value
	return a, true
}

// place returns the largest power of ten not above v.
func place(v int64) int64 {
	p := int64(1)
	for p <= v/10 {
		p *= 10
	}
	return p
}

// scale applies a scale word of value s.
func (a accumulator) scale(s int64) (accumulator, bool) {
	gv := a.cur.value
	switch {
	case a.lastScale == 0 || s < a.lastScale:
		if gv == 0 {
			if s != 1_000 || !a.g.ImplicitThousand() || a.zeros > 0 {
				return a, false
			}
			if a.lastScale != 0 && !a.g.InlineThousand() {
				return a, false
			}
			gv = 1
		}
		p, ok := mul(gv, s)
		if !ok {
			return a, false
		}
		a.total += p
	case s > a.lastScale && a.g.ScaleStacking() && s > a.total+gv:
		p, ok := mul(a.total+gv, s)
		if !ok {
			return a, false
		}
		a.total = p
	default:
		return a, false
	}
	a.lastScale = s
	a.cur = group{}
	return a, a.total <= maxAbs
}

// fraction reads the integer so far as numerator of the denominator lx.
func (a accumulator) fraction(lx lang.Lexeme) (accumulator, bool) {
	n := a.integerValue()
	if n <= 0 {
		return a, false
	}
	a.num, a.den = n, lx.Value
	a.phase = phaseFraction
	return a, true
}

// mix closes a mixed number: whole part plus one over lx.
func (a accumulator) mix(lx lang.Lexeme) (accumulator, bool) {
	a.whole = a.integerValue()
	a.num, a.den = 1, lx.Value
	a.mixed = true
	a.phase = phaseFraction
	return a, true
}

// decimalDigit folds a word after the decimal separator.
// Each word group renders as its own digits: "one two" is "12", "twenty five" is "25".
func (a accumulator) decimalDigit(lx lang.Lexeme) (accumulator, bool) {
	if lx.Ordinal || lx.Fraction || lx.Class == lang.Scale {
		return a, false
	}
	a.phase = phaseDecimal
	if lx.Class == lang.Zero {
		a.digits = a.fractionalDigits() + "0"
		a.sub = group{}
		return a, true
	}
	if sub, ok := a.sub.add(a.g, lx, false); ok {
		a.sub = sub
		return a, true
	}
	sub, ok := group{}.add(a.g, lx, false)
	if !ok {
		return a, false
	}
	a.digits = a.fractionalDigits()
	a.sub = sub
	return a, true
}

// decimalJoin folds the word after a connector inside a fractional digit
// group: "uno coma doscientos treinta y seis" is "1,236".
func (a accumulator) decimalJoin(lx lang.Lexeme, w string) (accumulator, bool) {
	if lx.Ordinal || lx.Fraction || lx.Class == lang.Scale || lx.Class == lang.Zero {
		return a, false
	}
	if !a.conn.Allows(a.connLeft, lx.Class, w) {
		return a, false
	}
	sub, ok := a.sub.add(a.g, lx, true)
	if !ok {
		return a, false
	}
	a.sub, a.decConn, a.phase = sub, false, phaseDecimal
	return a, true
}

func (a accumulator) fractionalDigits() string {
	if a.sub.open {
		return a.digits + strconv.FormatInt(a.sub.value, 10)
	}
	return a.digits
}

func (a accumulator) integerValue() int64 {
	return a.total + a.cur.value
}

// integerDigits renders the integer part with its leading zeros.
func (a accumulator) integerDigits() string {
	zeros := strings.Repeat("0", a.zeros)
	v := a.integerValue()
	if v == 0 && a.zeros > 0 {
		return zeros
	}
	return zeros + strconv.FormatInt(v, 10)
}

// scaleOnly reports whether the phrase is a single scale word ("thousand").
func (a accumulator) scaleOnly() bool {
	return a.words == 1 && a.lastScale > 0 && !a.cur.open
}

func (a accumulator) negative() bool { return a.sign == "-" }

// value returns the numeric value of a complete phrase.
func (a accumulator) value() float64 {
	var v float64
	switch a.phase {
	case phaseDecimal:
		v, _ = strconv.ParseFloat(strconv.FormatInt(a.integerValue(), 10)+"."+a.fractionalDigits(), 64)
	case phaseFraction:
		v = float64(a.whole) + float64(a.num)/float64(a.den)
	default:
		v = float64(a.integerValue())
	}
	if a.negative() {
		return -v
	}
	return v
}

// render returns the digit notation of a complete phrase.
func (a accumulator) render() string {
	var b strings.Builder
	if a.sign != "" {
		b.WriteString(a.sign)
	}
	switch a.phase {
	case phaseDecimal:
		b.WriteString(a.integerDigits())
		b.WriteString(a.decimal)
		b.WriteString(a.fractionalDigits())
	case phaseOrdinal:
		v := a.integerValue()
		b.WriteString(strconv.FormatInt(v, 10))
		b.WriteString(a.g.OrdinalSuffix(v, a.ordinal))
	case phaseFraction:
		if a.mixed {
			b.WriteString(strconv.FormatInt(a.whole, 10))
			b.WriteString(" ")
		}
		b.WriteString(strconv.FormatInt(a.num, 10))
		b.WriteString("/")
		b.WriteString(strconv.FormatInt(a.den, 10))
	default:
		b.WriteString(a.integerDigits())
	}
	return b.String()
}

// mul multiplies two non-negative values, failing beyond maxAbs.
func mul(x, y int64) (int64, bool) {
	if x != 0 && y > maxAbs/x {
		return 0, false
	}
	return x * y, true
}
