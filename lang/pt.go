package lang

import "strings"

var (
	ptUnits    = []string{"um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	ptTeens    = []string{"dez", "onze", "doze", "treze", "catorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	ptTens     = []string{"vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	ptHundreds = []string{"cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// portuguese covers both the European and the Brazilian spellings
// ("dezasseis" and "dezesseis", "milhão" and "milhao").
func portuguese() *Grammar {
	g := newGrammar("pt", "Portuguese")

	g.add(Lexeme{Class: Zero}, "zero")
	g.cardinals(Unit, 1, 1, ptUnits...)
	g.add(Lexeme{Value: 1, Class: Unit}, "uma")
	g.add(Lexeme{Value: 2, Class: Unit}, "duas")
	g.add(Lexeme{Value: 3, Class: Unit}, "tres")
	g.cardinals(Teen, 10, 1, ptTeens...)
	g.add(Lexeme{Value: 14, Class: Teen}, "quatorze")
	g.add(Lexeme{Value: 16, Class: Teen}, "dezasseis")
	g.add(Lexeme{Value: 17, Class: Teen}, "dezassete")
	g.add(Lexeme{Value: 19, Class: Teen}, "dezanove")
	g.cardinals(Ten, 20, 10, ptTens...)
	for i, w := range ptHundreds {
		lx := Lexeme{Value: int64(i+1) * 100, Class: Hundred, Composite: true}
		g.add(lx, w)
		if i > 0 {
			g.add(lx, strings.TrimSuffix(w, "os")+"as")
		}
	}
	g.add(Lexeme{Value: 100, Class: Hundred, Composite: true}, "cem")
	g.add(Lexeme{Value: 1_000, Class: Scale}, "mil", "milhar", "milhares")
	g.add(Lexeme{Value: 1_000_000, Class: Scale}, "milhão", "milhao", "milhões", "milhoes")
	g.add(Lexeme{Value: 1_000_000_000, Class: Scale}, "bilhão", "bilhao", "bilhões", "bilhoes")
	g.add(Lexeme{Value: 1_000_000_000_000, Class: Scale}, "bilião", "biliões", "trilhão", "trilhao", "trilhões", "trilhoes")

	ordinals := []ordinalStem{
		{"primeir", 1, Unit}, {"segund", 2, Unit}, {"terceir", 3, Unit}, {"quart", 4, Unit},
		{"quint", 5, Unit}, {"sext", 6, Unit}, {"sétim", 7, Unit}, {"setim", 7, Unit},
		{"oitav", 8, Unit}, {"non", 9, Unit}, {"décim", 10, Teen}, {"decim", 10, Teen},
		{"vigésim", 20, Ten}, {"vigesim", 20, Ten}, {"trigésim", 30, Ten},
		{"quadragésim", 40, Ten}, {"quinquagésim", 50, Ten}, {"sexagésim", 60, Ten},
		{"septuagésim", 70, Ten}, {"setuagésim", 70, Ten}, {"octogésim", 80, Ten},
		{"nonagésim", 90, Ten}, {"centésim", 100, Hundred}, {"ducentésim", 200, Hundred},
		{"trecentésim", 300, Hundred}, {"tricentésim", 300, Hundred},
		{"quadringentésim", 400, Hundred}, {"quingentésim", 500, Hundred},
		{"sexcentésim", 600, Hundred}, {"seiscentésim", 600, Hundred},
		{"septingentésim", 700, Hundred}, {"setingentésim", 700, Hundred},
		{"octingentésim", 800, Hundred}, {"nongentésim", 900, Hundred},
		{"noningentésim", 900, Hundred}, {"milésim", 1_000, Scale},
		{"milionésim", 1_000_000, Scale},
	}
	for _, o := range ordinals {
		lx := Lexeme{Value: o.value, Class: o.class, Ordinal: true, Composite: o.class == Hundred}
		lx.Fraction = o.value >= 4 && o.value <= 10
		for _, end := range []string{"o", "a", "os", "as"} {
			g.add(lx, o.stem+end)
		}
	}
	delete(g.lexicon, "segundos") // the time unit
	g.add(Lexeme{Value: 2, Class: Unit, Fraction: true}, "meio", "meia", "meios", "meias")
	g.add(Lexeme{Value: 3, Class: Unit, Fraction: true}, "terço", "terços")

	g.connectors["e"] = Connector{
		Pairs: []Pair{
			{Ten, Unit},
			{Hundred, Unit}, {Hundred, Teen}, {Hundred, Ten},
			{Scale, Unit}, {Scale, Teen}, {Scale, Ten}, {Scale, Hundred},
		},
		Fraction: true,
	}

	g.signs["menos"] = "-"
	g.signs["mais"] = "+"
	g.decimals["vírgula"] = ","
	g.decimals["virgula"] = ","

	g.implicitThousand = true
	g.inlineThousand = true
	g.scaleStacking = true
	g.leadingZeros = true
	g.bareDecimal = true
	g.ordinalChain = true
	g.suffix = spanishSuffix
	g.spell = spellPortuguese
	return g
}

// spellPortuguese follows the Brazilian short scale ("bilhão" is 10^9).
func spellPortuguese(n int64) string {
	if n == 0 {
		return "zero"
	}
	type part struct {
		text  string
		value int64
	}
	var parts []part
	scales := []struct {
		value      int64
		one, other string
	}{
		{1_000_000_000, "um bilhão", "bilhões"},
		{1_000_000, "um milhão", "milhões"},
	}
	for _, s := range scales {
		if c := n / s.value; c > 0 {
			if c == 1 {
				parts = append(parts, part{s.one, s.value})
			} else {
				parts = append(parts, part{portugueseGroup(c) + " " + s.other, c * s.value})
			}
			n %= s.value
		}
	}
	if c := n / 1_000; c > 0 {
		text := "mil"
		if c > 1 {
			text = portugueseGroup(c) + " mil"
		}
		parts = append(parts, part{text, c * 1_000})
		n %= 1_000
	}
	if n > 0 {
		parts = append(parts, part{portugueseGroup(n), n})
	}

	words := make([]string, 0, len(parts)+1)
	for i, p := range parts {
		// "mil e um", "dois mil e cem", but "mil novecentos e oitenta".
		if i > 0 && i == len(parts)-1 && (p.value < 100 || p.value < 1_000 && p.value%100 == 0) {
			words = append(words, "e")
		}
		words = append(words, p.text)
	}
	return strings.Join(words, " ")
}

// portugueseGroup spells n in [1, 999].
func portugueseGroup(n int64) string {
	h, r := n/100, n%100
	var parts []string
	switch {
	case h == 1 && r == 0:
		return "cem"
	case h > 0:
		parts = append(parts, ptHundreds[h-1])
	}
	switch {
	case r == 0:
	case r < 10:
		parts = append(parts, ptUnits[r-1])
	case r < 20:
		parts = append(parts, ptTeens[r-10])
	case r%10 == 0:
		parts = append(parts, ptTens[r/10-2])
	default:
		parts = append(parts, ptTens[r/10-2]+" e "+ptUnits[r%10-1])
	}
	return strings.Join(parts, " e ")
}
