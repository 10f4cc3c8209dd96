package lang

import "strings"

var (
	deUnits = []string{"eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun"}
	deTeens = []string{"zehn", "elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn", "sechzehn", "siebzehn", "achtzehn", "neunzehn"}
	deTens  = []string{"zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig", "siebzig", "achtzig", "neunzig"}
)

func german() *Grammar {
	g := newGrammar("de", "German")

	g.add(Lexeme{Class: Zero}, "null")
	g.cardinals(Unit, 1, 1, deUnits...)
	g.add(Lexeme{Value: 1, Class: Unit}, "ein", "eine")
	g.add(Lexeme{Value: 2, Class: Unit}, "zwo")
	g.cardinals(Teen, 10, 1, deTeens...)
	g.cardinals(Ten, 20, 10, deTens...)
	g.add(Lexeme{Value: 30, Class: Ten}, "dreissig")
	g.add(Lexeme{Value: 100, Class: Hundred}, "hundert")
	g.add(Lexeme{Value: 1_000, Class: Scale}, "tausend")
	g.add(Lexeme{Value: 1_000_000, Class: Scale}, "million", "millionen")
	g.add(Lexeme{Value: 1_000_000_000, Class: Scale}, "milliarde", "milliarden")
	g.add(Lexeme{Value: 1_000_000_000_000, Class: Scale}, "billion", "billionen")

	stems := []ordinalStem{
		{"erst", 1, Unit}, {"zweit", 2, Unit}, {"dritt", 3, Unit}, {"viert", 4, Unit},
		{"fünft", 5, Unit}, {"sechst", 6, Unit}, {"siebt", 7, Unit}, {"siebent", 7, Unit},
		{"acht", 8, Unit}, {"neunt", 9, Unit},
	}
	for i, w := range deTeens {
		stems = append(stems, ordinalStem{w + "t", int64(10 + i), Teen})
	}
	for i, w := range deTens {
		stems = append(stems, ordinalStem{w + "st", int64(20 + 10*i), Ten})
	}
	stems = append(stems,
		ordinalStem{"dreissigst", 30, Ten},
		ordinalStem{"hundertst", 100, Hundred},
		ordinalStem{"tausendst", 1_000, Scale},
		ordinalStem{"millionst", 1_000_000, Scale},
	)
	for _, s := range stems {
		for _, end := range []string{"e", "er", "en", "es"} {
			if s.stem == "acht" && end == "en" {
				continue // the verb "achten"
			}
			g.add(Lexeme{Value: s.value, Class: s.class, Ordinal: true}, s.stem+end)
		}
	}
	for i, w := range []string{"drittel", "viertel", "fünftel", "sechstel", "siebtel", "achtel", "neuntel", "zehntel"} {
		g.add(Lexeme{Value: int64(3 + i), Class: Unit, Fraction: true}, w)
	}
	g.add(Lexeme{Value: 2, Class: Unit, Fraction: true}, "halb", "halbe")

	g.connectors["und"] = Connector{Pairs: []Pair{{Unit, Ten}}}

	g.signs["minus"] = "-"
	g.signs["plus"] = "+"
	g.decimals["komma"] = ","

	g.implicitHundred = true
	g.implicitThousand = true
	g.unitBeforeTen = true
	g.compounds = true
	g.suffix = func(int64, string) string { return "." }
	g.spell = spellGerman
	return g
}

func spellGerman(n int64) string {
	if n == 0 {
		return "null"
	}
	var parts []string
	if c := n / 1_000_000_000; c > 0 {
		if c == 1 {
			parts = append(parts, "eine milliarde")
		} else {
			parts = append(parts, germanGroup(c, false)+" milliarden")
		}
		n %= 1_000_000_000
	}
	if c := n / 1_000_000; c > 0 {
		if c == 1 {
			parts = append(parts, "eine million")
		} else {
			parts = append(parts, germanGroup(c, false)+" millionen")
		}
		n %= 1_000_000
	}
	if n > 0 {
		var b strings.Builder
		if c := n / 1_000; c > 0 {
			b.WriteString(germanGroup(c, false))
			b.WriteString("tausend")
			n %= 1_000
		}
		if n > 0 {
			b.WriteString(germanGroup(n, true))
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " ")
}

// germanGroup spells n in [1, 999] as one word. A final "eins" is only
// spelled out when alone is set ("hunderteins" but "einhunderttausend").
func germanGroup(n int64, alone bool) string {
	var b strings.Builder
	h, r := n/100, n%100
	if h > 0 {
		if h == 1 {
			b.WriteString("ein")
		} else {
			b.WriteString(deUnits[h-1])
		}
		b.WriteString("hundert")
	}
	switch {
	case r == 0:
	case r == 1 && alone:
		b.WriteString("eins")
	case r == 1:
		b.WriteString("ein")
	case r < 10:
		b.WriteString(deUnits[r-1])
	case r < 20:
		b.WriteString(deTeens[r-10])
	case r%10 == 0:
		b.WriteString(deTens[r/10-2])
	default:
		if u := r % 10; u == 1 {
			b.WriteString("ein")
		} else {
			b.WriteString(deUnits[u-1])
		}
		b.WriteString("und")
		b.WriteString(deTens[r/10-2])
	}
	return b.String()
}
