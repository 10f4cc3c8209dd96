package lang

import "strings"

var (
	frUnits = []string{"un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf"}
	frTeens = []string{"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize", "dix-sept", "dix-huit", "dix-neuf"}
	frTens  = []string{"vingt", "trente", "quarante", "cinquante", "soixante"}
)

func french() *Grammar {
	g := newGrammar("fr", "French")

	g.add(Lexeme{Class: Zero}, "zéro", "zero")
	g.cardinals(Unit, 1, 1, frUnits...)
	g.add(Lexeme{Value: 1, Class: Unit}, "une")
	g.cardinals(Teen, 10, 1, frTeens...)
	g.cardinals(Ten, 20, 10, frTens...)
	g.add(Lexeme{Value: 60, Class: Ten, TakesTeen: true}, "soixante")
	g.add(Lexeme{Value: 70, Class: Ten}, "septante")
	g.add(Lexeme{Value: 80, Class: Ten}, "huitante", "octante", "quatre-vingts")
	g.add(Lexeme{Value: 80, Class: Ten, TakesTeen: true}, "quatre-vingt")
	g.add(Lexeme{Value: 90, Class: Ten}, "nonante")
	g.add(Lexeme{Value: 100, Class: Hundred}, "cent", "cents")
	g.add(Lexeme{Value: 1_000, Class: Scale}, "mille", "mil", "milles")
	g.add(Lexeme{Value: 1_000_000, Class: Scale}, "million", "millions")
	g.add(Lexeme{Value: 1_000_000_000, Class: Scale}, "milliard", "milliards")

	// Ordinals are derived from every cardinal but "un".
	cardinals := make(map[string]Lexeme, len(g.lexicon))
	for w, lx := range g.lexicon {
		cardinals[w] = lx
	}
	for w, lx := range cardinals {
		if lx.Class == Zero || w == "un" || w == "une" || w == "mil" || w == "milles" ||
			w == "cents" || w == "quatre-vingts" || w == "millions" || w == "milliards" {
			continue
		}
		ord := lx
		ord.Ordinal = true
		ord.Fraction = lx.Value >= 3 && lx.Value <= 10
		form := frenchOrdinal(w)
		g.add(ord, form, form+"s")
	}
	g.add(Lexeme{Value: 1, Class: Unit, Ordinal: true}, "premier", "première", "premiers", "premières", "unième", "unièmes")

	g.add(Lexeme{Value: 2, Class: Unit, Fraction: true}, "demi", "demie", "demis", "demies")
	g.add(Lexeme{Value: 3, Class: Unit, Fraction: true}, "tiers")
	g.add(Lexeme{Value: 4, Class: Unit, Fraction: true}, "quart", "quarts")

	g.connectors["et"] = Connector{
		Pairs:    []Pair{{Ten, Unit}, {Ten, Teen}},
		Right:    map[string]bool{"un": true, "une": true, "unième": true, "onze": true, "onzième": true},
		Fraction: true,
	}

	g.signs["moins"] = "-"
	g.signs["plus"] = "+"
	g.decimals["virgule"] = ","

	g.implicitHundred = true
	g.implicitThousand = true
	g.inlineThousand = true
	g.scaleStacking = true
	g.leadingZeros = true
	g.suffix = frenchSuffix
	g.spell = spellFrench
	return g
}

// frenchOrdinal derives the singular ordinal of a cardinal word.
func frenchOrdinal(w string) string {
	switch {
	case strings.HasSuffix(w, "cinq"):
		return w + "uième"
	case strings.HasSuffix(w, "neuf"):
		return strings.TrimSuffix(w, "f") + "vième"
	case strings.HasSuffix(w, "e"):
		return strings.TrimSuffix(w, "e") + "ième"
	}
	return w + "ième"
}

func frenchSuffix(_ int64, word string) string {
	switch word {
	case "premier":
		return "er"
	case "premiers":
		return "ers"
	case "première":
		return "re"
	case "premières":
		return "res"
	}
	if strings.HasSuffix(word, "s") {
		return "èmes"
	}
	return "ème"
}

func spellFrench(n int64) string {
	if n == 0 {
		return "zéro"
	}
	var parts []string
	if c := n / 1_000_000_000; c > 0 {
		parts = append(parts, frenchGroup(c, false), plural("milliard", c))
		n %= 1_000_000_000
	}
	if c := n / 1_000_000; c > 0 {
		parts = append(parts, frenchGroup(c, false), plural("million", c))
		n %= 1_000_000
	}
	if c := n / 1_000; c > 0 {
		if c > 1 {
			parts = append(parts, frenchGroup(c, false))
		}
		parts = append(parts, "mille")
		n %= 1_000
	}
	if n > 0 {
		parts = append(parts, frenchGroup(n, true))
	}
	return strings.Join(parts, " ")
}

func plural(w string, c int64) string {
	if c > 1 {
		return w + "s"
	}
	return w
}

// frenchGroup spells n in [1, 999]. Final groups take the plural "cents" and
// "quatre-vingts".
func frenchGroup(n int64, final bool) string {
	var parts []string
	h, r := n/100, n%100
	switch {
	case h == 1:
		parts = append(parts, "cent")
	case h > 1 && r == 0 && final:
		parts = append(parts, frUnits[h-1], "cents")
	case h > 1:
		parts = append(parts, frUnits[h-1], "cent")
	}
	if r > 0 {
		parts = append(parts, frenchBelow100(r, final))
	}
	return strings.Join(parts, " ")
}

func frenchBelow100(r int64, final bool) string {
	switch {
	case r < 10:
		return frUnits[r-1]
	case r < 20:
		return frTeens[r-10]
	case r < 70:
		t, u := r/10, r%10
		switch u {
		case 0:
			return frTens[t-2]
		case 1:
			return frTens[t-2] + " et un"
		}
		return frTens[t-2] + "-" + frUnits[u-1]
	case r == 71:
		return "soixante et onze"
	case r < 80:
		return "soixante-" + frTeens[r-70]
	case r == 80 && final:
		return "quatre-vingts"
	case r == 80:
		return "quatre-vingt"
	case r < 90:
		return "quatre-vingt-" + frUnits[r-81]
	}
	return "quatre-vingt-" + frTeens[r-90]
}
