package lang

import "strings"

var (
	caUnits = []string{"un", "dos", "tres", "quatre", "cinc", "sis", "set", "vuit", "nou"}
	caTeens = []string{"deu", "onze", "dotze", "tretze", "catorze", "quinze", "setze", "disset", "divuit", "dinou"}
	caTens  = []string{"vint", "trenta", "quaranta", "cinquanta", "seixanta", "setanta", "vuitanta", "noranta"}
)

// catalan includes the common Valencian variants ("huit", "huitanta").
func catalan() *Grammar {
	g := newGrammar("ca", "Catalan")

	g.add(Lexeme{Class: Zero}, "zero")
	g.cardinals(Unit, 1, 1, caUnits...)
	g.add(Lexeme{Value: 1, Class: Unit}, "u", "una")
	g.add(Lexeme{Value: 2, Class: Unit}, "dues")
	g.add(Lexeme{Value: 8, Class: Unit}, "huit")
	g.cardinals(Teen, 10, 1, caTeens...)
	g.add(Lexeme{Value: 17, Class: Teen}, "desset", "dèsset")
	g.add(Lexeme{Value: 18, Class: Teen}, "devuit", "díhuit")
	g.add(Lexeme{Value: 19, Class: Teen}, "denou", "dènou", "dèneu")
	g.cardinals(Ten, 20, 10, caTens...)
	g.add(Lexeme{Value: 80, Class: Ten}, "huitanta")

	g.add(Lexeme{Value: 100, Class: Hundred, Composite: true}, "cent")
	hundreds := map[string]int64{"huit": 8, "dues": 2}
	for i, u := range caUnits[1:] {
		hundreds[u] = int64(i + 2)
	}
	for u, v := range hundreds {
		lx := Lexeme{Value: v * 100, Class: Hundred, Composite: true}
		g.add(lx, u+"-cents", u+"-centes")
	}
	delete(g.lexicon, "dues-cents")
	g.add(Lexeme{Value: 1_000, Class: Scale}, "mil")
	g.add(Lexeme{Value: 1_000_000, Class: Scale}, "milió", "milions")
	g.add(Lexeme{Value: 1_000_000_000, Class: Scale}, "miliard", "miliards")
	g.add(Lexeme{Value: 1_000_000_000_000, Class: Scale}, "bilió", "bilions")

	// Regular ordinals: "cinquè", "cinquena", "cinquens", "cinquenes".
	stems := []ordinalStem{
		{"cinqu", 5, Unit}, {"sis", 6, Unit}, {"set", 7, Unit}, {"vuit", 8, Unit},
		{"huit", 8, Unit}, {"nov", 9, Unit}, {"des", 10, Teen}, {"onz", 11, Teen},
		{"dotz", 12, Teen}, {"tretz", 13, Teen}, {"catorz", 14, Teen}, {"quinz", 15, Teen},
		{"setz", 16, Teen}, {"disset", 17, Teen}, {"divuit", 18, Teen}, {"dinov", 19, Teen},
		{"vint", 20, Ten}, {"trent", 30, Ten}, {"quarant", 40, Ten}, {"cinquant", 50, Ten},
		{"seixant", 60, Ten}, {"setant", 70, Ten}, {"vuitant", 80, Ten}, {"norant", 90, Ten},
		{"cent", 100, Hundred}, {"mil", 1_000, Scale}, {"milion", 1_000_000, Scale},
	}
	for i, u := range caUnits[1:] {
		stems = append(stems, ordinalStem{u + "-cent", int64(i+2) * 100, Hundred})
	}
	for _, o := range stems {
		lx := Lexeme{Value: o.value, Class: o.class, Ordinal: true, Composite: o.class == Hundred}
		lx.Fraction = o.value >= 5 && o.value <= 10
		for _, end := range []string{"è", "ena", "ens", "enes"} {
			g.add(lx, o.stem+end)
		}
	}
	// Units of compound ordinals: "vint-i-unè", "trenta-dosè".
	for i, w := range []string{"unè", "dosè", "tresè", "quatrè"} {
		g.add(Lexeme{Value: int64(i + 1), Class: Unit, Ordinal: true}, w)
	}
	irregular := []struct {
		words []string
		value int64
	}{
		{[]string{"primer", "primera", "primers", "primeres"}, 1},
		{[]string{"segon", "segona", "segones"}, 2}, // "segons" is the time unit
		{[]string{"tercer", "tercera", "tercers", "terceres"}, 3},
	}
	for _, o := range irregular {
		g.add(Lexeme{Value: o.value, Class: Unit, Ordinal: true}, o.words...)
	}
	g.add(Lexeme{Value: 4, Class: Unit, Ordinal: true, Fraction: true}, "quart", "quarta", "quarts", "quartes")
	g.add(Lexeme{Value: 2, Class: Unit, Fraction: true}, "mig", "mitja", "mitjos", "mitges")
	g.add(Lexeme{Value: 3, Class: Unit, Fraction: true}, "terç", "terços")

	g.connectors["i"] = Connector{Pairs: []Pair{{Ten, Unit}}, Fraction: true}

	g.signs["menys"] = "-"
	g.signs["més"] = "+"
	g.decimals["coma"] = ","

	g.implicitThousand = true
	g.inlineThousand = true
	g.scaleStacking = true
	g.leadingZeros = true
	g.suffix = catalanSuffix
	g.spell = spellCatalan
	return g
}

// catalanSuffix abbreviates like "1r", "2n", "4t", "5è", "1a", "5es".
func catalanSuffix(_ int64, word string) string {
	switch word {
	case "primer", "tercer":
		return "r"
	case "primers", "tercers":
		return "rs"
	case "segon":
		return "n"
	case "quart":
		return "t"
	case "quarts":
		return "ts"
	}
	switch {
	case strings.HasSuffix(word, "a"):
		return "a"
	case strings.HasSuffix(word, "es"):
		return "es"
	case strings.HasSuffix(word, "ens"):
		return "ns"
	}
	return "è"
}

// spellCatalan uses "mil milions" for 10^9.
func spellCatalan(n int64) string {
	if n == 0 {
		return "zero"
	}
	var parts []string
	if c := n / 1_000_000; c > 0 {
		if c == 1 {
			parts = append(parts, "un milió")
		} else {
			parts = append(parts, catalanThousands(c), "milions")
		}
		n %= 1_000_000
	}
	if n > 0 {
		parts = append(parts, catalanThousands(n))
	}
	return strings.Join(parts, " ")
}

// catalanThousands spells n in [1, 999999].
func catalanThousands(n int64) string {
	var parts []string
	if c := n / 1_000; c > 0 {
		if c > 1 {
			parts = append(parts, catalanGroup(c))
		}
		parts = append(parts, "mil")
		n %= 1_000
	}
	if n > 0 {
		parts = append(parts, catalanGroup(n))
	}
	return strings.Join(parts, " ")
}

// catalanGroup spells n in [1, 999].
func catalanGroup(n int64) string {
	var parts []string
	h, r := n/100, n%100
	switch {
	case h == 1:
		parts = append(parts, "cent")
	case h > 1:
		parts = append(parts, caUnits[h-1]+"-cents")
	}
	switch {
	case r == 0:
	case r < 10:
		parts = append(parts, caUnits[r-1])
	case r < 20:
		parts = append(parts, caTeens[r-10])
	case r%10 == 0:
		parts = append(parts, caTens[r/10-2])
	case r < 30:
		parts = append(parts, "vint-i-"+caUnits[r%10-1])
	default:
		parts = append(parts, caTens[r/10-2]+"-"+caUnits[r%10-1])
	}
	return strings.Join(parts, " ")
}
