package lang

import "strings"

var (
	enUnits = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	enTeens = []string{"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	enTens  = []string{"twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
)

func english() *Grammar {
	g := newGrammar("en", "English")

	g.add(Lexeme{Class: Zero}, "zero", "o")
	g.cardinals(Unit, 1, 1, enUnits...)
	g.cardinals(Teen, 10, 1, enTeens...)
	g.cardinals(Ten, 20, 10, enTens...)
	g.add(Lexeme{Value: 100, Class: Hundred}, "hundred", "hundreds")
	g.add(Lexeme{Value: 1_000, Class: Scale}, "thousand", "thousands")
	g.add(Lexeme{Value: 1_000_000, Class: Scale}, "million", "millions")
	g.add(Lexeme{Value: 1_000_000_000, Class: Scale}, "billion", "billions")
	g.add(Lexeme{Value: 1_000_000_000_000, Class: Scale}, "trillion", "trillions")

	ordinals := []struct {
		word  string
		value int64
		class Class
	}{
		{"first", 1, Unit}, {"second", 2, Unit}, {"third", 3, Unit}, {"fourth", 4, Unit},
		{"fifth", 5, Unit}, {"sixth", 6, Unit}, {"seventh", 7, Unit}, {"eighth", 8, Unit},
		{"ninth", 9, Unit}, {"tenth", 10, Teen}, {"eleventh", 11, Teen}, {"twelfth", 12, Teen},
		{"thirteenth", 13, Teen}, {"fourteenth", 14, Teen}, {"fifteenth", 15, Teen},
		{"sixteenth", 16, Teen}, {"seventeenth", 17, Teen}, {"eighteenth", 18, Teen},
		{"nineteenth", 19, Teen}, {"twentieth", 20, Ten}, {"thirtieth", 30, Ten},
		{"fortieth", 40, Ten}, {"fiftieth", 50, Ten}, {"sixtieth", 60, Ten},
		{"seventieth", 70, Ten}, {"eightieth", 80, Ten}, {"ninetieth", 90, Ten},
		{"hundredth", 100, Hundred}, {"thousandth", 1_000, Scale},
		{"millionth", 1_000_000, Scale}, {"billionth", 1_000_000_000, Scale},
	}
	for _, o := range ordinals {
		lx := Lexeme{Value: o.value, Class: o.class, Ordinal: true}
		if o.value >= 3 && o.value <= 10 {
			// "one third", "one fifth": denominators when the ordinal reading fails.
			lx.Fraction = true
			g.add(Lexeme{Value: o.value, Class: o.class, Fraction: true}, o.word+"s")
		}
		g.add(lx, o.word)
	}
	g.add(Lexeme{Value: 2, Class: Unit, Fraction: true}, "half", "halves")
	g.add(Lexeme{Value: 4, Class: Unit, Fraction: true}, "quarter", "quarters")

	after := []Class{Unit, Teen, Ten}
	and := Connector{Fraction: true}
	for _, r := range after {
		and.Pairs = append(and.Pairs, Pair{Hundred, r}, Pair{Scale, r})
	}
	and.Pairs = append(and.Pairs, Pair{Scale, Hundred})
	g.connectors["and"] = and

	g.signs["minus"] = "-"
	g.signs["plus"] = "+"
	g.decimals["point"] = "."
	g.articles["a"] = true
	g.articles["an"] = true

	g.implicitHundred = true
	g.implicitThousand = true
	g.leadingZeros = true
	g.bareDecimal = true
	g.suffix = englishSuffix
	g.spell = spellEnglish
	return g
}

func englishSuffix(value int64, _ string) string {
	switch value % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch value % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

var enScales = []struct {
	value int64
	word  string
}{
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

func spellEnglish(n int64) string {
	if n == 0 {
		return "zero"
	}
	var parts []string
	for _, sc := range enScales {
		if c := n / sc.value; c > 0 {
			parts = append(parts, englishGroup(c), sc.word)
			n %= sc.value
		}
	}
	if n > 0 {
		parts = append(parts, englishGroup(n))
	}
	return strings.Join(parts, " ")
}

// englishGroup spells n in [1, 999].
func englishGroup(n int64) string {
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, enUnits[h-1], "hundred")
	}
	switch r := n % 100; {
	case r == 0:
	case r < 10:
		parts = append(parts, enUnits[r-1])
	case r < 20:
		parts = append(parts, enTeens[r-10])
	case r%10 == 0:
		parts = append(parts, enTens[r/10-2])
	default:
		parts = append(parts, enTens[r/10-2]+"-"+enUnits[r%10-1])
	}
	return strings.Join(parts, " ")
}
