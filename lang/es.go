package lang

import "strings"

var (
	esUnits    = []string{"uno", "dos", "tres", "cuatro", "cinco", "seis", "siete", "ocho", "nueve"}
	esBelow30  = []string{"diez", "once", "doce", "trece", "catorce", "quince", "dieciséis", "diecisiete", "dieciocho", "diecinueve", "veinte", "veintiuno", "veintidós", "veintitrés", "veinticuatro", "veinticinco", "veintiséis", "veintisiete", "veintiocho", "veintinueve"}
	esTens     = []string{"treinta", "cuarenta", "cincuenta", "sesenta", "setenta", "ochenta", "noventa"}
	esHundreds = []string{"ciento", "doscientos", "trescientos", "cuatrocientos", "quinientos", "seiscientos", "setecientos", "ochocientos", "novecientos"}
)

func spanish() *Grammar {
	g := newGrammar("es", "Spanish")

	g.add(Lexeme{Class: Zero}, "cero")
	g.cardinals(Unit, 1, 1, esUnits...)
	g.add(Lexeme{Value: 1, Class: Unit}, "un", "una")
	g.cardinals(Teen, 10, 1, esBelow30...)
	g.add(Lexeme{Value: 20, Class: Ten}, "veinte")
	g.add(Lexeme{Value: 16, Class: Teen}, "dieciseis")
	g.add(Lexeme{Value: 21, Class: Teen}, "veintiún", "veintiun", "veintiuna")
	g.add(Lexeme{Value: 22, Class: Teen}, "veintidos")
	g.add(Lexeme{Value: 23, Class: Teen}, "veintitres")
	g.add(Lexeme{Value: 26, Class: Teen}, "veintiseis")
	g.cardinals(Ten, 30, 10, esTens...)
	for i, w := range esHundreds {
		lx := Lexeme{Value: int64(i+1) * 100, Class: Hundred, Composite: true}
		g.add(lx, w)
		if i > 0 {
			g.add(lx, strings.TrimSuffix(w, "os")+"as")
		}
	}
	g.add(Lexeme{Value: 100, Class: Hundred, Composite: true}, "cien")
	g.add(Lexeme{Value: 1_000, Class: Scale}, "mil")
	g.add(Lexeme{Value: 1_000_000, Class: Scale}, "millón", "millon", "millones")
	g.add(Lexeme{Value: 1_000_000_000, Class: Scale}, "millardo", "millardos")
	g.add(Lexeme{Value: 1_000_000_000_000, Class: Scale}, "billón", "billon", "billones")

	ordinals := []ordinalStem{
		{"primer", 1, Unit}, {"segund", 2, Unit}, {"tercer", 3, Unit}, {"cuart", 4, Unit},
		{"quint", 5, Unit}, {"sext", 6, Unit}, {"séptim", 7, Unit}, {"septim", 7, Unit},
		{"octav", 8, Unit}, {"noven", 9, Unit}, {"décim", 10, Teen}, {"decim", 10, Teen},
		{"undécim", 11, Teen}, {"duodécim", 12, Teen}, {"vigésim", 20, Ten},
		{"trigésim", 30, Ten}, {"cuadragésim", 40, Ten}, {"quincuagésim", 50, Ten},
		{"sexagésim", 60, Ten}, {"septuagésim", 70, Ten}, {"octogésim", 80, Ten},
		{"nonagésim", 90, Ten}, {"centésim", 100, Hundred}, {"milésim", 1_000, Scale},
		{"millonésim", 1_000_000, Scale},
	}
	for _, o := range ordinals {
		lx := Lexeme{Value: o.value, Class: o.class, Ordinal: true, Composite: o.class == Hundred}
		lx.Fraction = o.value >= 4 && o.value <= 10
		for _, end := range []string{"o", "a", "os", "as"} {
			g.add(lx, o.stem+end)
		}
	}
	delete(g.lexicon, "segundos") // the time unit
	g.add(Lexeme{Value: 1, Class: Unit, Ordinal: true}, "primer")
	g.add(Lexeme{Value: 3, Class: Unit, Ordinal: true}, "tercer")
	g.add(Lexeme{Value: 2, Class: Unit, Fraction: true}, "medio", "media", "medios", "medias")
	g.add(Lexeme{Value: 3, Class: Unit, Fraction: true}, "tercio", "tercios")

	g.connectors["y"] = Connector{
		Pairs:    []Pair{{Ten, Unit}},
		Fraction: true,
	}

	g.signs["menos"] = "-"
	g.signs["más"] = "+"
	g.signs["mas"] = "+"
	g.decimals["coma"] = ","
	g.decimals["punto"] = "."

	g.implicitThousand = true
	g.inlineThousand = true
	g.scaleStacking = true
	g.leadingZeros = true
	g.ordinalChain = true
	g.suffix = spanishSuffix
	g.spell = spellSpanish
	return g
}

func spanishSuffix(_ int64, word string) string {
	if strings.HasSuffix(word, "a") || strings.HasSuffix(word, "as") {
		return "ª"
	}
	return "º"
}

func spellSpanish(n int64) string {
	if n == 0 {
		return "cero"
	}
	var parts []string
	if c := n / 1_000_000; c > 0 {
		if c == 1 {
			parts = append(parts, "un millón")
		} else {
			parts = append(parts, spanishThousands(c, true), "millones")
		}
		n %= 1_000_000
	}
	if n > 0 {
		parts = append(parts, spanishThousands(n, false))
	}
	return strings.Join(parts, " ")
}

// spanishThousands spells n in [1, 999999]. Apocope turns a trailing "uno"
// into "un" ("veintiún millones").
func spanishThousands(n int64, apocope bool) string {
	var parts []string
	if c := n / 1_000; c > 0 {
		if c > 1 {
			parts = append(parts, spanishGroup(c, true))
		}
		parts = append(parts, "mil")
		n %= 1_000
	}
	if n > 0 {
		parts = append(parts, spanishGroup(n, apocope))
	}
	return strings.Join(parts, " ")
}

// spanishGroup spells n in [1, 999].
func spanishGroup(n int64, apocope bool) string {
	var parts []string
	h, r := n/100, n%100
	switch {
	case h == 1 && r == 0:
		parts = append(parts, "cien")
	case h > 0:
		parts = append(parts, esHundreds[h-1])
	}
	switch {
	case r == 0:
	case r == 1 && apocope:
		parts = append(parts, "un")
	case r < 10:
		parts = append(parts, esUnits[r-1])
	case r == 21 && apocope:
		parts = append(parts, "veintiún")
	case r < 30:
		parts = append(parts, esBelow30[r-10])
	case r%10 == 0:
		parts = append(parts, esTens[r/10-3])
	case r%10 == 1 && apocope:
		parts = append(parts, esTens[r/10-3], "y", "un")
	default:
		parts = append(parts, esTens[r/10-3], "y", esUnits[r%10-1])
	}
	return strings.Join(parts, " ")
}
