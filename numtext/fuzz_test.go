package numtext

import (
	"testing"

	"github.com/allo-media/text2num/lang"
)

// FuzzAlpha2Digit verifies that Alpha2Digit never panics and is idempotent
// on its own output.
func FuzzAlpha2Digit(f *testing.F) {
	f.Add("I have twenty-three apples and two pears.", "en")
	f.Add("one two three four", "en")
	f.Add("two and a half", "en")
	f.Add("minus point", "en")
	f.Add("quatre-vingt-dix-huit", "fr")
	f.Add("vingt et", "fr")
	f.Add("mil millones", "es")
	f.Add("dreiundzwanzigtausend", "de")
	f.Add("undundund", "de")
	f.Add("vigésimo primeiro segundo", "pt")
	f.Add("um vírgula quatrocentos e", "pt")
	f.Add("vint-i-i-u", "ca")
	f.Add("zero zero o", "en")
	f.Add("", "en")
	f.Add("\xff\xfe", "fr")

	f.Fuzz(func(t *testing.T, s, id string) {
		if _, err := lang.Get(id); err != nil {
			return
		}
		out, err := Alpha2Digit(s, id, DefaultThreshold)
		if err != nil {
			t.Fatalf("Alpha2Digit(%q, %q) error: %v", s, id, err)
		}
		again, _ := Alpha2Digit(out, id, DefaultThreshold)
		if again != out {
			t.Errorf("second pass changed %q to %q (input %q)", out, again, s)
		}
	})
}

// FuzzTextToNum verifies that TextToNum never panics and only fails with
// ErrInvalidLiteral.
func FuzzTextToNum(f *testing.F) {
	f.Add("")
	f.Add("one hundred and five")
	f.Add("hundred thousand three")
	f.Add("and and and")
	f.Add("minus minus one")
	f.Add("zero zero point")
	f.Add("centésimo quadragésimo quinto")
	f.Add("nine hundred ninety nine trillion nine hundred ninety nine billion")
	f.Add("\xff\xfe")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		for _, id := range lang.Supported() {
			_, _ = TextToNum(s, id)
			_, _ = Text2Digits(s, id)
		}
	})
}

// FuzzSpellRoundTrip verifies that TextToNum(Spell(n)) == n for all spellable n.
func FuzzSpellRoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(71))
	f.Add(int64(1_001))
	f.Add(int64(21_000_000))
	f.Add(int64(999_999_999_999))
	f.Add(int64(-5))

	f.Fuzz(func(t *testing.T, n int64) {
		for _, id := range lang.Supported() {
			text, _ := Spell(n, id)
			if text == "" {
				return
			}
			got, err := TextToNum(text, id)
			if err != nil || got != n {
				t.Errorf("%s: TextToNum(%q) = %d, %v; want %d", id, text, got, err, n)
			}
		}
	})
}
