package numtext

import (
	"strings"
	"sync"
	"testing"
)

// TestConcurrentSafety verifies all functions are safe for concurrent use.
func TestConcurrentSafety(t *testing.T) {
	var wg sync.WaitGroup

	const goroutines = 100

	for range goroutines {
		wg.Go(func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic in concurrent call: %v", r)
				}
			}()

			if got, _ := Alpha2Digit("twenty-three apples", "en", DefaultThreshold); got != "23 apples" {
				t.Errorf("Alpha2Digit = %q", got)
			}
			_, _ = Alpha2Digit("vingt et un ans", "fr", DefaultThreshold)
			_, _ = Alpha2Digit("dreiundzwanzig Äpfel", "de", DefaultThreshold)
			_, _ = TextToNum("mil novecientos ochenta y cuatro", "es")
			_, _ = Alpha2Digit("vigésimo segundo", "pt", DefaultThreshold)
			_, _ = Text2Digits("vint-i-unè", "ca")
			_, _ = Text2Digits("two and a half", "en")
			_, _ = Spell(123_456, "fr")
		})
	}

	wg.Wait()
}

// TestLargeInput verifies long inputs are processed without pathological cost
// or panics.
func TestLargeInput(t *testing.T) {
	tests := []struct {
		name  string
		lang  string
		input string
	}{
		{"many phrases", "en", strings.Repeat("twenty-one and ", 5000)},
		{"long dictation", "en", strings.Repeat("one ", 5000)},
		{"repeated connectors", "en", strings.Repeat("and ", 5000)},
		{"long german compound", "de", strings.Repeat("und", 2000)},
		{"long glued number", "de", strings.Repeat("eins", 500)},
		{"long hyphen chain", "fr", strings.Repeat("vingt-", 2000) + "un"},
		{"long zero run", "en", strings.Repeat("zero ", 5000)},
		{"long ordinal chain", "pt", strings.Repeat("vigésimo ", 2000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panic: %v", r)
				}
			}()
			out, err := Alpha2Digit(tt.input, tt.lang, DefaultThreshold)
			if err != nil {
				t.Fatalf("error: %v", err)
			}
			if out == "" && tt.input != "" {
				t.Error("empty output")
			}
		})
	}
}

// TestMalformedInput verifies arbitrary text never panics.
func TestMalformedInput(t *testing.T) {
	malformed := []string{
		"",
		" ",
		"\t\n",
		"\xff\xfe",
		string([]byte{0x00}),
		"minus minus one",
		"point point",
		"and a half",
		"one hundred and a",
		"-twenty-",
		"twenty--one",
	}
	for _, input := range malformed {
		t.Run("", func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("panicked on %q: %v", input, r)
				}
			}()
			_, _ = TextToNum(input, "en")
			_, _ = Text2Digits(input, "en")
			_, _ = Alpha2Digit(input, "en", DefaultThreshold)
		})
	}
}
