package lang

import (
	"slices"
	"strings"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name  string
		lang  string
		token string
		want  []string
	}{
		{"plain word", "en", "seven", []string{"seven"}},
		{"connector alone", "en", "and", []string{"and"}},
		{"en hyphen", "en", "twenty-one", []string{"twenty", "one"}},
		{"fr listed hyphen word", "fr", "dix-huit", []string{"dix-huit"}},
		{"fr longest match", "fr", "quatre-vingt-dix-huit", []string{"quatre-vingt", "dix-huit"}},
		{"fr hyphenated connector", "fr", "vingt-et-un", []string{"vingt", "et", "un"}},
		{"fr ordinal part", "fr", "trente-deuxième", []string{"trente", "deuxième"}},
		{"de compound", "de", "dreiundzwanzig", []string{"drei", "und", "zwanzig"}},
		{"de compound ordinal", "de", "einundzwanzigste", []string{"ein", "und", "zwanzigste"}},
		{"de hundreds", "de", "zweihundertfünf", []string{"zwei", "hundert", "fünf"}},
		{"de thousands", "de", "eintausendeins", []string{"ein", "tausend", "eins"}},
		{"de backtracking", "de", "achtzehn", []string{"achtzehn"}},
		{"de teen inside", "de", "hundertachtzehn", []string{"hundert", "achtzehn"}},
		{"de hyphenated compound", "de", "drei-hundert", []string{"drei", "hundert"}},
		{"ca connector inside", "ca", "vint-i-cinc", []string{"vint", "i", "cinc"}},
		{"ca ten unit", "ca", "trenta-u", []string{"trenta", "u"}},
		{"ca listed hundred", "ca", "dos-cents", []string{"dos-cents"}},
		{"ca compound ordinal", "ca", "vint-i-unè", []string{"vint", "i", "unè"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := mustGet(t, tt.lang).Segment(tt.token)
			if !ok {
				t.Fatalf("Segment(%q) failed", tt.token)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Segment(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestSegmentRejects(t *testing.T) {
	tests := []struct {
		lang  string
		token string
	}{
		{"en", ""},
		{"en", "apple"},
		{"en", "twentyone"},
		{"en", "twenty--one"},
		{"en", "-one"},
		{"en", "twenty-apple"},
		{"fr", "vingtet"},
		{"de", "apfel"},
		{"de", "dreiundzwanzigx"},
		{"de", "und-"},
		{"pt", "vinteum"},
		{"ca", "vint-i-poma"},
	}
	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.token, func(t *testing.T) {
			t.Parallel()
			if got, ok := mustGet(t, tt.lang).Segment(tt.token); ok {
				t.Errorf("Segment(%q) = %q, want failure", tt.token, got)
			}
		})
	}
}

// Every generated spelling must segment into known words.
func TestSegmentSpellings(t *testing.T) {
	t.Parallel()
	for _, id := range Supported() {
		g := mustGet(t, id)
		for _, n := range []int64{1, 17, 21, 42, 71, 80, 99, 101, 999, 1234, 21000, 999999} {
			for _, tok := range strings.Fields(g.Spell(n)) {
				if _, ok := g.Segment(tok); !ok {
					t.Errorf("%s: Segment(%q) from Spell(%d) failed", id, tok, n)
				}
			}
		}
	}
}

func BenchmarkSegmentCompound(b *testing.B) {
	g, _ := Get("de")
	for b.Loop() {
		g.Segment("neunhundertneunundneunzigtausendneunhundertneunundneunzig")
	}
}
