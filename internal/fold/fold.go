// Package fold lower-cases text the way the number lexicons expect it:
// composed to NFC first, then mapped with the case rules of the language.
//
// A Folder is not safe for concurrent use; create one per goroutine.
package fold

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Folder lower-cases strings for one language.
type Folder struct {
	lower cases.Caser
}

// New returns a Folder applying the lower-casing rules of tag.
func New(tag language.Tag) *Folder {
	return &Folder{lower: cases.Lower(tag)}
}

// Lower returns the NFC-composed lowercase form of s.
// Decomposed accents ("e" + U+0301) are composed so they match the
// precomposed spellings of the lexicons.
func (f *Folder) Lower(s string) string {
	if !norm.NFC.IsNormalString(s) {
		s = norm.NFC.String(s)
	}
	return f.lower.String(s)
}

// Lower is a one-shot helper around New(tag).Lower(s).
func Lower(tag language.Tag, s string) string {
	return New(tag).Lower(s)
}
