package lang

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned by Get for identifiers without a grammar.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// grammars maps base language codes to grammars. Built once, never mutated.
var grammars = buildRegistry()

func buildRegistry() map[string]*Grammar {
	reg := make(map[string]*Grammar)
	for _, g := range []*Grammar{english(), french(), spanish(), german(), portuguese(), catalan()} {
		reg[g.id] = g.freeze()
		tracer().Infof("grammar %s (%s): %d words", g.id, g.name, len(g.lexicon))
	}
	return reg
}

// Get returns the grammar for a language identifier. The identifier is a BCP 47
// tag; region and script subtags are accepted and matched on the base language
// ("fr-CH" selects French). An unknown or malformed identifier returns an error
// wrapping ErrUnsupportedLanguage; there is no fallback language.
func Get(id string) (*Grammar, error) {
	tag, err := language.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w %s", ErrUnsupportedLanguage, id)
	}
	base, conf := tag.Base()
	if conf == language.No {
		return nil, fmt.Errorf("%w %s", ErrUnsupportedLanguage, id)
	}
	g, ok := grammars[base.String()]
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnsupportedLanguage, id)
	}
	return g, nil
}

// Supported returns the identifiers of all supported languages, sorted.
func Supported() []string {
	ids := make([]string, 0, len(grammars))
	for id := range grammars {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
