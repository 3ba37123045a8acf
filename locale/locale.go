// Package locale provides the phrase catalogs used to describe recurrence
// rules and to report validation failures. A catalog is chosen explicitly by
// the caller and passed to the engine; nothing here touches process-wide
// locale state.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Key identifies a phrase or label in a catalog.
type Key string

// Catalog supplies the translated phrases for a single culture.
type Catalog interface {
	// Tag returns the language tag of the catalog.
	Tag() language.Tag

	// Text returns the phrase for the key.
	Text(key Key) string

	// DateLayout returns the time.Format layout for dates.
	DateLayout() string

	// TimeLayout returns the time.Format layout for times of day.
	TimeLayout() string
}

type table struct {
	tag        language.Tag
	phrases    map[Key]string
	dateLayout string
	timeLayout string
	fallback   *table
}

var _ Catalog = (*table)(nil)

func (t *table) Tag() language.Tag {
	return t.tag
}

// Text returns the phrase for the key, falling back to the parent table and
// finally to the key itself.
func (t *table) Text(key Key) string {
	for c := t; c != nil; c = c.fallback {
		if phrase, ok := c.phrases[key]; ok {
			return phrase
		}
	}
	return string(key)
}

func (t *table) DateLayout() string {
	return t.dateLayout
}

func (t *table) TimeLayout() string {
	return t.timeLayout
}

// Supported catalogs.
var (
	English Catalog = english
	Spanish Catalog = spanish
)

var (
	supported = []*table{english, spanish}
	matcher   = language.NewMatcher([]language.Tag{english.tag, spanish.tag})
)

// Default returns the catalog used when none is configured.
func Default() Catalog {
	return English
}

// Match returns the supported catalog that best matches the preferred tags,
// in order of preference. English is returned when nothing matches.
func Match(preferred ...language.Tag) Catalog {
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return English
	}
	return supported[index]
}

// Parse selects a catalog for a BCP 47 culture name such as "en-US" or
// "es-ES".
func Parse(culture string) (Catalog, error) {
	tag, err := language.Parse(culture)
	if err != nil {
		return nil, fmt.Errorf("parse culture %q: %w", culture, err)
	}
	return Match(tag), nil
}
