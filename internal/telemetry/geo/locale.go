package geo

import (
	"strings"

	"github.com/biter777/countries"
)

// Locale describes one ISO 3166-1 country.
type Locale struct {
	Alpha2 string
	Alpha3 string
	Name   string
}

// LocaleIndex maps 3-letter country codes to locale metadata.
// It is built once and read-only afterwards.
type LocaleIndex struct {
	byAlpha3  map[string]Locale
	alpha2To3 map[string]string
}

// NewLocaleIndex builds the index from the full ISO country list.
func NewLocaleIndex() *LocaleIndex {
	all := countries.All()
	idx := &LocaleIndex{
		byAlpha3:  make(map[string]Locale, len(all)),
		alpha2To3: make(map[string]string, len(all)),
	}
	for _, c := range all {
		if !c.IsValid() {
			continue
		}
		loc := Locale{
			Alpha2: c.Alpha2(),
			Alpha3: c.Alpha3(),
			Name:   c.String(),
		}
		if loc.Alpha2 == "" || loc.Alpha3 == "" {
			continue
		}
		idx.byAlpha3[loc.Alpha3] = loc
		idx.alpha2To3[loc.Alpha2] = loc.Alpha3
	}
	return idx
}

// Lookup returns the locale for a 3-letter code.
func (i *LocaleIndex) Lookup(alpha3 string) (Locale, bool) {
	loc, ok := i.byAlpha3[strings.ToUpper(alpha3)]
	return loc, ok
}

// Alpha3 translates a 2-letter code, returning "" when unknown.
func (i *LocaleIndex) Alpha3(alpha2 string) string {
	return i.alpha2To3[strings.ToUpper(alpha2)]
}

// Len returns the number of indexed countries.
func (i *LocaleIndex) Len() int {
	return len(i.byAlpha3)
}
