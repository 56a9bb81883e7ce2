package volby

import (
	"net/url"
	"slices"
	"strings"
)

// Source describes the markup conventions of one results site. The
// extractors take no global configuration; everything layout-specific
// lives here so they can be exercised against synthetic hosts in tests.
type Source struct {
	// Hosts lists the acceptable hosts for an index page URL.
	Hosts []string

	// IndexPathMarker is the path segment identifying a municipality
	// listing page.
	IndexPathMarker string

	// DetailLinkMarker is the href segment identifying a link to a
	// municipality detail page.
	DetailLinkMarker string

	// LanguageQuery is the query-string fragment selecting the expected
	// page language.
	LanguageQuery string

	// NumericClass is the CSS class the source puts on numeric cells.
	NumericClass string

	// PartyNameClass is the CSS class the source puts on party name cells.
	PartyNameClass string

	// Labels of the three summary rows on a detail page.
	RegisteredLabel string
	EnvelopesLabel  string
	ValidLabel      string
}

// DefaultSource returns the Source for the PS2017 results on volby.cz.
func DefaultSource() Source {
	return Source{
		Hosts:            []string{"www.volby.cz", "volby.cz"},
		IndexPathMarker:  "/pls/ps2017nss/ps32",
		DetailLinkMarker: "ps311",
		LanguageQuery:    "xjazyk=CZ",
		NumericClass:     "cislo",
		PartyNameClass:   "overflow_name",
		RegisteredLabel:  "Voliči v seznamu",
		EnvelopesLabel:   "Vydané obálky",
		ValidLabel:       "Platné hlasy",
	}
}

// ValidIndexURL reports whether raw is an absolute URL pointing at a
// municipality listing page of this source in the expected language.
// Any parse failure or mismatch returns false; it never panics.
func (s Source) ValidIndexURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if !slices.Contains(s.Hosts, u.Host) {
		return false
	}
	return strings.Contains(u.Path, s.IndexPathMarker) &&
		strings.Contains(u.RawQuery, s.LanguageQuery)
}
