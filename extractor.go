package volby

// IndexExtractor finds municipality rows on an index page.
type IndexExtractor interface {
	// ExtractMunicipalities parses the index page HTML and returns one
	// ref per qualifying row, in document order. Relative detail links
	// are resolved against baseURL. Returns an ENOTFOUND error when no
	// qualifying row is found at all; a single unusable row is skipped.
	ExtractMunicipalities(html string, baseURL string) ([]MunicipalityRef, error)
}

// DetailExtractor pulls turnout figures and party votes out of one
// municipality detail page.
type DetailExtractor interface {
	// ExtractDetail parses the detail page HTML. Missing labels and
	// missing numeric cells degrade to zero values, not errors; an error
	// is returned only when the document cannot be parsed at all.
	ExtractDetail(html string) (*Detail, error)
}

// ResultWriter serializes the final table.
type ResultWriter interface {
	// WriteResults writes one row per result. The column set is the
	// union of all party names across all results, so it must receive
	// the complete result list in one call.
	WriteResults(results []Result) error
}
