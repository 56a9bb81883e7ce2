package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rjanotik/volby"
)

// codePattern matches a municipality code: exactly six digits.
var codePattern = regexp.MustCompile(`^\d{6}$`)

// Ensure IndexExtractor implements volby.IndexExtractor at compile time.
var _ volby.IndexExtractor = (*IndexExtractor)(nil)

// IndexExtractor finds municipality rows on a listing page. A row
// qualifies when its first cell is a six-digit code; the second cell is
// the municipality name. The detail link is searched in priority order:
// any anchor whose href contains the detail marker, then an anchor in the
// first cell, then an anchor in the last cell. Rows without a resolvable
// link are skipped — summary and footer rows can start with six digits
// too, but never link anywhere.
type IndexExtractor struct {
	Source volby.Source
}

// NewIndexExtractor creates an IndexExtractor for the given source.
func NewIndexExtractor(source volby.Source) *IndexExtractor {
	return &IndexExtractor{Source: source}
}

// ExtractMunicipalities parses the index page HTML and returns one ref
// per qualifying row, in document order, with detail links resolved
// against baseURL.
func (e *IndexExtractor) ExtractMunicipalities(html string, baseURL string) ([]volby.MunicipalityRef, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, volby.Errorf(volby.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, volby.Errorf(volby.EINVALID, "failed to parse HTML: %v", err)
	}

	rows := SelectRows(doc, func(row *goquery.Selection) bool {
		if row.Find("td").Length() < 2 {
			return false
		}
		return codePattern.MatchString(cellText(row, 0))
	})

	var refs []volby.MunicipalityRef
	for _, row := range rows {
		href := e.detailHref(row)
		if href == "" {
			continue
		}
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		refs = append(refs, volby.MunicipalityRef{
			Code:      cellText(row, 0),
			Name:      cellText(row, 1),
			DetailURL: base.ResolveReference(ref).String(),
		})
	}

	if len(refs) == 0 {
		return nil, volby.Errorf(volby.ENOTFOUND,
			"no municipalities found on the page; expected a listing with six-digit code rows")
	}
	return refs, nil
}

// detailHref picks the detail link of a qualifying row.
func (e *IndexExtractor) detailHref(row *goquery.Selection) string {
	// Preferred: any anchor in the row pointing at a detail page.
	var marked string
	row.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		if strings.Contains(href, e.Source.DetailLinkMarker) {
			marked = href
			return false
		}
		return true
	})
	if marked != "" {
		return marked
	}

	// Fallback: the code cell sometimes carries the link itself.
	cells := row.Find("td")
	if href, ok := cells.First().Find("a[href]").First().Attr("href"); ok && href != "" {
		return href
	}

	// Last resort: the trailing "X" column.
	if href, ok := cells.Last().Find("a[href]").First().Attr("href"); ok && href != "" {
		return href
	}
	return ""
}
