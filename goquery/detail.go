package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rjanotik/volby"
)

// Ensure DetailExtractor implements volby.DetailExtractor at compile time.
var _ volby.DetailExtractor = (*DetailExtractor)(nil)

// DetailExtractor pulls turnout figures and party votes out of one
// municipality detail page.
type DetailExtractor struct {
	Source volby.Source
}

// NewDetailExtractor creates a DetailExtractor for the given source.
func NewDetailExtractor(source volby.Source) *DetailExtractor {
	return &DetailExtractor{Source: source}
}

// ExtractDetail parses the detail page HTML and extracts the three
// summary figures and the merged party-vote map. Missing labels and
// missing numeric cells degrade to zeros.
func (e *DetailExtractor) ExtractDetail(html string) (*volby.Detail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, volby.Errorf(volby.EINVALID, "failed to parse HTML: %v", err)
	}

	return &volby.Detail{
		Registered: LabelValue(doc, e.Source.RegisteredLabel, e.Source.NumericClass),
		Envelopes:  LabelValue(doc, e.Source.EnvelopesLabel, e.Source.NumericClass),
		Valid:      LabelValue(doc, e.Source.ValidLabel, e.Source.NumericClass),
		Parties:    PartyVotes(doc, e.Source.PartyNameClass),
	}, nil
}

// LabelValue returns the number paired with a textual label, or 0 when
// the label is absent. The label cell is matched by exact trimmed text.
// Within the label's row, cells carrying numericClass are preferred and
// the last one wins (numeric columns are rightmost in the layout); when
// the class is missing entirely the last digit-bearing cell is used.
func LabelValue(doc *goquery.Document, label string, numericClass string) int {
	rows := SelectRows(doc, func(row *goquery.Selection) bool {
		found := false
		row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
			if strings.TrimSpace(td.Text()) == label {
				found = true
				return false
			}
			return true
		})
		return found
	})
	if len(rows) == 0 {
		return 0
	}

	row := rows[0]
	var candidates []*goquery.Selection
	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		if td.HasClass(numericClass) {
			candidates = append(candidates, td)
		}
	})
	if len(candidates) == 0 {
		row.Find("td").Each(func(_ int, td *goquery.Selection) {
			if hasDigit(td.Text()) {
				candidates = append(candidates, td)
			}
		})
	}
	if len(candidates) == 0 {
		return 0
	}
	return volby.ParseNumber(candidates[len(candidates)-1].Text())
}

// PartyVotes collects every party row in the document into one map. The
// source spreads parties over two tables on the page; rows are matched
// anywhere. A party row is any tr with a cell carrying nameClass; the
// vote count is the first other cell containing a digit (counts precede
// percentages in the layout). Rows with an empty party name are dropped.
// Duplicate names overwrite, last occurrence wins.
func PartyVotes(doc *goquery.Document, nameClass string) volby.PartyVotes {
	votes := volby.PartyVotes{}
	rows := SelectRows(doc, func(row *goquery.Selection) bool {
		return row.Find("td." + nameClass).Length() > 0
	})
	for _, row := range rows {
		nameCell := row.Find("td." + nameClass).First()
		party := strings.TrimSpace(nameCell.Text())
		if party == "" {
			continue
		}
		count := 0
		row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
			if sameNode(td, nameCell) {
				return true
			}
			if hasDigit(td.Text()) {
				count = volby.ParseNumber(td.Text())
				return false
			}
			return true
		})
		votes[party] = count
	}
	return votes
}
