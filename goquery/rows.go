// Package goquery implements the volby extractors on top of
// github.com/PuerkitoBio/goquery.
//
// The results site publishes no stable schema; rows are recognized by
// incidental structure (cell position, CSS class markers). The heuristics
// are kept in two layers: a generic row-selection primitive in this file,
// and the label/party specific predicates built on top of it in index.go
// and detail.go, so each layer can be tested on its own.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RowPredicate decides whether a table row is interesting.
type RowPredicate func(row *goquery.Selection) bool

// SelectRows returns every tr element in the document, in document order,
// for which pred returns true. Rows are matched across all tables; the
// source splits logically contiguous data over several of them.
func SelectRows(doc *goquery.Document, pred RowPredicate) []*goquery.Selection {
	var rows []*goquery.Selection
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if pred(row) {
			rows = append(rows, row)
		}
	})
	return rows
}

// cellText returns the trimmed text of the i-th td in the row.
// Out-of-range indices return the empty string.
func cellText(row *goquery.Selection, i int) string {
	return strings.TrimSpace(row.Find("td").Eq(i).Text())
}

// hasDigit reports whether s contains at least one ASCII digit.
func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// sameNode reports whether two selections wrap the same underlying node.
func sameNode(a, b *goquery.Selection) bool {
	return len(a.Nodes) > 0 && len(b.Nodes) > 0 && a.Nodes[0] == b.Nodes[0]
}
