// Package csv serializes scrape results as a delimited table using
// encoding/csv.
package csv

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/rjanotik/volby"
)

// utf8BOM prefixes the output so spreadsheet software renders the Czech
// party names correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// fixedHeader lists the non-party columns, in output order.
var fixedHeader = []string{"code", "location", "registered", "envelopes", "valid"}

// Ensure Writer implements volby.ResultWriter at compile time.
var _ volby.ResultWriter = (*Writer)(nil)

// Writer writes the result table to an io.Writer. The column set is the
// sorted union of party names across all results, so the full result
// list has to be available before the header can be written.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteResults writes the header and one row per result in a single
// pass. Parties absent from a municipality's map are written as 0.
func (w *Writer) WriteResults(results []volby.Result) error {
	if _, err := w.w.Write(utf8BOM); err != nil {
		return err
	}

	parties := partyUnion(results)

	cw := csv.NewWriter(w.w)
	cw.UseCRLF = true

	header := append(append([]string{}, fixedHeader...), parties...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for _, res := range results {
		row = row[:0]
		row = append(row,
			res.Summary.Code,
			res.Summary.Location,
			strconv.Itoa(res.Summary.Registered),
			strconv.Itoa(res.Summary.Envelopes),
			strconv.Itoa(res.Summary.Valid),
		)
		for _, p := range parties {
			row = append(row, strconv.Itoa(res.Parties[p]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// partyUnion returns the sorted union of party names across all results.
func partyUnion(results []volby.Result) []string {
	seen := make(map[string]struct{})
	for _, res := range results {
		for p := range res.Parties {
			seen[p] = struct{}{}
		}
	}
	parties := make([]string, 0, len(seen))
	for p := range seen {
		parties = append(parties, p)
	}
	sort.Strings(parties)
	return parties
}
