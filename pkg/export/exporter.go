// Package export flattens a check-in collection into a fixed 24-column CSV.
// Every check-in becomes exactly one row regardless of how much nested data
// it carries; filters drop rows but never reshape them. Input order is
// preserved in the output.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"swarmscraper/pkg/foursquare"
)

// Filter narrows the exported rows. Zero values match everything; populated
// fields compose with AND. City and Category match case-insensitively on
// substrings.
type Filter struct {
	Year     int
	City     string
	Category string
}

// Match reports whether a row passes the filter
func (f Filter) Match(r Row) bool {
	if f.Year != 0 && r.Year != f.Year {
		return false
	}
	if f.City != "" && !strings.Contains(strings.ToLower(r.City), strings.ToLower(f.City)) {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(r.Category), strings.ToLower(f.Category)) {
		return false
	}
	return true
}

// Rows flattens and filters a collection, preserving input order
func Rows(checkins []foursquare.CheckIn, f Filter) []Row {
	out := make([]Row, 0, len(checkins))
	for _, c := range checkins {
		r := Flatten(c)
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// RenderCSV renders the header plus one record per row
func RenderCSV(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r.Record()); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the filtered collection and writes the CSV atomically.
// It returns the number of data rows written.
func WriteFile(path string, checkins []foursquare.CheckIn, f Filter) (int, error) {
	rows := Rows(checkins, f)

	data, err := RenderCSV(rows)
	if err != nil {
		return 0, err
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return 0, fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return len(rows), nil
}
