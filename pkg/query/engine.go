// Package query answers read-only searches and aggregations over a loaded
// check-in collection. An Engine is built once from a Collection and treated
// as immutable for its lifetime; every operation is a linear scan over the
// projected records, preserving the collection's newest-first order.
package query

import (
	"sort"
	"time"

	"swarmscraper/pkg/foursquare"
)

// Engine holds the projected records for one loaded collection
type Engine struct {
	records []Record

	// now is swappable for tests
	now func() time.Time
}

// NewEngine projects a collection into an immutable query engine
func NewEngine(col *foursquare.Collection) *Engine {
	records := make([]Record, 0, len(col.Checkins))
	for _, c := range col.Checkins {
		records = append(records, project(c))
	}
	return &Engine{records: records, now: time.Now}
}

// Len returns the number of records loaded
func (e *Engine) Len() int {
	return len(e.records)
}

// Search returns the records matching the filter in collection order,
// capped at limit (0 means unlimited). The total match count is returned
// alongside so callers can report truncation.
func (e *Engine) Search(f Filter, limit int) ([]Record, int, error) {
	if err := f.Validate(); err != nil {
		return nil, 0, err
	}

	var out []Record
	total := 0
	for _, r := range e.records {
		if !f.Match(r) {
			continue
		}
		total++
		if limit <= 0 || len(out) < limit {
			out = append(out, r)
		}
	}
	return out, total, nil
}

func (e *Engine) matching(f Filter) ([]Record, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	var out []Record
	for _, r := range e.records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Count is one labeled tally in a ranked breakdown
type Count struct {
	Label string
	Count int
}

// topCounts ranks a tally map by count descending, label ascending on ties,
// keeping the first n entries (0 means all)
func topCounts(tally map[string]int, n int) []Count {
	out := make([]Count, 0, len(tally))
	for label, count := range tally {
		out = append(out, Count{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
