package query

import (
	"fmt"
	"sort"
	"time"
)

// MonthBucket is one (year, month) tally in the timeline
type MonthBucket struct {
	Year  int
	Month time.Month
	Count int
}

// Label renders the bucket as "January 2024"
func (b MonthBucket) Label() string {
	return fmt.Sprintf("%s %d", b.Month, b.Year)
}

// Timeline buckets the matching records by local (year, month) in
// chronological order. Undated records are left out. Rendering the buckets
// as bars is the caller's concern.
func (e *Engine) Timeline(f Filter) ([]MonthBucket, error) {
	records, err := e.matching(f)
	if err != nil {
		return nil, err
	}

	type key struct {
		year  int
		month time.Month
	}
	tally := make(map[key]int)
	for _, r := range records {
		if !r.HasTime {
			continue
		}
		tally[key{r.Time.Year(), r.Time.Month()}]++
	}

	out := make([]MonthBucket, 0, len(tally))
	for k, n := range tally {
		out = append(out, MonthBucket{Year: k.year, Month: k.month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}
