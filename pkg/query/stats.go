package query

import "time"

// weekdays in the enumeration order used for tallies and tie-breaks
var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// StatsReport is the aggregate view over a (possibly filtered) record set
type StatsReport struct {
	Total         int
	UniqueVenues  int
	UniqueCities  int
	BusiestDay    string
	BusiestMonth  time.Month
	TopVenues     []Count
	TopCategories []Count
	TopCities     []Count

	// ByDay is indexed Monday..Sunday, ByMonth January..December
	ByDay   [7]int
	ByMonth [12]int
}

// Stats computes the dashboard aggregates for the records matching the
// filter. Busiest day and month are modes over the local clock; ties go to
// the earlier entry in the fixed enumeration order.
func (e *Engine) Stats(f Filter) (*StatsReport, error) {
	records, err := e.matching(f)
	if err != nil {
		return nil, err
	}

	report := &StatsReport{Total: len(records)}

	venues := make(map[string]int)
	categories := make(map[string]int)
	cities := make(map[string]int)

	for _, r := range records {
		if r.Venue != "" {
			venues[r.Venue]++
		}
		if r.Category != "" {
			categories[r.Category]++
		}
		if r.City != "" {
			cities[r.City]++
		}
		if r.HasTime {
			report.ByDay[weekdayIndex(r.Time.Weekday())]++
			report.ByMonth[int(r.Time.Month())-1]++
		}
	}

	report.UniqueVenues = len(venues)
	report.UniqueCities = len(cities)
	report.TopVenues = topCounts(venues, 20)
	report.TopCategories = topCounts(categories, 20)
	report.TopCities = topCounts(cities, 20)

	best := 0
	for i, n := range report.ByDay {
		if n > best {
			best = n
			report.BusiestDay = weekdays[i]
		}
	}
	best = 0
	for i, n := range report.ByMonth {
		if n > best {
			best = n
			report.BusiestMonth = time.Month(i + 1)
		}
	}

	return report, nil
}

// weekdayIndex maps time.Weekday (Sunday-first) to Monday-first position
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
