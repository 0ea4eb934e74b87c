package query

// CategoryCount is one category's share of the matching records
type CategoryCount struct {
	Name    string
	Count   int
	Percent float64
}

// Categories breaks the matching records down by primary category, sorted
// by count descending with name ascending on ties. Percent is relative to
// the categorized records. Limit 0 returns every category.
func (e *Engine) Categories(f Filter, limit int) ([]CategoryCount, error) {
	records, err := e.matching(f)
	if err != nil {
		return nil, err
	}

	tally := make(map[string]int)
	total := 0
	for _, r := range records {
		if r.Category == "" {
			continue
		}
		tally[r.Category]++
		total++
	}

	ranked := topCounts(tally, limit)
	out := make([]CategoryCount, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, CategoryCount{
			Name:    c.Label,
			Count:   c.Count,
			Percent: float64(c.Count) / float64(total) * 100,
		})
	}
	return out, nil
}
