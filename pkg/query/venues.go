package query

import "sort"

// VenueRank is one entry in the venue ranking. Category and City come from
// the most recent visit so renamed or relocated venues show current data.
type VenueRank struct {
	Name     string
	Count    int
	Category string
	City     string
}

// Venues ranks venues by visit count for the records matching the filter.
// Grouping is by venue identifier so same-named venues stay distinct; ties
// break by name ascending. Limit 0 returns the full ranking.
func (e *Engine) Venues(f Filter, limit int) ([]VenueRank, error) {
	records, err := e.matching(f)
	if err != nil {
		return nil, err
	}

	type group struct {
		rank   VenueRank
		latest Record
	}
	groups := make(map[string]*group)

	for _, r := range records {
		if r.Venue == "" {
			continue
		}
		key := r.VenueID
		if key == "" {
			key = r.Venue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{rank: VenueRank{Name: r.Venue}, latest: r}
			groups[key] = g
		}
		g.rank.Count++
		if r.HasTime && (!g.latest.HasTime || r.Time.After(g.latest.Time)) {
			g.latest = r
		}
	}

	out := make([]VenueRank, 0, len(groups))
	for _, g := range groups {
		cat := g.latest.CategoryShort
		if cat == "" {
			cat = g.latest.Category
		}
		g.rank.Category = cat
		g.rank.City = g.latest.City
		out = append(out, g.rank)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
