package query

import (
	"fmt"
	"time"

	errs "swarmscraper/pkg/errors"
)

// DiningType is a coarse food-and-drink classification derived from a
// venue's primary category
type DiningType string

const (
	DiningCoffee     DiningType = "coffee"
	DiningFastFood   DiningType = "fast-food"
	DiningBrewery    DiningType = "brewery"
	DiningBakery     DiningType = "bakery"
	DiningBar        DiningType = "bar"
	DiningRestaurant DiningType = "restaurant"
)

// diningRules map category-name substrings to dining types. Evaluated in
// order, first match wins. An empty type excludes the match outright:
// "Barbershop" would otherwise hit the "bar" rule.
var diningRules = []struct {
	substr string
	typ    DiningType
}{
	{"coffee", DiningCoffee},
	{"fast food", DiningFastFood},
	{"brewery", DiningBrewery},
	{"bakery", DiningBakery},
	{"barbecue", DiningRestaurant},
	{"barber", ""},
	{"bar", DiningBar},
	{"pub", DiningBar},
	{"restaurant", DiningRestaurant},
}

// ClassifyDining maps a category name to a dining type. The second return
// is false for categories outside every rule; those records are excluded
// from dining views.
func ClassifyDining(category string) (DiningType, bool) {
	if category == "" {
		return "", false
	}
	for _, rule := range diningRules {
		if containsFold(category, rule.substr) {
			if rule.typ == "" {
				return "", false
			}
			return rule.typ, true
		}
	}
	return "", false
}

// ParseDiningType validates a user-supplied dining type name
func ParseDiningType(s string) (DiningType, error) {
	switch DiningType(s) {
	case DiningCoffee, DiningFastFood, DiningBrewery, DiningBakery, DiningBar, DiningRestaurant:
		return DiningType(s), nil
	}
	return "", &errs.Error{
		Type: errs.ErrorTypeInvalidFilter,
		Message: fmt.Sprintf("unknown dining type %q - expected one of coffee, fast-food, brewery, bakery, bar, restaurant",
			s),
	}
}

// DiningCount is one dining type's tally
type DiningCount struct {
	Type  DiningType
	Count int
}

// DiningBreakdown tallies the matching records by dining type, sorted by
// count descending with type name ascending on ties. Records matching no
// rule are excluded.
func (e *Engine) DiningBreakdown(f Filter) ([]DiningCount, error) {
	records, err := e.matching(f)
	if err != nil {
		return nil, err
	}

	tally := make(map[string]int)
	for _, r := range records {
		if typ, ok := ClassifyDining(r.Category); ok {
			tally[string(typ)]++
		}
	}

	ranked := topCounts(tally, 0)
	out := make([]DiningCount, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, DiningCount{Type: DiningType(c.Label), Count: c.Count})
	}
	return out, nil
}

// DiningCheckins returns the matching dining records in collection order,
// optionally restricted to one type, capped at limit (0 means unlimited)
func (e *Engine) DiningCheckins(f Filter, typ DiningType, limit int) ([]Record, error) {
	records, err := e.matching(f)
	if err != nil {
		return nil, err
	}

	var out []Record
	for _, r := range records {
		got, ok := ClassifyDining(r.Category)
		if !ok || (typ != "" && got != typ) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// RecentDining returns dining records from the trailing window of days
func (e *Engine) RecentDining(days int, typ DiningType, limit int) ([]Record, error) {
	if days <= 0 {
		return nil, &errs.Error{
			Type:    errs.ErrorTypeInvalidFilter,
			Message: fmt.Sprintf("days must be positive, got %d", days),
		}
	}
	from := e.now().UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)
	return e.DiningCheckins(Filter{From: from}, typ, limit)
}
