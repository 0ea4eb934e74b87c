package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	errs "swarmscraper/pkg/errors"
)

// DateLayout is the format accepted for date-range bounds
const DateLayout = "2006-01-02"

// Filter narrows the record set. Zero values match everything; populated
// fields compose with AND. Venue, Category, City and Shout match
// case-insensitively on substrings; State matches exactly (ignoring case);
// Year and Month are exact matches on the local clock; Text scans venue,
// category, city, shout and neighborhood. From/To bound the local date
// inclusively.
type Filter struct {
	Year     int
	Month    int
	Venue    string
	Category string
	City     string
	State    string
	Shout    string
	Text     string
	From     time.Time
	To       time.Time
}

// IsZero reports whether the filter matches everything
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Validate rejects filter values that cannot be satisfied. It runs before
// any data is loaded or scanned.
func (f Filter) Validate() error {
	if f.Month != 0 && (f.Month < 1 || f.Month > 12) {
		return &errs.Error{
			Type:    errs.ErrorTypeInvalidFilter,
			Message: fmt.Sprintf("month must be between 1 and 12, got %d", f.Month),
		}
	}
	if !f.From.IsZero() && !f.To.IsZero() && f.To.Before(f.From) {
		return &errs.Error{
			Type:    errs.ErrorTypeInvalidFilter,
			Message: fmt.Sprintf("date range end %s is before start %s", f.To.Format(DateLayout), f.From.Format(DateLayout)),
		}
	}
	return nil
}

// Match reports whether a record passes every populated filter field
func (f Filter) Match(r Record) bool {
	if f.Year != 0 && (!r.HasTime || r.Time.Year() != f.Year) {
		return false
	}
	if f.Month != 0 && (!r.HasTime || int(r.Time.Month()) != f.Month) {
		return false
	}
	if !f.From.IsZero() || !f.To.IsZero() {
		if !r.HasTime {
			return false
		}
		day := r.Time.Truncate(24 * time.Hour)
		if !f.From.IsZero() && day.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && day.After(f.To) {
			return false
		}
	}
	if f.Venue != "" && !containsFold(r.Venue, f.Venue) {
		return false
	}
	if f.Category != "" && !containsFold(r.Category, f.Category) && !containsFold(r.CategoryShort, f.Category) {
		return false
	}
	if f.City != "" && !containsFold(r.City, f.City) {
		return false
	}
	if f.State != "" && !strings.EqualFold(r.State, f.State) {
		return false
	}
	if f.Shout != "" && (r.Shout == "" || !containsFold(r.Shout, f.Shout)) {
		return false
	}
	if f.Text != "" && !matchText(r, f.Text) {
		return false
	}
	return true
}

func matchText(r Record, text string) bool {
	return containsFold(r.Venue, text) ||
		containsFold(r.Category, text) ||
		containsFold(r.City, text) ||
		(r.Shout != "" && containsFold(r.Shout, text)) ||
		containsFold(r.Neighborhood, text)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// ParseYear converts a user-supplied year string
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, &errs.Error{
			Type:    errs.ErrorTypeInvalidFilter,
			Message: fmt.Sprintf("invalid year %q - expected a number", s),
		}
	}
	return year, nil
}

// ParseMonth converts a user-supplied month string, enforcing the 1-12 range
func ParseMonth(s string) (int, error) {
	month, err := strconv.Atoi(s)
	if err != nil || month < 1 || month > 12 {
		return 0, &errs.Error{
			Type:    errs.ErrorTypeInvalidFilter,
			Message: fmt.Sprintf("invalid month %q - expected a number between 1 and 12", s),
		}
	}
	return month, nil
}

// ParseDate converts a user-supplied YYYY-MM-DD date string
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &errs.Error{
			Type:    errs.ErrorTypeInvalidFilter,
			Message: fmt.Sprintf("invalid date %q - expected YYYY-MM-DD", s),
		}
	}
	return t, nil
}
