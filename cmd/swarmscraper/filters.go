package main

import (
	"github.com/spf13/cobra"

	"swarmscraper/pkg/query"
)

// filterFlags carries the shared search filter flags
type filterFlags struct {
	year     int
	month    int
	venue    string
	category string
	city     string
	state    string
	shout    string
	from     string
	to       string
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().IntVar(&f.year, "year", 0, "filter by year")
	cmd.Flags().IntVar(&f.month, "month", 0, "filter by month (1-12)")
	cmd.Flags().StringVar(&f.venue, "venue", "", "search venue name (substring)")
	cmd.Flags().StringVar(&f.category, "category", "", "search category (substring)")
	cmd.Flags().StringVar(&f.city, "city", "", "search city (substring)")
	cmd.Flags().StringVar(&f.state, "state", "", "filter by state code (e.g. CA)")
	cmd.Flags().StringVar(&f.shout, "shout", "", "search shout text (substring)")
	cmd.Flags().StringVar(&f.from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&f.to, "to", "", "end date (YYYY-MM-DD, inclusive)")
}

// build converts the flag values to a validated query filter
func (f *filterFlags) build() (query.Filter, error) {
	filter := query.Filter{
		Year:     f.year,
		Month:    f.month,
		Venue:    f.venue,
		Category: f.category,
		City:     f.city,
		State:    f.state,
		Shout:    f.shout,
	}

	if f.from != "" {
		from, err := query.ParseDate(f.from)
		if err != nil {
			return query.Filter{}, err
		}
		filter.From = from
	}
	if f.to != "" {
		to, err := query.ParseDate(f.to)
		if err != nil {
			return query.Filter{}, err
		}
		filter.To = to
	}

	if err := filter.Validate(); err != nil {
		return query.Filter{}, err
	}
	return filter, nil
}
