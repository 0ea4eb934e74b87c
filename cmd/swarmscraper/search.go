package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swarmscraper/pkg/query"
	"swarmscraper/pkg/ui"
)

var (
	searchFilters filterFlags
	searchLimit   int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search check-ins with filters",
	Long: `Search the downloaded check-in history.

Text filters match case-insensitive substrings; year and month are exact
matches on local time; all filters compose with AND. Results keep the
collection's newest-first order.`,
	Example: `  swarmscraper search --venue starbucks
  swarmscraper search --year 2019 --city "san francisco"
  swarmscraper search --category sushi --limit 50
  swarmscraper search --from 2023-01-01 --to 2023-06-30`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	addFilterFlags(searchCmd, &searchFilters)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 25, "max results to show")
}

func runSearch(cmd *cobra.Command, args []string) error {
	filter, err := searchFilters.build()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	results, total, err := engine.Search(filter, searchLimit)
	if err != nil {
		return err
	}

	ui.PrintHeader(searchTitle(filter))
	ui.PrintCount(total, "checkins")

	for i, r := range results {
		fmt.Println(ui.FormatCheckin(r, i+1))
	}
	fmt.Println()

	if total > len(results) {
		ui.PrintInfo("Showing %d of %d results. Use --limit to see more.", len(results), total)
	}
	return nil
}

func searchTitle(f query.Filter) string {
	var parts []string
	if f.Year != 0 {
		parts = append(parts, fmt.Sprintf("year=%d", f.Year))
	}
	if f.Month != 0 {
		parts = append(parts, fmt.Sprintf("month=%d", f.Month))
	}
	if f.Venue != "" {
		parts = append(parts, fmt.Sprintf("venue~%q", f.Venue))
	}
	if f.Category != "" {
		parts = append(parts, fmt.Sprintf("category~%q", f.Category))
	}
	if f.City != "" {
		parts = append(parts, fmt.Sprintf("city~%q", f.City))
	}
	if f.State != "" {
		parts = append(parts, fmt.Sprintf("state=%s", f.State))
	}
	if f.Shout != "" {
		parts = append(parts, fmt.Sprintf("shout~%q", f.Shout))
	}
	if !f.From.IsZero() {
		parts = append(parts, "from="+f.From.Format(query.DateLayout))
	}
	if !f.To.IsZero() {
		parts = append(parts, "to="+f.To.Format(query.DateLayout))
	}
	if len(parts) == 0 {
		return "All Checkins"
	}
	return "Search: " + strings.Join(parts, ", ")
}
