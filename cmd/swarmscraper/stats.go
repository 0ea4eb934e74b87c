package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"swarmscraper/pkg/query"
	"swarmscraper/pkg/ui"
)

var statsFilters filterFlags

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stats and charts",
	Long: `Show aggregate statistics over the downloaded history: totals, top
venues, categories and cities, plus day-of-week and monthly breakdowns.`,
	Example: `  swarmscraper stats
  swarmscraper stats --year 2023
  swarmscraper stats --city tokyo`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addFilterFlags(statsCmd, &statsFilters)
}

func runStats(cmd *cobra.Command, args []string) error {
	filter, err := statsFilters.build()
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

	report, err := engine.Stats(filter)
	if err != nil {
		return err
	}

	printStats(report, filter)
	return nil
}

func printStats(report *query.StatsReport, filter query.Filter) {
	title := "Stats"
	if filter.Year != 0 {
		title += fmt.Sprintf(" for %d", filter.Year)
	}
	if filter.Month != 0 {
		title += " " + time.Month(filter.Month).String()
	}
	ui.PrintHeader(title)
	ui.PrintCount(report.Total, "checkins")

	if report.Total == 0 {
		return
	}

	ui.PrintInfo("%d distinct venues across %d cities", report.UniqueVenues, report.UniqueCities)
	if report.BusiestDay != "" {
		ui.PrintInfo("Busiest day: %s, busiest month: %s", report.BusiestDay, report.BusiestMonth)
	}
	fmt.Println()

	fmt.Println("  Top Venues")
	ui.PrintBarChart(countBars(report.TopVenues), 25, 20)

	fmt.Println("  Top Categories")
	ui.PrintBarChart(countBars(report.TopCategories), 25, 20)

	fmt.Println("  Top Cities")
	ui.PrintBarChart(countBars(report.TopCities), 25, 20)

	if filter.Month == 0 {
		fmt.Println("  By Month")
		bars := make([]ui.Bar, 12)
		for i, n := range report.ByMonth {
			bars[i] = ui.Bar{Label: time.Month(i + 1).String()[:3], Value: n}
		}
		ui.PrintBarChart(bars, 25, 12)
	}

	fmt.Println("  By Day of Week")
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	bars := make([]ui.Bar, 7)
	for i, n := range report.ByDay {
		bars[i] = ui.Bar{Label: days[i], Value: n}
	}
	ui.PrintBarChart(bars, 25, 7)
}

func countBars(counts []query.Count) []ui.Bar {
	bars := make([]ui.Bar, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, ui.Bar{Label: c.Label, Value: c.Count})
	}
	return bars
}
