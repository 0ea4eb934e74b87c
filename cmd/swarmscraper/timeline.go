package main

import (
	"github.com/spf13/cobra"

	"swarmscraper/pkg/query"
	"swarmscraper/pkg/ui"
)

var timelineFilters filterFlags

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Monthly timeline chart",
	Long:  `Chart check-ins per calendar month, oldest first.`,
	Example: `  swarmscraper timeline
  swarmscraper timeline --year 2023
  swarmscraper timeline --category coffee`,
	RunE: runTimeline,
}

func init() {
	rootCmd.AddCommand(timelineCmd)
	addFilterFlags(timelineCmd, &timelineFilters)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	filter, err := timelineFilters.build()
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

	buckets, err := engine.Timeline(filter)
	if err != nil {
		return err
	}

	printTimeline(buckets)
	return nil
}

func printTimeline(buckets []query.MonthBucket) {
	ui.PrintHeader("Timeline")

	total := 0
	bars := make([]ui.Bar, 0, len(buckets))
	for _, b := range buckets {
		total += b.Count
		bars = append(bars, ui.Bar{Label: b.Label(), Value: b.Count})
	}
	ui.PrintCount(total, "checkins")
	ui.PrintBarChart(bars, 50, len(bars))
}
