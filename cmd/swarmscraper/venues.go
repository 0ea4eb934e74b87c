package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"swarmscraper/pkg/ui"
)

var (
	venuesFilters filterFlags
	venuesLimit   int
)

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "Top venues ranking",
	Long: `Rank venues by visit count. Venues are grouped by identifier so two
places sharing a name stay distinct; equal counts order by name.`,
	Example: `  swarmscraper venues
  swarmscraper venues --year 2023 --limit 10
  swarmscraper venues --city "los angeles"`,
	RunE: runVenues,
}

func init() {
	rootCmd.AddCommand(venuesCmd)
	addFilterFlags(venuesCmd, &venuesFilters)
	venuesCmd.Flags().IntVar(&venuesLimit, "limit", 30, "max venues to show")
}

func runVenues(cmd *cobra.Command, args []string) error {
	filter, err := venuesFilters.build()
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

	ranks, err := engine.Venues(filter, venuesLimit)
	if err != nil {
		return err
	}

	ui.PrintHeader("Venue Rankings")

	if len(ranks) == 0 {
		ui.PrintInfo("No venues found.")
		return nil
	}

	maxCount := ranks[0].Count
	nameWidth := 0
	for _, r := range ranks {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}

	for i, r := range ranks {
		barLen := r.Count * 20 / maxCount
		bar := strings.Repeat("█", barLen)
		fmt.Printf("  %3d. %-*s  %s %3d  %s  %s\n",
			i+1, nameWidth, r.Name, bar, r.Count, r.Category, r.City)
	}
	fmt.Println()
	return nil
}
