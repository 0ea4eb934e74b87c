package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swarmscraper/pkg/ui"
)

var (
	categoriesFilters filterFlags
	categoriesLimit   int
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "Category breakdown",
	Long:    `Break check-ins down by primary venue category with percentages.`,
	Example: `  swarmscraper categories
  swarmscraper categories --year 2020
  swarmscraper categories --city portland --limit 15`,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	addFilterFlags(categoriesCmd, &categoriesFilters)
	categoriesCmd.Flags().IntVar(&categoriesLimit, "limit", 30, "max categories to show")
}

func runCategories(cmd *cobra.Command, args []string) error {
	filter, err := categoriesFilters.build()
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

	cats, err := engine.Categories(filter, categoriesLimit)
	if err != nil {
		return err
	}

	ui.PrintHeader("Category Breakdown")

	bars := make([]ui.Bar, 0, len(cats))
	for _, c := range cats {
		bars = append(bars, ui.Bar{
			Label: fmt.Sprintf("%s (%.1f%%)", c.Name, c.Percent),
			Value: c.Count,
		})
	}
	ui.PrintBarChart(bars, 30, len(bars))
	return nil
}
