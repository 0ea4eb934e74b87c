package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"swarmscraper/pkg/export"
	"swarmscraper/pkg/ui"
)

var (
	exportYear     int
	exportCity     string
	exportCategory string
	exportOutput   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export check-ins to a CSV file",
	Long: `Export the downloaded check-in history to a fixed 24-column CSV.

Each check-in becomes exactly one row; missing fields render as empty
strings. Filters compose with AND and apply before row generation.`,
	Example: `  swarmscraper export
  swarmscraper export --year 2023 -o 2023.csv
  swarmscraper export --city "san francisco" --category coffee`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "filter by year (local time)")
	exportCmd.Flags().StringVar(&exportCity, "city", "", "filter by city (substring)")
	exportCmd.Flags().StringVar(&exportCategory, "category", "", "filter by category (substring)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (default <data-dir>/checkins.csv)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	col, err := loadCollection(cfg)
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = filepath.Join(cfg.Storage.DataDir, cfg.Storage.ExportFile)
	}

	filter := export.Filter{
		Year:     exportYear,
		City:     exportCity,
		Category: exportCategory,
	}

	n, err := export.WriteFile(path, col.Checkins, filter)
	if err != nil {
		return err
	}

	ui.PrintSuccess("Exported %d of %d check-ins to %s", n, len(col.Checkins), path)
	return nil
}
