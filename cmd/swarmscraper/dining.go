package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swarmscraper/pkg/query"
	"swarmscraper/pkg/ui"
)

var (
	diningYear  int
	diningType  string
	diningLimit int
	diningDays  int
	diningFrom  string
	diningTo    string
)

var diningCmd = &cobra.Command{
	Use:   "dining",
	Short: "Dining breakdown by type",
	Long: `Classify check-ins into dining types (coffee, fast-food, brewery,
bakery, bar, restaurant) from their category names and show the breakdown.
Check-ins whose category matches no dining rule are left out.`,
	Example: `  swarmscraper dining
  swarmscraper dining --year 2023 --type coffee
  swarmscraper dining recent --days 30
  swarmscraper dining range --from 2023-01-01 --to 2023-06-30`,
	RunE: runDining,
}

var diningRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Recent dining check-ins",
	RunE:  runDiningRecent,
}

var diningRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Dining check-ins in a date range",
	RunE:  runDiningRange,
}

func init() {
	rootCmd.AddCommand(diningCmd)
	diningCmd.AddCommand(diningRecentCmd)
	diningCmd.AddCommand(diningRangeCmd)

	diningCmd.PersistentFlags().StringVar(&diningType, "type", "", "dining type (coffee, fast-food, brewery, bakery, bar, restaurant)")
	diningCmd.PersistentFlags().IntVar(&diningLimit, "limit", 25, "max check-ins to show")
	diningCmd.Flags().IntVar(&diningYear, "year", 0, "filter by year")

	diningRecentCmd.Flags().IntVar(&diningDays, "days", 30, "trailing window in days")

	diningRangeCmd.Flags().StringVar(&diningFrom, "from", "", "start date (YYYY-MM-DD, inclusive)")
	diningRangeCmd.Flags().StringVar(&diningTo, "to", "", "end date (YYYY-MM-DD, inclusive)")
	_ = diningRangeCmd.MarkFlagRequired("from")
	_ = diningRangeCmd.MarkFlagRequired("to")
}

func parseDiningType() (query.DiningType, error) {
	if diningType == "" {
		return "", nil
	}
	return query.ParseDiningType(diningType)
}

func runDining(cmd *cobra.Command, args []string) error {
	typ, err := parseDiningType()
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

	filter := query.Filter{Year: diningYear}

	counts, err := engine.DiningBreakdown(filter)
	if err != nil {
		return err
	}

	title := "Dining Breakdown"
	if diningYear != 0 {
		title += fmt.Sprintf(" for %d", diningYear)
	}
	ui.PrintHeader(title)

	bars := make([]ui.Bar, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, ui.Bar{Label: string(c.Type), Value: c.Count})
	}
	ui.PrintBarChart(bars, 25, len(bars))

	records, err := engine.DiningCheckins(filter, typ, diningLimit)
	if err != nil {
		return err
	}
	printDiningRecords(records)
	return nil
}

func runDiningRecent(cmd *cobra.Command, args []string) error {
	typ, err := parseDiningType()
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

	records, err := engine.RecentDining(diningDays, typ, diningLimit)
	if err != nil {
		return err
	}

	ui.PrintHeader(fmt.Sprintf("Dining in the Last %d Days", diningDays))
	ui.PrintCount(len(records), "checkins")
	printDiningRecords(records)
	return nil
}

func runDiningRange(cmd *cobra.Command, args []string) error {
	typ, err := parseDiningType()
	if err != nil {
		return err
	}

	from, err := query.ParseDate(diningFrom)
	if err != nil {
		return err
	}
	to, err := query.ParseDate(diningTo)
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

	records, err := engine.DiningCheckins(query.Filter{From: from, To: to}, typ, diningLimit)
	if err != nil {
		return err
	}

	ui.PrintHeader(fmt.Sprintf("Dining %s to %s", diningFrom, diningTo))
	ui.PrintCount(len(records), "checkins")
	printDiningRecords(records)
	return nil
}

func printDiningRecords(records []query.Record) {
	for i, r := range records {
		fmt.Println(ui.FormatCheckin(r, i+1))
	}
	fmt.Println()
}
