package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"swarmscraper/pkg/query"
	"swarmscraper/pkg/ui"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive query session",
	Long: `Explore the downloaded history interactively. The collection is
loaded once and queried in memory for the whole session.

Type free text to search across venue, category, city, shout and
neighborhood, or combine key-value filters like 'year 2019 city tokyo'.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	ui.PrintHeader("Swarm Checkin Explorer")
	fmt.Printf("  %d checkins loaded\n", engine.Len())
	ui.PrintInfo("Type a search query or command. Type 'help' for options.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("swarm> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		parsed, err := query.ParseCommand(scanner.Text())
		if err != nil {
			ui.PrintError("%v", err)
			continue
		}

		switch parsed.Kind {
		case query.CmdEmpty:
			continue
		case query.CmdQuit:
			return nil
		case query.CmdHelp:
			printInteractiveHelp()
		case query.CmdStats:
			if report, err := engine.Stats(parsed.Filter); err != nil {
				ui.PrintError("%v", err)
			} else {
				printStats(report, parsed.Filter)
			}
		case query.CmdVenues:
			runInteractiveVenues(engine, parsed.Filter)
		case query.CmdTimeline:
			if buckets, err := engine.Timeline(parsed.Filter); err != nil {
				ui.PrintError("%v", err)
			} else {
				printTimeline(buckets)
			}
		case query.CmdCategories:
			runInteractiveCategories(engine, parsed.Filter)
		case query.CmdDining:
			runInteractiveDining(engine, parsed.Filter)
		default:
			runInteractiveSearch(engine, parsed.Filter, scanner.Text())
		}
	}
}

func runInteractiveSearch(engine *query.Engine, filter query.Filter, raw string) {
	const showN = 25

	results, total, err := engine.Search(filter, showN)
	if err != nil {
		ui.PrintError("%v", err)
		return
	}
	if total == 0 {
		ui.PrintInfo("No results found.")
		fmt.Println()
		return
	}

	ui.PrintHeader(fmt.Sprintf("Results for %q", strings.TrimSpace(raw)))
	ui.PrintCount(total, "checkins")
	for i, r := range results {
		fmt.Println(ui.FormatCheckin(r, i+1))
	}
	fmt.Println()

	if total > len(results) {
		ui.PrintInfo("Showing %d of %d. Narrow your search to see more.", len(results), total)
	}
}

func runInteractiveVenues(engine *query.Engine, filter query.Filter) {
	ranks, err := engine.Venues(filter, 30)
	if err != nil {
		ui.PrintError("%v", err)
		return
	}
	ui.PrintHeader("Venue Rankings")
	bars := make([]ui.Bar, 0, len(ranks))
	for _, r := range ranks {
		bars = append(bars, ui.Bar{Label: r.Name, Value: r.Count})
	}
	ui.PrintBarChart(bars, 20, len(bars))
}

func runInteractiveCategories(engine *query.Engine, filter query.Filter) {
	cats, err := engine.Categories(filter, 30)
	if err != nil {
		ui.PrintError("%v", err)
		return
	}
	ui.PrintHeader("Category Breakdown")
	bars := make([]ui.Bar, 0, len(cats))
	for _, c := range cats {
		bars = append(bars, ui.Bar{Label: c.Name, Value: c.Count})
	}
	ui.PrintBarChart(bars, 30, len(bars))
}

func runInteractiveDining(engine *query.Engine, filter query.Filter) {
	counts, err := engine.DiningBreakdown(filter)
	if err != nil {
		ui.PrintError("%v", err)
		return
	}
	ui.PrintHeader("Dining Breakdown")
	bars := make([]ui.Bar, 0, len(counts))
	for _, c := range counts {
		bars = append(bars, ui.Bar{Label: string(c.Type), Value: c.Count})
	}
	ui.PrintBarChart(bars, 25, len(bars))
}

func printInteractiveHelp() {
	fmt.Println(`
  Quick Search:
    Just type a venue name, city, or category to search across all fields.

  Filters (can combine):
    year YYYY         Filter by year          (e.g., year 2019)
    month N           Filter by month 1-12    (e.g., month 12)
    city NAME         Filter by city          (e.g., city irvine)
    state XX          Filter by state         (e.g., state CA)
    cat NAME          Filter by category      (e.g., cat sushi)

  Commands:
    stats [YYYY]      Overall stats, optionally for one year
    venues [YYYY]     Top venues ranking
    timeline [YYYY]   Monthly timeline chart
    categories [YYYY] Category breakdown
    dining [YYYY]     Dining-type breakdown
    help              This help
    quit              Exit`)
	fmt.Println()
}
