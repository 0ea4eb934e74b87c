package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"swarmscraper/pkg/config"
	"swarmscraper/pkg/foursquare"
	"swarmscraper/pkg/logger"
	"swarmscraper/pkg/query"
	"swarmscraper/pkg/storage"
	"swarmscraper/pkg/ui"
)

var (
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	dataDir    string
	inputFile  string
)

var rootCmd = &cobra.Command{
	Use:   "swarmscraper",
	Short: "Download, export and explore your Swarm check-in history",
	Long: `swarmscraper downloads your complete Foursquare/Swarm check-in history,
exports it to CSV, and answers searches and statistics over it.

Typical session:
  swarmscraper auth login          store your OAuth token
  swarmscraper download            fetch the full history
  swarmscraper stats               see where you've been
  swarmscraper                     explore interactively`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand drops into the interactive explorer
		return runInteractive(cmd, args)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is $HOME/.swarmscraper.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ./data)")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "read check-ins from an explicit JSON file")

	rootCmd.SetVersionTemplate(`swarmscraper {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig resolves configuration with flag overrides applied
func loadConfig() (*config.Config, error) {
	flags := make(map[string]interface{})
	if dataDir != "" {
		flags["data-dir"] = dataDir
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Initialize(&cfg.Logging)
	return cfg, nil
}

// openStorage builds the storage manager for the configured data directory
func openStorage(cfg *config.Config) (*storage.Manager, error) {
	return storage.NewManager(cfg.Storage.DataDir, cfg.Storage.CollectionFile, cfg.Storage.SummaryFile)
}

// loadEngine loads the persisted collection into a query engine. The
// --input flag overrides the configured collection path.
func loadEngine(cfg *config.Config) (*query.Engine, error) {
	col, err := loadCollection(cfg)
	if err != nil {
		return nil, err
	}
	return query.NewEngine(col), nil
}

func loadCollection(cfg *config.Config) (*foursquare.Collection, error) {
	if inputFile != "" {
		return storage.LoadCollectionFile(inputFile)
	}
	store, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	return store.LoadCollection()
}
