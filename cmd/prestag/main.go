package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raybunnage/prestag/internal/classify"
	"github.com/raybunnage/prestag/internal/config"
	"github.com/raybunnage/prestag/internal/dimensions"
	"github.com/raybunnage/prestag/internal/logging"
	"github.com/raybunnage/prestag/internal/store"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "prestag",
		Short: "Multi-dimensional content classification",
		Long: `prestag classifies free text along independent dimensions -
topics, complexity, application context, approach type, evidence level,
patient population, temporal relevance, and learning modality - producing
confidence-scored candidate tags for human review.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default ~/.prestag/config.yaml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newClassifyCmd(),
		newTagCmd(),
		newShowCmd(),
		newDimensionsCmd(),
		newTaxonomyCmd(),
		newValidateCmd(),
		newDisplayCmd(),
		newSimilarCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("prestag version %s\n", version)
			}
		},
	}
}

// loadConfig loads the configuration honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEngine builds an engine wired to the configured loggers.
func newEngine(cfg *config.Config) *classify.Engine {
	log := logging.NewLogger(cfg.Logging.Level, os.Stderr)
	decisions := logging.NewDecisionLogger(cfg.Logging.Dir, cfg.Logging.Level)
	return classify.NewEngine(dimensions.NewRegistry(),
		classify.WithLogger(log),
		classify.WithDecisionLogger(decisions),
	)
}

// openStore opens the configured tag store: SQLite when a path is set,
// in-memory otherwise.
func openStore(cfg *config.Config) (store.TagStore, error) {
	if cfg.Store.Path == "" {
		return store.NewInMemoryTagStore(), nil
	}
	return store.NewSQLiteTagStore(cfg.Store.Path)
}
