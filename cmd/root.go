package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "riskprep",
	Short: "Terminal prep course for the PMI-RMP exam",
	Long:  "RiskPrep is a self-study terminal course for risk management certification: lessons, mini-quizzes, and a timed exam simulator.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides RISKPREP_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Directory with course YAML files (overrides RISKPREP_CONTENT env var)")

	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(certCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then RISKPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadCatalog loads course content from --content, RISKPREP_CONTENT,
// or the embedded catalog.
func loadCatalog(cmd *cobra.Command) (*content.Catalog, error) {
	dir, _ := cmd.Flags().GetString("content")
	if dir == "" {
		dir = os.Getenv("RISKPREP_CONTENT")
	}
	if dir != "" {
		return content.LoadDir(dir)
	}
	return content.Load()
}

// openProgress opens the store and restores the progress state,
// falling back to a fresh default when nothing usable is persisted.
func openProgress(cmd *cobra.Command, catalog *content.Catalog) (*store.Store, *progress.Container, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	persister := store.NewPersister(st)
	state := persister.Load(context.Background())
	if state == nil {
		fresh := progress.NewState(catalog.FirstModule().ID)
		state = &fresh
	}

	return st, progress.NewContainer(*state, persister), nil
}
