package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/thermoviz/internal/config"
	"github.com/abhisek/thermoviz/internal/logger"
	"github.com/abhisek/thermoviz/internal/store"
	"github.com/spf13/cobra"
)

// cfg is loaded once before any command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "thermoviz",
	Short: "Interactive thermodynamics in the terminal",
	Long: "Thermoviz: heating curves, reaction energy diagrams, Hess's Law and " +
		"practice problems, with an AI tutor for questions.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}
		// CLI commands log to stderr; the TUI swaps this for a file.
		logger.SetDefault(logger.New(logger.WithLevel(cfg.Level()), logger.WithCaller(false)))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command, cancelling its context on SIGINT or
// SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides THERMOVIZ_DB env var)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(hessCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then THERMOVIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
