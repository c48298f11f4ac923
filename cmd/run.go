package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/abhisek/thermoviz/internal/app"
	"github.com/abhisek/thermoviz/internal/logger"
	"github.com/abhisek/thermoviz/internal/screens/home"
	"github.com/abhisek/thermoviz/internal/selfupdate"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive app (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().Bool("skip-welcome", false, "Open the menu without the splash animation")
		c.Flags().Bool("no-update-check", false, "Do not look for a newer release on startup")
	}
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "thermoviz.log")
	}
	logFile, err := logger.OpenFile(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logger.New(logger.WithOutput(logFile), logger.WithLevel(cfg.Level()), logger.WithColors(false))
	logger.SetDefault(log)
	ctx = logger.NewContext(ctx, log)

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	deps := home.Deps{
		Tutor:            newTutor(st),
		Settings:         st.SettingsRepo(),
		Events:           st.EventRepo(),
		AutoplayInterval: cfg.AutoplayInterval,
	}

	gen, err := newGenerator(ctx, st)
	if err != nil {
		log.Info("problem generation disabled: %v", err)
	} else {
		deps.Generator = gen
	}

	if skip, _ := cmd.Flags().GetBool("no-update-check"); !skip {
		deps.LatestVersion = latestRelease(ctx, log)
	}

	skipWelcome, _ := cmd.Flags().GetBool("skip-welcome")
	return app.Run(ctx, app.Options{
		Deps:        deps,
		Version:     version,
		SkipWelcome: skipWelcome,
	})
}

// latestRelease returns the newer release tag, or "" when up to date or
// the check fails. It gives up quickly so startup is not delayed.
func latestRelease(ctx context.Context, log *logger.Logger) string {
	if version == devVersion {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, 1500*time.Millisecond)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(1500 * time.Millisecond))
	res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		log.Debug("update check failed: %v", err)
		return ""
	}
	if !res.UpdateAvailable {
		return ""
	}
	return res.LatestVersion
}
