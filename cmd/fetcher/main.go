package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/cricket-match-fetcher/internal/app"
	"github.com/riskibarqy/cricket-match-fetcher/internal/config"
	"github.com/riskibarqy/cricket-match-fetcher/internal/observability"
	"github.com/riskibarqy/cricket-match-fetcher/internal/platform/logging"
	"github.com/spf13/cobra"
)

type flagOverrides struct {
	matchID string
	dataDir string
	anchor  string
	baseURL string
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cricket-fetcher:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var overrides flagOverrides

	cmd := &cobra.Command{
		Use:   "cricket-fetcher",
		Short: "Download every stats endpoint of one cricket match to disk",
		Long: `cricket-fetcher requests each per-match JSON endpoint of the Fox Sports
cricket stats API once, in a fixed order, and writes every response body
verbatim to <anchor>/<data-dir>/<match>/<endpoint>.

A failing endpoint is logged and skipped. The API key is read from the
CricketApiFoxSports environment variable (or a .env file).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			applyOverrides(&cfg, overrides)
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&overrides.matchID, "match", "", "match identifier (default from CRICKET_MATCH_ID)")
	cmd.Flags().StringVar(&overrides.dataDir, "data-dir", "", "data root directory name (default from CRICKET_DATA_DIR)")
	cmd.Flags().StringVar(&overrides.anchor, "anchor", "", "directory the data root is created in (default working directory)")
	cmd.Flags().StringVar(&overrides.baseURL, "base-url", "", "stats API base URL, including trailing slash")

	return cmd
}

func applyOverrides(cfg *config.Config, o flagOverrides) {
	if o.matchID != "" {
		cfg.MatchID = o.matchID
	}
	if o.dataDir != "" {
		cfg.DataDirName = o.dataDir
	}
	if o.anchor != "" {
		cfg.DataAnchor = o.anchor
	}
	if o.baseURL != "" {
		cfg.CricketAPIBaseURL = o.baseURL
	}
}

func run(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var logger *logging.Logger
	if cfg.LogFormat == logging.FormatJSON {
		logger = logging.NewJSON(cfg.LogLevel)
	} else {
		logger = logging.NewConsole(cfg.LogLevel)
	}
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	runner, err := app.NewRunner(cfg, logger)
	if err != nil {
		logger.Error("build runner", "error", err)
		return err
	}

	// Endpoint failures are reported in the log only; the exit status reflects setup errors.
	if _, err := runner.Run(ctx); err != nil {
		logger.ErrorContext(ctx, "match fetch aborted", "match_id", cfg.MatchID, "error", err)
		return err
	}
	return nil
}
