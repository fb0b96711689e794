package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-match-fetcher/external/foxsports"
	"github.com/riskibarqy/cricket-match-fetcher/internal/config"
	"github.com/riskibarqy/cricket-match-fetcher/internal/infrastructure/repository/filesystem"
	idgen "github.com/riskibarqy/cricket-match-fetcher/internal/platform/id"
	"github.com/riskibarqy/cricket-match-fetcher/internal/platform/logging"
	"github.com/riskibarqy/cricket-match-fetcher/internal/usecase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var appTracer = otel.Tracer("cricket-match-fetcher/internal/app")

// Runner fetches and stores every endpoint of one match.
type Runner struct {
	matchID string
	cfg     config.Config
	ids     idgen.Generator
	logger  *logging.Logger
}

func NewRunner(cfg config.Config, logger *logging.Logger) (*Runner, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.MatchID) == "" {
		return nil, fmt.Errorf("match id cannot be empty")
	}
	if strings.TrimSpace(cfg.DataAnchor) == "" {
		return nil, fmt.Errorf("data anchor cannot be empty")
	}

	return &Runner{
		matchID: strings.TrimSpace(cfg.MatchID),
		cfg:     cfg,
		ids:     idgen.NewRandomGenerator(),
		logger:  logger,
	}, nil
}

// Run wires a fresh client and repository tagged with a run id, then fetches the match.
func (r *Runner) Run(ctx context.Context) (usecase.MatchFetchResult, error) {
	runID, err := r.ids.NewID()
	if err != nil {
		return usecase.MatchFetchResult{}, fmt.Errorf("generate run id: %w", err)
	}
	logger := r.logger.With("run_id", runID)

	ctx, span := appTracer.Start(ctx, "fetch match")
	defer span.End()
	span.SetAttributes(
		attribute.String("match.id", r.matchID),
		attribute.String("run.id", runID),
	)

	client := foxsports.NewClient(foxsports.ClientConfig{
		Token:   r.cfg.CricketAPIKey,
		Timeout: r.cfg.CricketAPITimeout,
		Logger:  logger,
	})
	repo := filesystem.NewMatchRepository(r.cfg.DataAnchor, logger)
	service := usecase.NewMatchFetchService(client, repo, usecase.MatchFetchConfig{
		BaseURL:     r.cfg.CricketAPIBaseURL,
		APIKey:      r.cfg.CricketAPIKey,
		DataDirName: r.cfg.DataDirName,
		Endpoints:   r.cfg.Endpoints,
	}, logger)

	return service.Run(ctx, r.matchID)
}
