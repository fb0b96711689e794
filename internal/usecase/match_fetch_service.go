package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-match-fetcher/internal/domain/matchdata"
	"github.com/riskibarqy/cricket-match-fetcher/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type MatchDataProvider interface {
	Fetch(ctx context.Context, endpoint, url string) (string, error)
}

type MatchFetchConfig struct {
	BaseURL     string
	APIKey      string
	DataDirName string
	Endpoints   []string
}

type EndpointFailure struct {
	Endpoint string
	Err      error
}

// MatchFetchResult records what one run did. It is informational only.
type MatchFetchResult struct {
	MatchID   string
	Directory string
	Saved     []string
	Failed    []EndpointFailure
	Duration  time.Duration
}

type MatchFetchService struct {
	provider MatchDataProvider
	repo     matchdata.Repository
	cfg      MatchFetchConfig
	logger   *logging.Logger
}

func NewMatchFetchService(provider MatchDataProvider, repo matchdata.Repository, cfg MatchFetchConfig, logger *logging.Logger) *MatchFetchService {
	if logger == nil {
		logger = logging.Default()
	}
	if len(cfg.Endpoints) == 0 {
		cfg.Endpoints = matchdata.Endpoints()
	}
	if strings.TrimSpace(cfg.DataDirName) == "" {
		cfg.DataDirName = matchdata.DefaultDataDirName
	}

	return &MatchFetchService{
		provider: provider,
		repo:     repo,
		cfg:      cfg,
		logger:   logger,
	}
}

// Run fetches every configured endpoint for matchID in order and writes each body to the match directory.
// A failing endpoint is logged and skipped; only a match directory failure aborts the run.
func (s *MatchFetchService) Run(ctx context.Context, matchID string) (MatchFetchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchFetchService.Run")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return MatchFetchResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	span.SetAttributes(attribute.String("match.id", matchID))

	start := time.Now()
	directory, err := s.repo.EnsureMatchDirectory(ctx, s.cfg.DataDirName, matchID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ensure match directory")
		return MatchFetchResult{}, fmt.Errorf("ensure match directory match_id=%s: %w", matchID, err)
	}

	result := MatchFetchResult{
		MatchID:   matchID,
		Directory: directory,
		Saved:     make([]string, 0, len(s.cfg.Endpoints)),
	}

	for _, endpoint := range s.cfg.Endpoints {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)
			return result, err
		}

		path, err := s.processEndpoint(ctx, matchID, endpoint, directory)
		if err != nil {
			s.logger.ErrorContext(ctx, "Error processing "+endpoint+": "+err.Error(),
				"match_id", matchID,
				"endpoint", endpoint,
			)
			result.Failed = append(result.Failed, EndpointFailure{Endpoint: endpoint, Err: err})
			continue
		}
		result.Saved = append(result.Saved, path)
	}

	result.Duration = time.Since(start)
	s.logger.DebugContext(ctx, "match fetch finished",
		"match_id", matchID,
		"directory", directory,
		"saved", len(result.Saved),
		"failed", len(result.Failed),
		"duration", result.Duration,
	)
	return result, nil
}

func (s *MatchFetchService) processEndpoint(ctx context.Context, matchID, endpoint, directory string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchFetchService.processEndpoint")
	defer span.End()
	span.SetAttributes(attribute.String("match.endpoint", endpoint))

	url := matchdata.BuildURL(s.cfg.BaseURL, matchID, endpoint, s.cfg.APIKey)
	body, err := s.provider.Fetch(ctx, endpoint, url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch endpoint")
		return "", err
	}

	payload := matchdata.Payload{MatchID: matchID, Endpoint: endpoint, Body: body}
	path, err := s.repo.WriteResponse(ctx, payload.Endpoint, payload.Body, directory)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write response")
		return "", err
	}
	return path, nil
}
