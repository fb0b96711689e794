package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/cricket-match-fetcher/internal/platform/logging"
	"github.com/riskibarqy/cricket-match-fetcher/internal/usecase"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

type ensureDirectoryInput struct {
	Anchor      string `validate:"required"`
	DataDirName string `validate:"required,excludesall=/\\"`
	MatchID     string `validate:"required,excludesall=/\\"`
}

type writeResponseInput struct {
	Endpoint  string `validate:"required,excludesall=/\\"`
	Directory string `validate:"required"`
}

// MatchRepository stores raw match responses under <anchor>/<dataDirName>/<matchID>.
type MatchRepository struct {
	anchor    string
	logger    *logging.Logger
	validator *validator.Validate
}

func NewMatchRepository(anchor string, logger *logging.Logger) *MatchRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchRepository{
		anchor:    strings.TrimSpace(anchor),
		logger:    logger,
		validator: validator.New(),
	}
}

func (r *MatchRepository) EnsureMatchDirectory(ctx context.Context, dataDirName, matchID string) (string, error) {
	input := ensureDirectoryInput{
		Anchor:      r.anchor,
		DataDirName: strings.TrimSpace(dataDirName),
		MatchID:     strings.TrimSpace(matchID),
	}
	if err := r.validate(ctx, input); err != nil {
		return "", err
	}
	if err := rejectDotSegment(input.DataDirName, input.MatchID); err != nil {
		return "", err
	}

	dataDir := filepath.Join(input.Anchor, input.DataDirName)
	if err := os.MkdirAll(dataDir, dirPerm); err != nil {
		return "", crerr.Wrapf(err, "create data directory %s", dataDir)
	}

	// The data directory is left in place if this fails.
	matchDir := filepath.Join(dataDir, input.MatchID)
	if err := os.MkdirAll(matchDir, dirPerm); err != nil {
		return "", crerr.Wrapf(err, "create match directory %s", matchDir)
	}

	return matchDir, nil
}

func (r *MatchRepository) WriteResponse(ctx context.Context, endpoint, body, directory string) (string, error) {
	input := writeResponseInput{
		Endpoint:  endpoint,
		Directory: directory,
	}
	if err := r.validate(ctx, input); err != nil {
		return "", err
	}
	if err := rejectDotSegment(input.Endpoint); err != nil {
		return "", err
	}

	filePath := filepath.Join(input.Directory, input.Endpoint)
	if err := os.WriteFile(filePath, []byte(body), filePerm); err != nil {
		return "", crerr.Wrapf(err, "write %s", filePath)
	}

	r.logger.InfoContext(ctx, "Endpoint: "+input.Endpoint+" Saved to: "+filePath,
		"endpoint", input.Endpoint,
		"path", filePath,
		"bytes", len(body),
	)
	return filePath, nil
}

func (r *MatchRepository) validate(ctx context.Context, input any) error {
	if err := r.validator.StructCtx(ctx, input); err != nil {
		return crerr.Wrapf(usecase.ErrInvalidInput, "%v", err)
	}
	return nil
}

func rejectDotSegment(names ...string) error {
	for _, name := range names {
		if name == "." || name == ".." {
			return crerr.Wrapf(usecase.ErrInvalidInput, "path segment %q is not allowed", name)
		}
	}
	return nil
}
