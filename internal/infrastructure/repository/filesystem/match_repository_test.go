package filesystem

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/cricket-match-fetcher/internal/platform/logging"
	"github.com/riskibarqy/cricket-match-fetcher/internal/usecase"
)

func TestEnsureMatchDirectory_CreatesBothLevelsIdempotently(t *testing.T) {
	t.Parallel()

	anchor := t.TempDir()
	repo := NewMatchRepository(anchor, logging.NewNop())

	first, err := repo.EnsureMatchDirectory(context.Background(), "CricketData", "BBL2024-250101")
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	want := filepath.Join(anchor, "CricketData", "BBL2024-250101")
	if first != want {
		t.Fatalf("unexpected path: got=%s want=%s", first, want)
	}

	second, err := repo.EnsureMatchDirectory(context.Background(), "CricketData", "BBL2024-250101")
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if second != first {
		t.Fatalf("expected same path on second call: got=%s want=%s", second, first)
	}

	info, err := os.Stat(first)
	if err != nil {
		t.Fatalf("stat match directory: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", first)
	}
}

func TestEnsureMatchDirectory_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(t.TempDir(), logging.NewNop())
	cases := []struct {
		name    string
		dataDir string
		matchID string
	}{
		{name: "empty data dir", dataDir: "", matchID: "BBL2024-250101"},
		{name: "empty match id", dataDir: "CricketData", matchID: "  "},
		{name: "separator in match id", dataDir: "CricketData", matchID: "a/b"},
		{name: "parent segment", dataDir: "CricketData", matchID: ".."},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := repo.EnsureMatchDirectory(context.Background(), tc.dataDir, tc.matchID)
			if !errors.Is(err, usecase.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestEnsureMatchDirectory_FailsWhenDataDirIsAFile(t *testing.T) {
	t.Parallel()

	anchor := t.TempDir()
	if err := os.WriteFile(filepath.Join(anchor, "CricketData"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	repo := NewMatchRepository(anchor, logging.NewNop())
	if _, err := repo.EnsureMatchDirectory(context.Background(), "CricketData", "BBL2024-250101"); err == nil {
		t.Fatalf("expected error when data directory path is a regular file")
	}
}

func TestWriteResponse_OverwritesExistingContent(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	repo := NewMatchRepository(t.TempDir(), logging.New(&logs, logging.LevelInfo, logging.FormatConsole))
	dir, err := repo.EnsureMatchDirectory(context.Background(), "CricketData", "BBL2024-250101")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	if _, err := repo.WriteResponse(context.Background(), "scoreboard.json", `{"score":1,"padding":"a much longer old body"}`, dir); err != nil {
		t.Fatalf("first write: %v", err)
	}
	path, err := repo.WriteResponse(context.Background(), "scoreboard.json", `{"score":2}`, dir)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}

	if path != filepath.Join(dir, "scoreboard.json") {
		t.Fatalf("unexpected file path: %s", path)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(got) != `{"score":2}` {
		t.Fatalf("expected overwritten content, got %q", string(got))
	}
	if !strings.Contains(logs.String(), "Endpoint: scoreboard.json Saved to: "+path) {
		t.Fatalf("expected save log line, got %s", logs.String())
	}
}

func TestWriteResponse_KeepsEndpointNameVerbatim(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(t.TempDir(), logging.NewNop())
	dir, err := repo.EnsureMatchDirectory(context.Background(), "CricketData", "m1")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	path, err := repo.WriteResponse(context.Background(), "notes", "", dir)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if filepath.Base(path) != "notes" {
		t.Fatalf("expected no extension to be added, got %s", path)
	}
}

func TestWriteResponse_RejectsSeparatorInEndpoint(t *testing.T) {
	t.Parallel()

	repo := NewMatchRepository(t.TempDir(), logging.NewNop())
	_, err := repo.WriteResponse(context.Background(), "../escape.json", "{}", t.TempDir())
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
