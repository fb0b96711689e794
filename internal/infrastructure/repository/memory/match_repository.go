package memory

import (
	"context"
	"fmt"
	"path"
	"sync"
)

// MatchRepository keeps match directories and written responses in memory.
type MatchRepository struct {
	mu    sync.RWMutex
	dirs  map[string]struct{}
	files map[string]string
	order []string

	// EnsureErr and WriteErr, when set, are returned by the matching call.
	EnsureErr error
	WriteErr  map[string]error
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{
		dirs:  make(map[string]struct{}),
		files: make(map[string]string),
	}
}

func (r *MatchRepository) EnsureMatchDirectory(_ context.Context, dataDirName, matchID string) (string, error) {
	if r.EnsureErr != nil {
		return "", r.EnsureErr
	}
	if dataDirName == "" || matchID == "" {
		return "", fmt.Errorf("data dir name and match id are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := path.Join(dataDirName, matchID)
	r.dirs[dir] = struct{}{}
	return dir, nil
}

func (r *MatchRepository) WriteResponse(_ context.Context, endpoint, body, directory string) (string, error) {
	if err, ok := r.WriteErr[endpoint]; ok {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.dirs[directory]; !ok {
		return "", fmt.Errorf("directory %s does not exist", directory)
	}

	filePath := path.Join(directory, endpoint)
	if _, exists := r.files[filePath]; !exists {
		r.order = append(r.order, filePath)
	}
	r.files[filePath] = body
	return filePath, nil
}

func (r *MatchRepository) Get(filePath string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	body, ok := r.files[filePath]
	return body, ok
}

// Paths lists written files in first-write order.
func (r *MatchRepository) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
