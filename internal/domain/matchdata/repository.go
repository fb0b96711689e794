package matchdata

import "context"

type Repository interface {
	// EnsureMatchDirectory creates <anchor>/<dataDirName>/<matchID> when missing and returns its path.
	EnsureMatchDirectory(ctx context.Context, dataDirName, matchID string) (string, error)
	// WriteResponse replaces <directory>/<endpoint> with body and returns the file path.
	WriteResponse(ctx context.Context, endpoint, body, directory string) (string, error)
}
