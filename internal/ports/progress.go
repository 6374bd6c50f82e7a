package ports

import (
	"context"
	"errors"

	"phase10/internal/domain"
)

// ErrProgressConflict is returned when a save races with another writer.
var ErrProgressConflict = errors.New("progress was modified concurrently")

// ProgressPort persists each player's phase progress.
type ProgressPort interface {
	// LoadProgress returns the stored progress and its storage version.
	// A user without stored progress gets phase one and an empty version.
	LoadProgress(ctx context.Context, userID string) (domain.Progress, string, error)
	// SaveProgress writes progress if the stored version still equals version.
	// An empty version only succeeds when nothing is stored yet.
	SaveProgress(ctx context.Context, userID string, progress domain.Progress, version string) error
}
