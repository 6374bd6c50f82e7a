package app

import (
	"context"
	"fmt"

	"phase10/internal/domain"
	"phase10/internal/ports"
)

// ProgressService reads and advances stored phase progress.
type ProgressService struct {
	store ports.ProgressPort
}

func NewProgressService(store ports.ProgressPort) *ProgressService {
	return &ProgressService{store: store}
}

// Current returns the user's phase progress.
func (s *ProgressService) Current(ctx context.Context, userID string) (domain.Progress, error) {
	if userID == "" {
		return domain.Progress{}, fmt.Errorf("userID is required")
	}
	progress, _, err := s.store.LoadProgress(ctx, userID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("load progress: %w", err)
	}
	return progress, nil
}

// Advance moves the user to the next phase. Concurrent advances of the same
// user fail with ports.ErrProgressConflict instead of skipping a phase.
func (s *ProgressService) Advance(ctx context.Context, userID string) (domain.Progress, error) {
	if userID == "" {
		return domain.Progress{}, fmt.Errorf("userID is required")
	}
	current, version, err := s.store.LoadProgress(ctx, userID)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("load progress: %w", err)
	}
	next, err := current.Advance()
	if err != nil {
		return current, err
	}
	if err := s.store.SaveProgress(ctx, userID, next, version); err != nil {
		return current, fmt.Errorf("save progress: %w", err)
	}
	return next, nil
}
