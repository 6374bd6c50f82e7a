package onboarding

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"phase10/internal/domain"
	"phase10/internal/ports"
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
	// ProgressCreated is false when the user already had stored progress.
	ProgressCreated bool
}

// Service handles post-auth onboarding for new users.
type Service struct {
	accounts ports.AccountPort
	progress ports.ProgressPort
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/progress must be non-nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, progress ports.ProgressPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		progress: progress,
		rng:      rng,
	}
}

// OnboardNewUser names a new account and starts it at phase one.
// Returns an error only if the progress record cannot be written.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.progress == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{}
	displayName := s.generateFriendlyName()
	if err := s.accounts.UpdateProfile(ctx, userID, displayName, displayName); err != nil {
		result.ProfileUpdateErr = err
	}

	err := s.progress.SaveProgress(ctx, userID, domain.NewProgress(), "")
	switch {
	case err == nil:
		result.ProgressCreated = true
	case errors.Is(err, ports.ErrProgressConflict):
	default:
		return result, fmt.Errorf("failed to create phase progress: %w", err)
	}

	return result, nil
}

func (s *Service) generateFriendlyName() string {
	colors := []string{"Red", "Green", "Yellow", "Purple"}
	nouns := []string{"Joker", "Doublet", "Run", "Triplet", "Sequence", "Phase", "Stack", "Discard"}

	color := colors[s.rng.Intn(len(colors))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(9000) + 1000

	return fmt.Sprintf("%s%s%d", color, noun, num)
}
