package onboarding

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"

	"phase10/internal/domain"
	"phase10/internal/ports"
)

type fakeAccountPort struct {
	updateErr error
	names     []string
}

func (f *fakeAccountPort) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	f.names = append(f.names, displayName)
	return f.updateErr
}

type fakeProgressPort struct {
	saveErr error
	saved   map[string]domain.Progress
}

func (f *fakeProgressPort) LoadProgress(ctx context.Context, userID string) (domain.Progress, string, error) {
	if p, ok := f.saved[userID]; ok {
		return p, "v1", nil
	}
	return domain.NewProgress(), "", nil
}

func (f *fakeProgressPort) SaveProgress(ctx context.Context, userID string, progress domain.Progress, version string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if _, ok := f.saved[userID]; ok && version == "" {
		return ports.ErrProgressConflict
	}
	if f.saved == nil {
		f.saved = make(map[string]domain.Progress)
	}
	f.saved[userID] = progress
	return nil
}

func TestOnboardNewUser_CreatesProgress(t *testing.T) {
	accounts := &fakeAccountPort{}
	progress := &fakeProgressPort{}
	service := NewService(accounts, progress, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if !result.ProgressCreated {
		t.Fatal("Expected progress to be created")
	}
	if got := progress.saved["user-1"].Phase; got != domain.PhaseDoublets4 {
		t.Fatalf("stored phase = %v, want %v", got, domain.PhaseDoublets4)
	}
	if len(accounts.names) != 1 || !regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+\d{4}$`).MatchString(accounts.names[0]) {
		t.Fatalf("display names = %v", accounts.names)
	}
}

func TestOnboardNewUser_KeepsExistingProgress(t *testing.T) {
	progress := &fakeProgressPort{saved: map[string]domain.Progress{"user-1": {Phase: domain.PhaseSequence8}}}
	service := NewService(&fakeAccountPort{}, progress, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProgressCreated {
		t.Fatal("Expected existing progress to be kept")
	}
	if got := progress.saved["user-1"].Phase; got != domain.PhaseSequence8 {
		t.Fatalf("stored phase = %v, want %v", got, domain.PhaseSequence8)
	}
}

func TestOnboardNewUser_ProfileFailureIsNotFatal(t *testing.T) {
	service := NewService(&fakeAccountPort{updateErr: errors.New("update failed")}, &fakeProgressPort{}, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr == nil {
		t.Fatal("Expected profile update error to be captured")
	}
	if !result.ProgressCreated {
		t.Fatal("Expected progress to be created")
	}
}

func TestOnboardNewUser_ProgressFailure(t *testing.T) {
	service := NewService(&fakeAccountPort{}, &fakeProgressPort{saveErr: errors.New("storage down")}, nil)
	if _, err := service.OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatal("Expected error when progress cannot be stored")
	}
	if _, err := NewService(nil, nil, nil).OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatal("Expected error for unconfigured service")
	}
}
