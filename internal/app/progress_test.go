package app

import (
	"context"
	"errors"
	"testing"

	"phase10/internal/domain"
	"phase10/internal/ports"
)

type memoryProgress struct {
	progress map[string]domain.Progress
	versions map[string]int
	// raceOnSave bumps the stored version before the next save.
	raceOnSave bool
}

func newMemoryProgress() *memoryProgress {
	return &memoryProgress{progress: map[string]domain.Progress{}, versions: map[string]int{}}
}

func (m *memoryProgress) version(userID string) string {
	if v, ok := m.versions[userID]; ok {
		return string(rune('a' + v))
	}
	return ""
}

func (m *memoryProgress) LoadProgress(ctx context.Context, userID string) (domain.Progress, string, error) {
	if p, ok := m.progress[userID]; ok {
		return p, m.version(userID), nil
	}
	return domain.NewProgress(), "", nil
}

func (m *memoryProgress) SaveProgress(ctx context.Context, userID string, progress domain.Progress, version string) error {
	if m.raceOnSave {
		m.raceOnSave = false
		m.versions[userID]++
		m.progress[userID] = progress
	}
	if m.version(userID) != version {
		return ports.ErrProgressConflict
	}
	m.progress[userID] = progress
	m.versions[userID]++
	return nil
}

func TestProgressServiceAdvance(t *testing.T) {
	store := newMemoryProgress()
	svc := NewProgressService(store)
	ctx := context.Background()

	current, err := svc.Current(ctx, "u1")
	if err != nil || current.Phase != domain.PhaseDoublets4 {
		t.Fatalf("Current() = %v, %v, want phase 1", current.Phase, err)
	}

	for want := domain.PhaseSameColor6; want <= domain.PhaseFinished; want++ {
		got, err := svc.Advance(ctx, "u1")
		if err != nil {
			t.Fatalf("Advance() error = %v", err)
		}
		if got.Phase != want {
			t.Fatalf("Advance() = %v, want %v", got.Phase, want)
		}
	}

	if _, err := svc.Advance(ctx, "u1"); !errors.Is(err, domain.ErrProgressFinished) {
		t.Fatalf("Advance() past finish error = %v, want ErrProgressFinished", err)
	}
}

func TestProgressServiceAdvanceConflict(t *testing.T) {
	store := newMemoryProgress()
	svc := NewProgressService(store)
	ctx := context.Background()

	if _, err := svc.Advance(ctx, "u1"); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	store.raceOnSave = true
	if _, err := svc.Advance(ctx, "u1"); !errors.Is(err, ports.ErrProgressConflict) {
		t.Fatalf("Advance() error = %v, want ErrProgressConflict", err)
	}
}

func TestProgressServiceRequiresUser(t *testing.T) {
	svc := NewProgressService(newMemoryProgress())
	if _, err := svc.Current(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty user")
	}
	if _, err := svc.Advance(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty user")
	}
}
