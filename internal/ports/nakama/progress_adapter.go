package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"phase10/internal/domain"
	"phase10/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// storage is the subset of runtime.NakamaModule the progress adapter needs.
type storage interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

type storedProgress struct {
	Phase string `json:"phase"`
}

// NakamaProgressAdapter implements ports.ProgressPort on Nakama storage.
// Objects are owner-readable and server-writable only.
type NakamaProgressAdapter struct {
	store storage
}

// NewNakamaProgressAdapter creates a new progress adapter.
func NewNakamaProgressAdapter(store storage) *NakamaProgressAdapter {
	return &NakamaProgressAdapter{store: store}
}

func (a *NakamaProgressAdapter) LoadProgress(ctx context.Context, userID string) (domain.Progress, string, error) {
	if userID == "" {
		return domain.Progress{}, "", fmt.Errorf("userID is required")
	}

	objects, err := a.store.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: progressCollection, Key: progressKey, UserID: userID},
	})
	if err != nil {
		return domain.Progress{}, "", fmt.Errorf("failed to read progress: %w", err)
	}
	if len(objects) == 0 {
		return domain.NewProgress(), "", nil
	}

	var stored storedProgress
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &stored); err != nil {
		return domain.Progress{}, "", fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	version := objects[0].GetVersion()
	if stored.Phase == domain.PhaseFinished.String() {
		return domain.Progress{Phase: domain.PhaseFinished}, version, nil
	}
	tag, err := domain.ParsePhaseTag(stored.Phase)
	if err != nil {
		return domain.Progress{}, "", err
	}
	return domain.Progress{Phase: tag}, version, nil
}

func (a *NakamaProgressAdapter) SaveProgress(ctx context.Context, userID string, progress domain.Progress, version string) error {
	if userID == "" {
		return fmt.Errorf("userID is required")
	}

	value, err := json.Marshal(storedProgress{Phase: progress.Phase.String()})
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if version == "" {
		// Only write if no object exists yet.
		version = "*"
	}

	_, err = a.store.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      progressCollection,
			Key:             progressKey,
			UserID:          userID,
			Value:           string(value),
			Version:         version,
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return ports.ErrProgressConflict
		}
		return fmt.Errorf("failed to write progress: %w", err)
	}
	return nil
}

var _ ports.ProgressPort = (*NakamaProgressAdapter)(nil)
