package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return map[string]interface{}{}
}

// fakeNakama stores objects in memory and honours storage versions the way
// Nakama does. Any other module call panics on the nil embedded interface.
type fakeNakama struct {
	runtime.NakamaModule

	objects  map[string]*api.StorageObject
	writes   int
	readErr  error
	profiles map[string]string
}

func newFakeNakama() *fakeNakama {
	return &fakeNakama{
		objects:  make(map[string]*api.StorageObject),
		profiles: make(map[string]string),
	}
}

func storageID(collection, key, userID string) string {
	return collection + "/" + key + "/" + userID
}

func (f *fakeNakama) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	var out []*api.StorageObject
	for _, r := range reads {
		if obj, ok := f.objects[storageID(r.Collection, r.Key, r.UserID)]; ok {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (f *fakeNakama) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	acks := make([]*api.StorageObjectAck, 0, len(writes))
	for _, w := range writes {
		id := storageID(w.Collection, w.Key, w.UserID)
		existing, exists := f.objects[id]
		switch {
		case w.Version == "*" && exists:
			return nil, runtime.ErrStorageRejectedVersion
		case w.Version != "" && w.Version != "*" && (!exists || existing.Version != w.Version):
			return nil, runtime.ErrStorageRejectedVersion
		}

		f.writes++
		obj := &api.StorageObject{
			Collection:      w.Collection,
			Key:             w.Key,
			UserId:          w.UserID,
			Value:           w.Value,
			Version:         fmt.Sprintf("v%d", f.writes),
			PermissionRead:  int32(w.PermissionRead),
			PermissionWrite: int32(w.PermissionWrite),
		}
		f.objects[id] = obj
		acks = append(acks, &api.StorageObjectAck{Collection: obj.Collection, Key: obj.Key, Version: obj.Version, UserId: obj.UserId})
	}
	return acks, nil
}

func (f *fakeNakama) AccountUpdateId(ctx context.Context, userID, username string, metadata map[string]interface{}, displayName, timezone, location, langTag, avatarUrl string) error {
	if username == "" {
		return errors.New("username is required")
	}
	f.profiles[userID] = displayName
	return nil
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), runtime.RUNTIME_CTX_USER_ID, userID)
}

func decodeResponse(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("unmarshal response %q: %v", raw, err)
	}
	return out
}

func assertErrorCode(t *testing.T, err error, code int) {
	t.Helper()
	var rerr *runtime.Error
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want *runtime.Error with code %d", err, code)
	}
	if rerr.Code != code {
		t.Fatalf("error code = %d (%s), want %d", rerr.Code, rerr.Message, code)
	}
}
