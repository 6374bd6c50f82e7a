package nakama

import (
	"context"

	"phase10/internal/ports"
)

// accountUpdater is the subset of runtime.NakamaModule used for profiles.
type accountUpdater interface {
	AccountUpdateId(ctx context.Context, userID, username string, metadata map[string]interface{}, displayName, timezone, location, langTag, avatarUrl string) error
}

// NakamaAccountAdapter implements ports.AccountPort using Nakama's account API.
type NakamaAccountAdapter struct {
	accounts accountUpdater
}

func NewNakamaAccountAdapter(accounts accountUpdater) *NakamaAccountAdapter {
	return &NakamaAccountAdapter{accounts: accounts}
}

// UpdateProfile sets the username and display name of a new player and tags
// the account metadata with the game name.
func (a *NakamaAccountAdapter) UpdateProfile(ctx context.Context, userID, username, displayName string) error {
	metadata := map[string]interface{}{"game": progressCollection}
	return a.accounts.AccountUpdateId(ctx, userID, username, metadata, displayName, "", "", "", "")
}

var _ ports.AccountPort = (*NakamaAccountAdapter)(nil)
