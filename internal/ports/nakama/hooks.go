package nakama

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"phase10/internal/app/onboarding"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// AfterAuthenticateDevice onboards a device account on its first login: the
// player gets a generated display name and a progress record at phase one.
// Returning players are left untouched.
func AfterAuthenticateDevice(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, out *api.Session, in *api.AuthenticateDeviceRequest) error {
	if !out.Created {
		return nil
	}

	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		// Authentication hooks may run before the session user is in the context.
		resolved, err := extractUserIDFromToken(out.Token)
		if err != nil {
			logger.Error("AfterAuthenticateDevice: no player id in session: %v", err)
			return err
		}
		userID = resolved
	}

	service := onboarding.NewService(NewNakamaAccountAdapter(nk), NewNakamaProgressAdapter(nk), nil)
	result, err := service.OnboardNewUser(ctx, userID)
	if result.ProfileUpdateErr != nil {
		logger.Warn("AfterAuthenticateDevice [User:%s]: display name not set: %v", userID, result.ProfileUpdateErr)
	}
	if err != nil {
		logger.Error("AfterAuthenticateDevice [User:%s]: phase one progress not stored: %v", userID, err)
		return err
	}
	if !result.ProgressCreated {
		logger.Info("AfterAuthenticateDevice [User:%s]: progress already stored", userID)
		return nil
	}
	logger.Info("AfterAuthenticateDevice [User:%s]: new player starts at phase one", userID)
	return nil
}

// extractUserIDFromToken reads the uid claim of a session token. The
// signature is not checked; the token was just issued by the server.
func extractUserIDFromToken(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid token format")
	}

	payload := parts[1]
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode token payload: %w", err)
	}

	var claims map[string]interface{}
	if err := json.Unmarshal(data, &claims); err != nil {
		return "", fmt.Errorf("failed to unmarshal token claims: %w", err)
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return "", fmt.Errorf("token claims missing uid")
	}

	return uid, nil
}
