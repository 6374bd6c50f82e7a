package nakama

import (
	"context"
	"database/sql"

	"phase10/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs and hooks for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if path := envValue(ctx, envConfigPath); path != "" {
		if err := config.LoadGameConfig(path); err != nil {
			logger.Error("Failed to load game config from %s: %v", path, err)
			return err
		}
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterAfterAuthenticateDevice(AfterAuthenticateDevice); err != nil {
		return err
	}

	cfg := config.GetGameConfig()
	logger.Info("Phase 10 Go module loaded (hand size %d, max turns %d).", cfg.HandSize, cfg.MaxTurns)
	return nil
}
