package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"phase10/internal/domain"
)

type GameConfig struct {
	Players  []string `json:"players"`
	HandSize int      `json:"hand_size"`
	MaxTurns int      `json:"max_turns"`

	// TicketIssuer is the iss claim of replay tickets.
	TicketIssuer     string `json:"ticket_issuer"`
	TicketTTLSeconds int    `json:"ticket_ttl_seconds"`
}

// Default values applied to fields left unset.
const (
	DefaultHandSize         = 10
	DefaultMaxTurns         = 5000
	DefaultTicketIssuer     = "phase10"
	DefaultTicketTTLSeconds = 7 * 24 * 3600
)

// Defaults returns the configuration used when no file is loaded.
func Defaults() GameConfig {
	return GameConfig{
		Players:          []string{"bot-1", "bot-2"},
		HandSize:         DefaultHandSize,
		MaxTurns:         DefaultMaxTurns,
		TicketIssuer:     DefaultTicketIssuer,
		TicketTTLSeconds: DefaultTicketTTLSeconds,
	}
}

// TicketTTL returns the replay ticket lifetime.
func (c GameConfig) TicketTTL() time.Duration {
	return time.Duration(c.TicketTTLSeconds) * time.Second
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// ParseGameConfig decodes a JSON config and fills unset fields with defaults.
func ParseGameConfig(data []byte) (GameConfig, error) {
	c := Defaults()
	if err := json.Unmarshal(data, &c); err != nil {
		return GameConfig{}, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	if c.HandSize <= 0 {
		c.HandSize = DefaultHandSize
	}
	if c.MaxTurns <= 0 {
		c.MaxTurns = DefaultMaxTurns
	}
	if c.TicketIssuer == "" {
		c.TicketIssuer = DefaultTicketIssuer
	}
	if len(c.Players)*c.HandSize >= domain.GameDeckSize {
		return GameConfig{}, fmt.Errorf("hand_size %d leaves no deck for %d players", c.HandSize, len(c.Players))
	}
	if c.TicketTTLSeconds < 0 {
		return GameConfig{}, fmt.Errorf("ticket_ttl_seconds must not be negative, got %d", c.TicketTTLSeconds)
	}
	return c, nil
}

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		c, err := ParseGameConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded game configuration, or the defaults when
// nothing has been loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return Defaults()
	}
	return *cfg
}
