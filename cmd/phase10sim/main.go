// Command phase10sim plays one automated Phase 10 game and prints its summary.
//
// Environment (a .env file in the working directory is loaded first):
//
//	PHASE10_CONFIG        path to a JSON game config
//	PHASE10_TICKET_SECRET HS256 secret; when set a replay ticket is printed
//	PHASE10_DEBUG         "1" or "true" for human-readable debug logs
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"phase10/internal/app"
	"phase10/internal/config"
	"phase10/internal/domain"
	"phase10/internal/logging"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "phase10sim:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", os.Getenv("PHASE10_CONFIG"), "path to a JSON game config")
		players    = flag.String("players", "", "comma-separated player ids (overrides config)")
		seed       = flag.Int64("seed", 0, "replay the game with this seed instead of a random one")
		gameID     = flag.String("game", "", "game id used together with -seed")
		ticket     = flag.String("ticket", "", "replay the game described by a ticket")
		debug      = flag.Bool("debug", envBool("PHASE10_DEBUG"), "log every phase completion")
	)
	flag.Parse()

	zl, err := logging.New(*debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()
	logger := logging.NewZapLogger(zl)

	if *configPath != "" {
		if err := config.LoadGameConfig(*configPath); err != nil {
			return err
		}
	}
	cfg := config.GetGameConfig()
	ids := cfg.Players
	if *players != "" {
		ids = strings.Split(*players, ",")
	}

	tickets := app.NewTicketService(os.Getenv("PHASE10_TICKET_SECRET"), cfg.TicketIssuer, cfg.TicketTTL())
	service := app.NewService(nil, app.WithHandSize(cfg.HandSize))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game, _, err := startGame(service, tickets, ids, *ticket, *gameID, *seed)
	if err != nil {
		return err
	}
	seated := make([]string, 0, len(game.Players))
	for _, pl := range game.Players {
		seated = append(seated, pl.UserID)
	}
	summary, err := service.Simulate(ctx, logger, game, cfg.MaxTurns)
	if err != nil {
		return err
	}

	out := output{
		GameID: summary.GameID,
		Seed:   summary.Seed,
		Winner: summary.Winner,
		Turns:  summary.Turns,
	}
	userIDs := make([]string, 0, len(summary.Phases))
	for userID := range summary.Phases {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)
	for _, userID := range userIDs {
		out.Players = append(out.Players, playerOutput{UserID: userID, Phase: summary.Phases[userID].String()})
	}

	token, err := tickets.Issue(app.Ticket{GameID: summary.GameID, Seed: summary.Seed, Players: seated})
	switch {
	case errors.Is(err, app.ErrTicketConfig):
		zl.Debug("no ticket secret, skipping replay ticket")
	case err != nil:
		return err
	default:
		out.Ticket = token
	}

	zl.Info("simulation finished", zap.String("game_id", out.GameID), zap.Int("turns", out.Turns), zap.String("winner", out.Winner))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// startGame deals a fresh game, or replays one from a ticket or an explicit
// game id and seed.
func startGame(service *app.Service, tickets *app.TicketService, ids []string, ticket, gameID string, seed int64) (*domain.Game, []app.Event, error) {
	switch {
	case ticket != "":
		t, err := tickets.Verify(ticket)
		if err != nil {
			return nil, nil, err
		}
		return service.StartSeeded(t.GameID, t.Players, t.Seed)
	case seed != 0:
		if gameID == "" {
			return nil, nil, errors.New("-game is required with -seed")
		}
		return service.StartSeeded(gameID, ids, seed)
	default:
		return service.StartGame(ids)
	}
}

type playerOutput struct {
	UserID string `json:"user_id"`
	Phase  string `json:"phase"`
}

type output struct {
	GameID  string         `json:"game_id"`
	Seed    int64          `json:"seed"`
	Winner  string         `json:"winner"`
	Turns   int            `json:"turns"`
	Players []playerOutput `json:"players"`
	Ticket  string         `json:"ticket,omitempty"`
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
