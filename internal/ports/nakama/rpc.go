package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"phase10/internal/advisor"
	"phase10/internal/app"
	"phase10/internal/config"
	"phase10/internal/domain"
	"phase10/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RegisterRPCs registers every Phase 10 RPC with the initializer.
func RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcAdvise:       RpcAdviseHand,
		RpcSimulate:     RpcSimulateGame,
		RpcReplay:       RpcReplayGame,
		RpcProgress:     RpcGetProgress,
		RpcAdvancePhase: RpcAdvanceProgress,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

type adviseRequest struct {
	Phase       string     `json:"phase"`
	Hand        []wireCard `json:"hand"`
	DiscardPile []wireCard `json:"discard_pile"`
}

// RpcAdviseHand evaluates a hand against a phase and recommends what to draw
// and what to discard.
//
// Payload: {"phase": "DOUBLETS_4", "hand": [card...], "discard_pile": [card...]}
// The discard pile is listed top first. Without a phase the caller's stored
// progress is used. The undrawn deck is everything not in hand or on the pile.
// Returns: phase, complete, draw, the sorted hand, discard, discard_slot and scores.
func RpcAdviseHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req adviseRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	if len(req.Hand) == 0 {
		return "", runtime.NewError("hand is required", codeInvalidArgument)
	}
	// A hand holds at most one card over the deal, right after a draw.
	if maxHand := config.GetGameConfig().HandSize + 1; len(req.Hand) > maxHand {
		return "", runtime.NewError(fmt.Sprintf("hand has %d cards, at most %d allowed", len(req.Hand), maxHand), codeInvalidArgument)
	}

	tag, err := resolvePhase(ctx, nk, userID, req.Phase)
	if err != nil {
		return "", err
	}

	hand, err := cardsFromWire(req.Hand, 0)
	if err != nil {
		return "", runtime.NewError("invalid hand: "+err.Error(), codeInvalidArgument)
	}
	pile, err := cardsFromWire(req.DiscardPile, domain.CardID(len(hand)))
	if err != nil {
		return "", runtime.NewError("invalid discard pile: "+err.Error(), codeInvalidArgument)
	}
	undrawn, err := domain.Unseen(append(append([]domain.Card(nil), hand...), pile...)...)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	handDeck := domain.NewDeck(hand...)
	handDeck.Sort()
	advice, err := advisor.Evaluate(tag, handDeck, undrawn, domain.NewDeck(pile...))
	if err != nil {
		logger.Error("RpcAdviseHand [User:%s]: evaluate failed: %v", userID, err)
		return "", runtime.NewError("failed to evaluate hand", codeInternal)
	}

	scores := make([]interface{}, 0, len(advice.Scores))
	for _, s := range advice.Scores {
		scores = append(scores, s)
	}
	var discard interface{}
	if advice.HasDiscard() {
		discard = cardToValue(advice.Discard)
	}

	return respond(logger, map[string]interface{}{
		"phase":        advice.Phase.String(),
		"complete":     advice.Complete,
		"draw":         advice.Draw.String(),
		"hand":         cardsToValue(handDeck.Cards()),
		"discard":      discard,
		"discard_slot": advice.DiscardSlot,
		"scores":       scores,
	})
}

// resolvePhase parses an explicit phase or falls back to the user's progress.
func resolvePhase(ctx context.Context, nk runtime.NakamaModule, userID, phase string) (domain.PhaseTag, error) {
	if phase != "" {
		tag, err := domain.ParsePhaseTag(phase)
		if err != nil {
			return 0, runtime.NewError(err.Error(), codeInvalidArgument)
		}
		return tag, nil
	}
	if userID == "" {
		return 0, runtime.NewError("phase is required without a session", codeInvalidArgument)
	}

	progress, err := app.NewProgressService(NewNakamaProgressAdapter(nk)).Current(ctx, userID)
	if err != nil {
		return 0, runtime.NewError("failed to load progress", codeInternal)
	}
	if progress.Finished() {
		return 0, runtime.NewError("all phases are complete", codeFailedPrecondition)
	}
	return progress.Phase, nil
}

type simulateRequest struct {
	Players []string `json:"players"`
}

// RpcSimulateGame plays a full automated game.
//
// Payload: (Optional) {"players": ["a", "b"]}; defaults to the configured players.
// Returns: the game summary plus a replay ticket when a ticket secret is configured.
func RpcSimulateGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req simulateRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", codeInvalidArgument)
		}
	}

	cfg := config.GetGameConfig()
	players := req.Players
	if len(players) == 0 {
		players = cfg.Players
	}

	service := app.NewService(nil, app.WithHandSize(cfg.HandSize))
	game, _, err := service.StartGame(players)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	summary, err := service.Simulate(ctx, logger, game, cfg.MaxTurns)
	if err != nil {
		return "", runtime.NewError("simulation failed", codeInternal)
	}

	resp := summaryToValue(summary)
	resp["ticket"] = ""
	tickets := app.NewTicketService(envValue(ctx, envTicketSecret), cfg.TicketIssuer, cfg.TicketTTL())
	token, err := tickets.Issue(app.Ticket{GameID: game.ID, Seed: game.Seed, Players: players})
	switch {
	case errors.Is(err, app.ErrTicketConfig):
		logger.Warn("RpcSimulateGame: %s not set, no replay ticket issued", envTicketSecret)
	case err != nil:
		logger.Error("RpcSimulateGame: failed to issue ticket: %v", err)
		return "", runtime.NewError("failed to issue replay ticket", codeInternal)
	default:
		resp["ticket"] = token
	}
	return respond(logger, resp)
}

type replayRequest struct {
	Ticket string `json:"ticket"`
}

// RpcReplayGame replays the game described by a signed ticket.
//
// Payload: {"ticket": "..."}
// Returns: the summary of the ticketed game, identical to the first run.
func RpcReplayGame(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req replayRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.Ticket == "" {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	cfg := config.GetGameConfig()
	tickets := app.NewTicketService(envValue(ctx, envTicketSecret), cfg.TicketIssuer, cfg.TicketTTL())
	ticket, err := tickets.Verify(req.Ticket)
	if err != nil {
		if errors.Is(err, app.ErrTicketConfig) {
			return "", runtime.NewError("replay is not configured", codeFailedPrecondition)
		}
		logger.Warn("RpcReplayGame: rejected ticket: %v", err)
		return "", runtime.NewError("invalid ticket", codeUnauthenticated)
	}

	service := app.NewService(nil, app.WithHandSize(cfg.HandSize))
	game, _, err := service.StartSeeded(ticket.GameID, ticket.Players, ticket.Seed)
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}
	summary, err := service.Simulate(ctx, logger, game, cfg.MaxTurns)
	if err != nil {
		return "", runtime.NewError("replay failed", codeInternal)
	}
	return respond(logger, summaryToValue(summary))
}

// RpcGetProgress returns the caller's current phase.
func RpcGetProgress(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", runtime.NewError("User ID not found in context", codeUnauthenticated)
	}

	progress, err := app.NewProgressService(NewNakamaProgressAdapter(nk)).Current(ctx, userID)
	if err != nil {
		logger.Error("RpcGetProgress [User:%s]: %v", userID, err)
		return "", runtime.NewError("failed to load progress", codeInternal)
	}
	return respond(logger, progressToValue(progress))
}

// RpcAdvanceProgress moves the caller to the next phase.
func RpcAdvanceProgress(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", runtime.NewError("User ID not found in context", codeUnauthenticated)
	}

	progress, err := app.NewProgressService(NewNakamaProgressAdapter(nk)).Advance(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrProgressFinished):
		return "", runtime.NewError("all phases are complete", codeFailedPrecondition)
	case errors.Is(err, ports.ErrProgressConflict):
		return "", runtime.NewError("progress changed, retry", codeAborted)
	case err != nil:
		logger.Error("RpcAdvanceProgress [User:%s]: %v", userID, err)
		return "", runtime.NewError("failed to advance progress", codeInternal)
	}

	logger.Info("RpcAdvanceProgress [User:%s]: now at %s", userID, progress.Phase)
	return respond(logger, progressToValue(progress))
}

func progressToValue(p domain.Progress) map[string]interface{} {
	return map[string]interface{}{
		"phase":    p.Phase.String(),
		"finished": p.Finished(),
	}
}

func respond(logger runtime.Logger, fields map[string]interface{}) (string, error) {
	out, err := marshalResponse(fields)
	if err != nil {
		logger.Error("failed to encode response: %v", err)
		return "", runtime.NewError("failed to encode response", codeInternal)
	}
	return out, nil
}

func envValue(ctx context.Context, key string) string {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	return env[key]
}
