package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"

	"phase10/internal/advisor"
	"phase10/internal/domain"
)

// Service contains Phase 10 use-cases operating on domain state.
type Service struct {
	rng      *rand.Rand
	handSize int
}

// Option customizes a Service.
type Option func(*Service)

// WithHandSize overrides the number of cards dealt to each player.
func WithHandSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.handSize = n
		}
	}
}

// NewService constructs a Service with provided rng or a time-seeded default.
// The rng only picks seeds for new games; each game shuffles with its own
// source so it can be replayed from the seed.
func NewService(rng *rand.Rand, opts ...Option) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Service{rng: rng, handSize: DefaultHandSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	ErrTooFewPlayers   = errors.New("not enough players to start")
	ErrTooManyPlayers  = errors.New("too many players to start")
	ErrDuplicatePlayer = errors.New("player listed twice")
	ErrHandTooLarge    = errors.New("not enough cards to deal every hand")
	ErrNotPlaying      = errors.New("game not in playing status")
	ErrUnknownPlayer   = errors.New("player not found")
	ErrNotYourTurn     = errors.New("not the player's turn")
)

// StartGame creates a game with a fresh ID and seed. playerIDs are in seat
// order; empty strings are skipped.
func (s *Service) StartGame(playerIDs []string) (*domain.Game, []Event, error) {
	return s.StartSeeded(uuid.NewString(), playerIDs, s.rng.Int63())
}

// StartSeeded creates a game whose deck order is fully determined by seed.
func (s *Service) StartSeeded(gameID string, playerIDs []string, seed int64) (*domain.Game, []Event, error) {
	var seats []string
	seen := make(map[string]bool)
	for _, userID := range playerIDs {
		if userID == "" {
			continue
		}
		if seen[userID] {
			return nil, nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, userID)
		}
		seen[userID] = true
		seats = append(seats, userID)
	}

	if len(seats) < MinPlayersToStartGame {
		return nil, nil, ErrTooFewPlayers
	}
	if len(seats) > MaxPlayersToStartGame {
		return nil, nil, ErrTooManyPlayers
	}
	// The deal must leave a card for the first draw.
	if len(seats)*s.handSize >= domain.GameDeckSize {
		return nil, nil, fmt.Errorf("%w: %d players with %d cards each", ErrHandTooLarge, len(seats), s.handSize)
	}

	game := &domain.Game{
		ID:      gameID,
		Status:  domain.StatusPlaying,
		Deck:    domain.NewGameDeck(),
		Discard: domain.NewDeck(),
		Seed:    seed,
		Rand:    rand.New(rand.NewSource(seed)),
	}
	for i, userID := range seats {
		game.Players = append(game.Players, &domain.Player{
			UserID:   userID,
			Seat:     i,
			Hand:     domain.NewDeck(),
			Progress: domain.NewProgress(),
		})
	}

	game.Deck.Shuffle(game.Rand)

	// Deal one card at a time around the table.
	for round := 0; round < s.handSize; round++ {
		for _, pl := range game.Players {
			card, ok := game.Deck.DrawTop()
			if !ok {
				return nil, nil, ErrHandTooLarge
			}
			pl.Hand.AddBottom(card)
		}
	}

	events := make([]Event, 0, len(game.Players)+1)
	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:          game.ID,
			Players:         seats,
			FirstTurnUserID: seats[0],
		},
	})
	for _, pl := range game.Players {
		pl.Hand.Sort()
		events = append(events, handDealt(pl))
	}

	return game, events, nil
}

// TakeTurn plays one automated turn for userID: draw, then either lay down
// a completed phase or discard one card.
func (s *Service) TakeTurn(game *domain.Game, userID string) ([]Event, error) {
	if game.Status != domain.StatusPlaying {
		return nil, ErrNotPlaying
	}
	pl, ok := game.PlayerByID(userID)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	if game.CurrentPlayer() != pl {
		return nil, ErrNotYourTurn
	}

	agent := advisor.NewAgent(game.Rand)
	phase := pl.Progress.Phase
	pl.Hand.Sort()

	source, err := agent.PlanDraw(phase, pl.Hand, game.Deck, game.Discard)
	if err != nil {
		return nil, fmt.Errorf("plan draw: %w", err)
	}

	var events []Event
	card, drawn := s.draw(game, source)
	if !drawn && source == advisor.DrawDiscard {
		source = advisor.DrawDeck
		card, drawn = s.draw(game, source)
	}
	if drawn {
		pl.Hand.AddBottom(card)
		pl.Hand.Sort()
		events = append(events, Event{
			Kind:       EventCardDrawn,
			Payload:    CardDrawnPayload{UserID: userID, Source: source, Card: card},
			Recipients: []string{userID},
		})
	}

	advice, err := agent.PlanDiscard(phase, pl.Hand, game.Deck)
	if err != nil {
		return nil, fmt.Errorf("plan discard: %w", err)
	}

	if advice.Complete {
		events = append(events, s.completePhase(game, pl)...)
		if game.Status == domain.StatusEnded {
			return events, nil
		}
		game.NextTurn()
		return events, nil
	}

	if advice.HasDiscard() {
		discarded, ok := pl.Hand.Draw(advice.DiscardSlot)
		if ok {
			game.Discard.AddTop(discarded)
			game.NextTurn()
			events = append(events, Event{
				Kind: EventCardDiscarded,
				Payload: CardDiscardedPayload{
					UserID:         userID,
					Card:           discarded,
					NextTurnUserID: game.CurrentPlayer().UserID,
				},
			})
			return events, nil
		}
	}

	game.NextTurn()
	return events, nil
}

// completePhase advances the player's progress. Finishing the last phase ends
// the game; otherwise the hand goes back into the deck and a new one is dealt.
func (s *Service) completePhase(game *domain.Game, pl *domain.Player) []Event {
	completed := pl.Progress.Phase
	next, err := pl.Progress.Advance()
	if err != nil {
		return nil
	}
	pl.Progress = next

	events := []Event{{
		Kind:    EventPhaseCompleted,
		Payload: PhaseCompletedPayload{UserID: pl.UserID, Completed: completed, Next: next.Phase},
	}}

	if next.Finished() {
		game.Status = domain.StatusEnded
		game.Winner = pl.UserID
		game.TurnCount++
		return append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{WinnerUserID: pl.UserID, Turns: game.TurnCount},
		})
	}

	game.Deck.AddBottom(pl.Hand.TakeAll()...)
	game.Deck.Shuffle(game.Rand)
	for i := 0; i < s.handSize; i++ {
		card, ok := s.draw(game, advisor.DrawDeck)
		if !ok {
			break
		}
		pl.Hand.AddBottom(card)
	}
	pl.Hand.Sort()
	return append(events, handDealt(pl))
}

// draw takes a card from the chosen pile. An exhausted deck is refilled from
// the discard pile, keeping the pile's top card in place.
func (s *Service) draw(game *domain.Game, source advisor.DrawSource) (domain.Card, bool) {
	if source == advisor.DrawDiscard {
		return game.Discard.DrawTop()
	}
	if game.Deck.Len() == 0 && game.Discard.Len() > 1 {
		top, _ := game.Discard.DrawTop()
		game.Deck.AddBottom(game.Discard.TakeAll()...)
		game.Discard.AddTop(top)
		game.Deck.Shuffle(game.Rand)
	}
	return game.Deck.DrawTop()
}

// Summary describes the state of a game after simulation.
type Summary struct {
	GameID string
	Seed   int64
	Winner string
	Turns  int
	Phases map[string]domain.PhaseTag
}

// Summarize reports the game's outcome and every player's phase.
func Summarize(game *domain.Game) Summary {
	phases := make(map[string]domain.PhaseTag, len(game.Players))
	for _, pl := range game.Players {
		phases[pl.UserID] = pl.Progress.Phase
	}
	return Summary{
		GameID: game.ID,
		Seed:   game.Seed,
		Winner: game.Winner,
		Turns:  game.TurnCount,
		Phases: phases,
	}
}

// Simulate plays automated turns until a player finishes phase ten, maxTurns
// turns have been played or ctx is done. A game stopped by the turn cap ends
// without a winner.
func (s *Service) Simulate(ctx context.Context, logger runtime.Logger, game *domain.Game, maxTurns int) (Summary, error) {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	for game.Status == domain.StatusPlaying && game.TurnCount < maxTurns {
		if err := ctx.Err(); err != nil {
			return Summarize(game), err
		}
		current := game.CurrentPlayer()
		events, err := s.TakeTurn(game, current.UserID)
		if err != nil {
			logger.Error("simulate turn failed (game=%s, user=%s): %v", game.ID, current.UserID, err)
			return Summarize(game), err
		}
		for _, ev := range events {
			if ev.Kind == EventPhaseCompleted {
				payload := ev.Payload.(PhaseCompletedPayload)
				logger.Debug("turn %d: %s completed %s", game.TurnCount, payload.UserID, payload.Completed)
			}
		}
	}

	if game.Status == domain.StatusPlaying {
		game.Status = domain.StatusEnded
		logger.Warn("game %s stopped after %d turns without a winner", game.ID, game.TurnCount)
	} else {
		logger.Info("game %s won by %s after %d turns", game.ID, game.Winner, game.TurnCount)
	}
	return Summarize(game), nil
}

func handDealt(pl *domain.Player) Event {
	return Event{
		Kind:       EventHandDealt,
		Payload:    HandDealtPayload{UserID: pl.UserID, Hand: pl.Hand.Cards()},
		Recipients: []string{pl.UserID},
	}
}
