package app

import (
	"phase10/internal/advisor"
	"phase10/internal/domain"
)

// EventKind identifies emitted game events for Nakama dispatch.
type EventKind string

const (
	EventGameStarted    EventKind = "game_started"
	EventHandDealt      EventKind = "hand_dealt"
	EventCardDrawn      EventKind = "card_drawn"
	EventCardDiscarded  EventKind = "card_discarded"
	EventPhaseCompleted EventKind = "phase_completed"
	EventGameEnded      EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type GameStartedPayload struct {
	GameID          string
	Players         []string
	FirstTurnUserID string
}

type HandDealtPayload struct {
	UserID string
	Hand   []domain.Card
}

type CardDrawnPayload struct {
	UserID string
	Source advisor.DrawSource
	Card   domain.Card
}

type CardDiscardedPayload struct {
	UserID         string
	Card           domain.Card
	NextTurnUserID string
}

type PhaseCompletedPayload struct {
	UserID    string
	Completed domain.PhaseTag
	Next      domain.PhaseTag
}

type GameEndedPayload struct {
	WinnerUserID string
	Turns        int
}
