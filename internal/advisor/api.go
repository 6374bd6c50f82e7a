package advisor

import (
	"phase10/internal/domain"
)

// DrawSource tells the caller where the next card should come from.
type DrawSource int

const (
	DrawDeck DrawSource = iota
	DrawDiscard
)

func (s DrawSource) String() string {
	if s == DrawDiscard {
		return "discard"
	}
	return "deck"
}

// Advice is the outcome of evaluating a hand against a phase.
type Advice struct {
	Phase    domain.PhaseTag
	Complete bool

	// Discard is the card to shed and DiscardSlot its hand slot. Discard is
	// nil when the phase is complete or has no discard heuristic.
	Discard     domain.Card
	DiscardSlot int
	// Scores is parallel to the hand's slots.
	Scores []float64

	Draw DrawSource
}

// HasDiscard reports whether the advice names a card to discard.
func (a Advice) HasDiscard() bool {
	return a.Discard != nil
}

// PhaseEvaluator evaluates hands against one phase.
type PhaseEvaluator interface {
	Phase() domain.PhaseTag
	EvaluateHand(hand *domain.Deck) Advice
}

// Pile exposes the visible top of the discard pile.
type Pile interface {
	PeekTop() (domain.Card, bool)
}

// Composer exposes composition statistics of the undrawn deck.
type Composer interface {
	NumberComposition(includeJokers, asFraction bool) map[int]float64
}

type emptyPile struct{}

func (emptyPile) PeekTop() (domain.Card, bool) { return nil, false }

// EmptyPile is a discard pile with nothing on it.
var EmptyPile Pile = emptyPile{}

func noDiscard(tag domain.PhaseTag) Advice {
	return Advice{Phase: tag, DiscardSlot: -1, Draw: DrawDeck}
}
