package advisor

import (
	"phase10/internal/advisor/internal"
	"phase10/internal/domain"
)

// meldPhase evaluates a phase that only has a completion predicate. It never
// recommends a discard.
type meldPhase struct {
	tag     domain.PhaseTag
	meld    internal.Meld
	discard Pile
}

func (p *meldPhase) Phase() domain.PhaseTag { return p.tag }

// EvaluateHand reports completion. When the hand is incomplete but taking the
// discard pile's top card would complete it, the draw points at the pile.
func (p *meldPhase) EvaluateHand(hand *domain.Deck) Advice {
	cards := hand.Cards()
	advice := noDiscard(p.tag)
	if p.meld(cards) {
		advice.Complete = true
		return advice
	}
	if top, ok := p.discard.PeekTop(); ok && p.meld(append(cards, top)) {
		advice.Draw = DrawDiscard
	}
	return advice
}
