package advisor

import (
	"phase10/internal/advisor/internal"
	"phase10/internal/domain"
)

// doubletsPhase evaluates phase 1: four doublets.
type doubletsPhase struct {
	deck    Composer
	discard Pile
}

func (p *doubletsPhase) Phase() domain.PhaseTag { return domain.PhaseDoublets4 }

// EvaluateHand expects the hand in sorted order. It does not reorder it.
func (p *doubletsPhase) EvaluateHand(hand *domain.Deck) Advice {
	cards := hand.Cards()
	top, hasTop := p.discard.PeekTop()

	solution := internal.SolveDoublets(cards, top, hasTop)

	advice := noDiscard(domain.PhaseDoublets4)
	if solution.Borrowed {
		advice.Draw = DrawDiscard
	}
	if solution.Complete() {
		advice.Complete = true
		return advice
	}

	var fractions map[int]float64
	if p.deck != nil {
		fractions = p.deck.NumberComposition(true, true)
	}
	advice.Scores = internal.ScoreCards(cards, solution, fractions)
	if slot := internal.ArgMin(advice.Scores); slot >= 0 {
		advice.DiscardSlot = slot
		advice.Discard = cards[slot]
	}
	return advice
}
