package advisor

import (
	"math/rand"
	"time"

	"phase10/internal/domain"
)

// Agent turns phase advice into turn decisions for an automated player.
type Agent struct {
	rng *rand.Rand
}

// NewAgent creates an agent. The rng picks a discard for phases without a
// discard heuristic; nil seeds one from the clock.
func NewAgent(rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent{rng: rng}
}

// PlanDraw decides the draw source for a sorted hand before drawing.
func (a *Agent) PlanDraw(tag domain.PhaseTag, hand *domain.Deck, deck Composer, discard Pile) (DrawSource, error) {
	advice, err := Evaluate(tag, hand, deck, discard)
	if err != nil {
		return DrawDeck, err
	}
	return advice.Draw, nil
}

// PlanDiscard evaluates a sorted hand after drawing, so only held cards count.
// An incomplete advice always carries a discard: the recommended one, or a
// random slot when the phase has no heuristic.
func (a *Agent) PlanDiscard(tag domain.PhaseTag, hand *domain.Deck, deck Composer) (Advice, error) {
	advice, err := Evaluate(tag, hand, deck, EmptyPile)
	if err != nil {
		return Advice{}, err
	}
	if advice.Complete || advice.HasDiscard() || hand.Len() == 0 {
		return advice, nil
	}
	slot := a.rng.Intn(hand.Len())
	card, _ := hand.At(slot)
	advice.Discard = card
	advice.DiscardSlot = slot
	return advice, nil
}
