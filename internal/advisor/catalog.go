package advisor

import (
	"strconv"

	"phase10/internal/advisor/internal"
	"phase10/internal/domain"
)

// meldPhases holds the completion predicate of every phase without a
// discard heuristic.
var meldPhases = map[domain.PhaseTag]internal.Meld{
	domain.PhaseSameColor6:                     internal.SameColor(6),
	domain.PhaseSequence4AndQuadruplet:         internal.Both(internal.Run(4), internal.Set(4)),
	domain.PhaseSequence8:                      internal.Run(8),
	domain.PhaseSameColor7:                     internal.SameColor(7),
	domain.PhaseSequence9:                      internal.Run(9),
	domain.PhaseQuadruplets2:                   internal.TwoSets(4),
	domain.PhaseSameColorSequence4AndTriplet:   internal.Both(internal.ColorRun(4), internal.Set(3)),
	domain.PhaseSequence5AndTriplet:            internal.Both(internal.Run(5), internal.Set(3)),
	domain.PhaseSequence5AndSameColorSequence3: internal.Both(internal.Run(5), internal.ColorRun(3)),
}

// GetPhase returns the evaluator for tag. deck is the undrawn deck and
// discard the discard pile; a nil discard is treated as empty.
func GetPhase(tag domain.PhaseTag, deck Composer, discard Pile) (PhaseEvaluator, error) {
	if discard == nil {
		discard = EmptyPile
	}
	if tag == domain.PhaseDoublets4 {
		return &doubletsPhase{deck: deck, discard: discard}, nil
	}
	if meld, ok := meldPhases[tag]; ok {
		return &meldPhase{tag: tag, meld: meld, discard: discard}, nil
	}
	return nil, &domain.UnknownPhaseError{Tag: strconv.Itoa(int(tag))}
}

// Evaluate looks up the phase and evaluates the hand in one call.
func Evaluate(tag domain.PhaseTag, hand *domain.Deck, deck Composer, discard Pile) (Advice, error) {
	phase, err := GetPhase(tag, deck, discard)
	if err != nil {
		return Advice{}, err
	}
	return phase.EvaluateHand(hand), nil
}
