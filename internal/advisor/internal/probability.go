package internal

import (
	"phase10/internal/domain"
)

// Certain is the score of a card already used by a completed group.
const Certain = 1.0

// ScoreCards rates every hand card by how likely it is to be useful if kept.
// fractions maps a number to the share of undrawn cards that can show it.
// The result is parallel to hand.
func ScoreCards(hand []domain.Card, s Solution, fractions map[int]float64) []float64 {
	used := s.SlotsInCompleteGroups()
	scores := make([]float64, len(hand))
	for slot, c := range hand {
		if used[slot] {
			scores[slot] = Certain
			continue
		}
		switch v := c.(type) {
		case domain.NumberCard:
			scores[slot] = fractions[v.Number()]
		case domain.JokerCard:
			sum := 0.0
			for _, n := range v.Numbers() {
				sum += fractions[n]
			}
			scores[slot] = sum
		}
	}
	return scores
}

// ArgMin returns the slot of the lowest score, preferring the lowest slot on
// ties, or -1 for an empty vector.
func ArgMin(scores []float64) int {
	best := -1
	for i, s := range scores {
		if best < 0 || s < scores[best] {
			best = i
		}
	}
	return best
}
