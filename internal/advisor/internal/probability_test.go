package internal

import (
	"testing"

	"phase10/internal/domain"
)

func TestScoreCards(t *testing.T) {
	m := newCardMaker(t)
	hand := sorted(
		m.num(domain.ColorRed, 4),
		m.num(domain.ColorGreen, 4),
		m.num(domain.ColorGreen, 11),
		m.joker(domain.HalfHigh, domain.ColorRed, domain.ColorPurple),
	)
	fractions := map[int]float64{4: 0.1, 7: 0.05, 8: 0.05, 11: 0.2, 12: 0.1}

	s := SolveDoublets(hand, nil, false)
	scores := ScoreCards(hand, s, fractions)

	if len(scores) != len(hand) {
		t.Fatalf("len(scores) = %d, want %d", len(scores), len(hand))
	}
	want := []float64{Certain, Certain, Certain, Certain}
	for i := range want {
		if scores[i] != want[i] {
			t.Fatalf("scores = %v, want %v", scores, want)
		}
	}

	hand = sorted(
		m.num(domain.ColorRed, 4),
		m.num(domain.ColorGreen, 4),
		m.num(domain.ColorGreen, 11),
		m.joker(domain.HalfLow, domain.ColorRed, domain.ColorPurple),
	)
	s = SolveDoublets(hand, nil, false)
	scores = ScoreCards(hand, s, fractions)

	// The low joker cannot pair with 11, so it scores the sum over 1-6.
	want = []float64{Certain, Certain, 0.2, 0.1}
	for i := range want {
		if scores[i] != want[i] {
			t.Fatalf("scores = %v, want %v", scores, want)
		}
	}
}

func TestScoreCards_BorrowedCardCompletesGroup(t *testing.T) {
	m := newCardMaker(t)
	hand := sorted(m.num(domain.ColorRed, 9), m.num(domain.ColorGreen, 2))
	s := SolveDoublets(hand, m.num(domain.ColorYellow, 9), true)

	scores := ScoreCards(hand, s, map[int]float64{2: 0.3, 9: 0.3})
	// RED 9 sorts before GREEN 2.
	if len(scores) != 2 || scores[0] != Certain || scores[1] != 0.3 {
		t.Fatalf("scores = %v, want [1 0.3]", scores)
	}
}

func TestArgMin(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   int
	}{
		{"empty", nil, -1},
		{"single", []float64{0.4}, 0},
		{"strict minimum", []float64{0.4, 0.1, 0.3}, 1},
		{"ties resolve to lowest slot", []float64{0.5, 0.2, 0.9, 0.2, 0.2}, 1},
		{"all equal", []float64{1, 1, 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArgMin(tt.scores); got != tt.want {
				t.Fatalf("ArgMin(%v) = %d, want %d", tt.scores, got, tt.want)
			}
		})
	}
}
