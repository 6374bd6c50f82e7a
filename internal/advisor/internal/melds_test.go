package internal

import (
	"testing"

	"phase10/internal/domain"
)

func TestMelds(t *testing.T) {
	m := newCardMaker(t)
	r, g, y, p := domain.ColorRed, domain.ColorGreen, domain.ColorYellow, domain.ColorPurple
	low, high := domain.HalfLow, domain.HalfHigh

	tests := []struct {
		name  string
		meld  Meld
		cards []domain.Card
		want  bool
	}{
		{
			name:  "same color with joker",
			meld:  SameColor(6),
			cards: []domain.Card{m.num(r, 1), m.num(r, 3), m.num(r, 5), m.num(r, 8), m.num(r, 12), m.joker(low, r, y)},
			want:  true,
		},
		{
			name:  "same color joker of other colors",
			meld:  SameColor(6),
			cards: []domain.Card{m.num(r, 1), m.num(r, 3), m.num(r, 5), m.num(r, 8), m.num(r, 12), m.joker(low, g, p)},
			want:  false,
		},
		{
			name:  "set filled by joker",
			meld:  Set(4),
			cards: []domain.Card{m.num(r, 7), m.num(g, 7), m.num(p, 7), m.joker(high, r, g)},
			want:  true,
		},
		{
			name:  "set joker from wrong half",
			meld:  Set(4),
			cards: []domain.Card{m.num(r, 7), m.num(g, 7), m.num(p, 7), m.joker(low, r, g)},
			want:  false,
		},
		{
			name:  "run gap filled by joker",
			meld:  Run(8),
			cards: []domain.Card{m.num(r, 1), m.num(g, 2), m.num(y, 3), m.num(p, 4), m.num(r, 6), m.num(g, 7), m.num(y, 8), m.joker(low, r, g)},
			want:  true,
		},
		{
			name:  "run gap in wrong half",
			meld:  Run(8),
			cards: []domain.Card{m.num(r, 1), m.num(g, 2), m.num(y, 3), m.num(p, 4), m.num(r, 6), m.num(g, 7), m.num(y, 8), m.num(p, 9), m.joker(high, r, g)},
			want:  false,
		},
		{
			name:  "run ignores duplicates",
			meld:  Run(4),
			cards: []domain.Card{m.num(r, 9), m.num(g, 9), m.num(y, 10), m.num(p, 11)},
			want:  false,
		},
		{
			name:  "color run with joker",
			meld:  ColorRun(4),
			cards: []domain.Card{m.num(r, 3), m.num(r, 4), m.num(r, 6), m.joker(low, r, g)},
			want:  true,
		},
		{
			name:  "color run broken by other color",
			meld:  ColorRun(4),
			cards: []domain.Card{m.num(r, 3), m.num(r, 4), m.num(g, 5), m.num(r, 6)},
			want:  false,
		},
		{
			name:  "two sets with joker",
			meld:  TwoSets(4),
			cards: []domain.Card{m.num(r, 3), m.num(g, 3), m.num(y, 3), m.num(p, 3), m.num(r, 9), m.num(g, 9), m.num(y, 9), m.joker(high, r, g)},
			want:  true,
		},
		{
			name:  "two sets joker in wrong half",
			meld:  TwoSets(4),
			cards: []domain.Card{m.num(r, 3), m.num(g, 3), m.num(y, 3), m.num(p, 3), m.num(r, 9), m.num(g, 9), m.num(y, 9), m.joker(low, r, g)},
			want:  false,
		},
		{
			name:  "two sets need different numbers",
			meld:  TwoSets(4),
			cards: []domain.Card{m.num(r, 3), m.num(g, 3), m.num(y, 3), m.num(p, 3), m.num(r, 3), m.num(g, 3), m.num(y, 3), m.num(p, 3)},
			want:  false,
		},
		{
			name:  "two sets sharing jokers in one half",
			meld:  TwoSets(4),
			cards: []domain.Card{m.num(r, 2), m.num(g, 2), m.num(y, 2), m.num(r, 5), m.num(g, 5), m.num(y, 5), m.joker(low, r, g), m.joker(low, y, p)},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meld(tt.cards); got != tt.want {
				t.Fatalf("meld(%v) = %v, want %v", tt.cards, got, tt.want)
			}
		})
	}
}

func TestBoth(t *testing.T) {
	m := newCardMaker(t)
	r, g, y, p := domain.ColorRed, domain.ColorGreen, domain.ColorYellow, domain.ColorPurple

	shared := []domain.Card{m.num(r, 1), m.num(r, 2), m.num(r, 3), m.num(r, 4), m.num(g, 4), m.num(y, 4), m.num(p, 4)}
	if !Both(Run(4), Set(4))(shared) {
		t.Fatal("Both() = false, want true when the run and the set share RED 4")
	}

	noSet := []domain.Card{m.num(r, 1), m.num(r, 2), m.num(r, 3), m.num(r, 4), m.num(g, 4), m.num(y, 4)}
	if Both(Run(4), Set(4))(noSet) {
		t.Fatal("Both() = true, want false with only three 4s")
	}

	noRun := []domain.Card{m.num(r, 1), m.num(r, 2), m.num(r, 4), m.num(g, 4), m.num(y, 4), m.num(p, 4)}
	if Both(Run(4), Set(4))(noRun) {
		t.Fatal("Both() = true, want false without a run of four")
	}
}
