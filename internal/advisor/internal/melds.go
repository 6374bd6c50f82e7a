package internal

import (
	"phase10/internal/domain"
)

// Meld reports whether a collection of cards contains a combination.
// Every Meld is monotone: adding cards never breaks a satisfied meld.
type Meld func(cards []domain.Card) bool

// SameColor needs n cards showing one color. A joker shows each of its colors.
func SameColor(n int) Meld {
	return func(cards []domain.Card) bool {
		for _, color := range domain.AllColors {
			if len(ofColor(cards, color)) >= n {
				return true
			}
		}
		return false
	}
}

// Set needs n cards of one number. Jokers fill in for numbers of their half.
func Set(n int) Meld {
	return func(cards []domain.Card) bool {
		numbers, jokers := tally(cards)
		for v := domain.MinNumber; v <= domain.MaxNumber; v++ {
			if numbers[v]+jokers[domain.HalfOf(v)] >= n {
				return true
			}
		}
		return false
	}
}

// Run needs n consecutive numbers. A joker fills one missing number of its half.
func Run(n int) Meld {
	return func(cards []domain.Card) bool {
		numbers, jokers := tally(cards)
		for start := domain.MinNumber; start+n-1 <= domain.MaxNumber; start++ {
			missing := map[domain.Half]int{}
			for v := start; v < start+n; v++ {
				if numbers[v] == 0 {
					missing[domain.HalfOf(v)]++
				}
			}
			if missing[domain.HalfLow] <= jokers[domain.HalfLow] && missing[domain.HalfHigh] <= jokers[domain.HalfHigh] {
				return true
			}
		}
		return false
	}
}

// ColorRun needs n consecutive numbers all showing one color.
func ColorRun(n int) Meld {
	run := Run(n)
	return func(cards []domain.Card) bool {
		for _, color := range domain.AllColors {
			if run(ofColor(cards, color)) {
				return true
			}
		}
		return false
	}
}

// TwoSets needs two sets of n cards on different numbers.
func TwoSets(n int) Meld {
	return func(cards []domain.Card) bool {
		numbers, jokers := tally(cards)
		deficit := func(v int) int {
			if d := n - numbers[v]; d > 0 {
				return d
			}
			return 0
		}
		for a := domain.MinNumber; a <= domain.MaxNumber; a++ {
			for b := a + 1; b <= domain.MaxNumber; b++ {
				da, db := deficit(a), deficit(b)
				ha, hb := domain.HalfOf(a), domain.HalfOf(b)
				if ha == hb {
					if da+db <= jokers[ha] {
						return true
					}
					continue
				}
				if da <= jokers[ha] && db <= jokers[hb] {
					return true
				}
			}
		}
		return false
	}
}

// Both reports whether the cards satisfy first and second. The two melds
// are checked independently and may share cards.
func Both(first, second Meld) Meld {
	return func(cards []domain.Card) bool {
		return first(cards) && second(cards)
	}
}

// tally counts number cards by number and jokers by half.
func tally(cards []domain.Card) (map[int]int, map[domain.Half]int) {
	numbers := make(map[int]int)
	jokers := make(map[domain.Half]int)
	for _, c := range cards {
		switch v := c.(type) {
		case domain.NumberCard:
			numbers[v.Number()]++
		case domain.JokerCard:
			jokers[v.Half()]++
		}
	}
	return numbers, jokers
}

func ofColor(cards []domain.Card, color domain.Color) []domain.Card {
	var out []domain.Card
	for _, c := range cards {
		switch v := c.(type) {
		case domain.NumberCard:
			if v.Color() == color {
				out = append(out, c)
			}
		case domain.JokerCard:
			if v.HasColor(color) {
				out = append(out, c)
			}
		}
	}
	return out
}
