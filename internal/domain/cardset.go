package domain

import "fmt"

// GameDeckSize is the number of cards in a full game set.
const GameDeckSize = 110

// NewGameDeck builds the full unshuffled card set. Card IDs are assigned in
// construction order starting at zero and stay with the card for the rest of
// the game.
//
// The set holds two copies of every color/number pair, one two-color joker
// per color pair and half, and one four-color joker per half.
func NewGameDeck() *Deck {
	cards := make([]Card, 0, GameDeckSize)
	next := CardID(0)

	for copyIdx := 0; copyIdx < 2; copyIdx++ {
		for _, color := range AllColors {
			for n := MinNumber; n <= MaxNumber; n++ {
				cards = append(cards, NumberCard{id: next, color: color, number: n})
				next++
			}
		}
	}

	for i := 0; i < len(AllColors); i++ {
		for j := i + 1; j < len(AllColors); j++ {
			for _, h := range []Half{HalfLow, HalfHigh} {
				cards = append(cards, JokerCard{id: next, colors: []Color{AllColors[i], AllColors[j]}, half: h})
				next++
			}
		}
	}

	for _, h := range []Half{HalfLow, HalfHigh} {
		cards = append(cards, JokerCard{id: next, colors: append([]Color(nil), AllColors...), half: h})
		next++
	}

	return NewDeck(cards...)
}

// Unseen returns the cards of a full game set that are not accounted for by
// seen. Cards are matched by face, so callers may pass cards rebuilt from a
// client payload with arbitrary IDs. Claiming more copies of a face than the
// set holds fails with ErrCardNotInSet.
func Unseen(seen ...Card) (*Deck, error) {
	remaining := NewGameDeck().Cards()
	for _, s := range seen {
		found := -1
		for i, c := range remaining {
			if SameFace(c, s) {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: %s", ErrCardNotInSet, s)
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return NewDeck(remaining...), nil
}
