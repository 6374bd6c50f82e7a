package domain

import (
	"math/rand"
	"sort"
)

// Deck is an ordered container of cards. Hands, the draw pile and the
// discard pile are all Decks. Slot 0 is the top.
type Deck struct {
	cards []Card
	pos   map[CardID]int
}

// NewDeck wraps the given cards, top first.
func NewDeck(cards ...Card) *Deck {
	d := &Deck{cards: append([]Card(nil), cards...)}
	d.Reindex()
	return d
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the cards in slot order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// At returns the card at the given slot.
func (d *Deck) At(slot int) (Card, bool) {
	if slot < 0 || slot >= len(d.cards) {
		return nil, false
	}
	return d.cards[slot], true
}

// Position returns the current slot of a card, looked up by its stable ID.
func (d *Deck) Position(c Card) (int, bool) {
	slot, ok := d.pos[c.ID()]
	return slot, ok
}

// Reindex rebuilds the ID -> slot index. Every mutating method calls it
// before returning, so Position always agrees with slot order.
func (d *Deck) Reindex() {
	d.pos = make(map[CardID]int, len(d.cards))
	for i, c := range d.cards {
		d.pos[c.ID()] = i
	}
}

// PeekTop returns the top card without removing it.
func (d *Deck) PeekTop() (Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	return d.cards[0], true
}

// DrawTop removes and returns the top card.
func (d *Deck) DrawTop() (Card, bool) {
	return d.Draw(0)
}

// Draw removes and returns the card at slot.
func (d *Deck) Draw(slot int) (Card, bool) {
	if slot < 0 || slot >= len(d.cards) {
		return nil, false
	}
	c := d.cards[slot]
	d.cards = append(d.cards[:slot], d.cards[slot+1:]...)
	d.Reindex()
	return c, true
}

// AddTop places a card on top.
func (d *Deck) AddTop(c Card) {
	d.cards = append([]Card{c}, d.cards...)
	d.Reindex()
}

// AddBottom places cards at the bottom in the given order.
func (d *Deck) AddBottom(cards ...Card) {
	d.cards = append(d.cards, cards...)
	d.Reindex()
}

// TakeAll empties the deck and returns its cards.
func (d *Deck) TakeAll() []Card {
	out := d.cards
	d.cards = nil
	d.Reindex()
	return out
}

// Shuffle permutes the deck with the supplied source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
	d.Reindex()
}

// Sort orders the deck by Less. The sort is stable so cards that compare
// equal keep their relative order.
func (d *Deck) Sort() {
	sort.SliceStable(d.cards, func(i, j int) bool {
		return Less(d.cards[i], d.cards[j])
	})
	d.Reindex()
}

// NumberCards returns the number cards in slot order.
func (d *Deck) NumberCards() []NumberCard {
	var out []NumberCard
	for _, c := range d.cards {
		if nc, ok := c.(NumberCard); ok {
			out = append(out, nc)
		}
	}
	return out
}

// Jokers returns the jokers in slot order.
func (d *Deck) Jokers() []JokerCard {
	var out []JokerCard
	for _, c := range d.cards {
		if jc, ok := c.(JokerCard); ok {
			out = append(out, jc)
		}
	}
	return out
}

// NumberComposition counts cards per number. Jokers count toward each of
// their numbers when includeJokers is set. With asFraction the counts are
// divided by the number of cards in the deck.
func (d *Deck) NumberComposition(includeJokers, asFraction bool) map[int]float64 {
	counts := make(map[int]float64)
	for _, c := range d.cards {
		switch v := c.(type) {
		case NumberCard:
			counts[v.number]++
		case JokerCard:
			if includeJokers {
				for _, n := range v.Numbers() {
					counts[n]++
				}
			}
		}
	}
	return normalize(counts, len(d.cards), asFraction)
}

// ColorComposition counts cards per color, analogous to NumberComposition.
func (d *Deck) ColorComposition(includeJokers, asFraction bool) map[Color]float64 {
	counts := make(map[Color]float64)
	for _, c := range d.cards {
		switch v := c.(type) {
		case NumberCard:
			counts[v.color]++
		case JokerCard:
			if includeJokers {
				for _, color := range v.colors {
					counts[color]++
				}
			}
		}
	}
	return normalize(counts, len(d.cards), asFraction)
}

func normalize[K comparable](counts map[K]float64, total int, asFraction bool) map[K]float64 {
	if !asFraction || total == 0 {
		return counts
	}
	for k, v := range counts {
		counts[k] = v / float64(total)
	}
	return counts
}
