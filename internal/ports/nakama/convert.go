package nakama

import (
	"fmt"

	"phase10/internal/domain"
)

// wireCard is the JSON form of a card. Number cards set Color and Number,
// jokers set Colors and Numbers (the six numbers of their half).
type wireCard struct {
	Color   string   `json:"color,omitempty"`
	Number  int      `json:"number,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Numbers []int    `json:"numbers,omitempty"`
}

func (w wireCard) isJoker() bool {
	return len(w.Colors) > 0 || len(w.Numbers) > 0
}

// cardsFromWire builds domain cards with IDs firstID, firstID+1, ...
func cardsFromWire(cards []wireCard, firstID domain.CardID) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(cards))
	for i, w := range cards {
		c, err := cardFromWire(w, firstID+domain.CardID(i))
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func cardFromWire(w wireCard, id domain.CardID) (domain.Card, error) {
	if !w.isJoker() {
		color, err := domain.ParseColor(w.Color)
		if err != nil {
			return nil, err
		}
		return domain.NewNumberCard(id, color, w.Number)
	}

	colors := make([]domain.Color, 0, len(w.Colors))
	for _, name := range w.Colors {
		color, err := domain.ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors = append(colors, color)
	}
	return domain.NewJokerCard(id, colors, w.Numbers)
}

// cardToValue renders a card as a structpb-compatible map.
func cardToValue(c domain.Card) map[string]interface{} {
	if n, ok := c.(domain.NumberCard); ok {
		return map[string]interface{}{
			"color":  n.Color().String(),
			"number": n.Number(),
		}
	}

	colors := make([]interface{}, 0, len(c.Colors()))
	for _, color := range c.Colors() {
		colors = append(colors, color.String())
	}
	numbers := make([]interface{}, 0, len(c.Numbers()))
	for _, n := range c.Numbers() {
		numbers = append(numbers, n)
	}
	return map[string]interface{}{
		"colors":  colors,
		"numbers": numbers,
	}
}

func cardsToValue(cards []domain.Card) []interface{} {
	out := make([]interface{}, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardToValue(c))
	}
	return out
}
