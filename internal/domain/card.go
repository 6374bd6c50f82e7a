package domain

import (
	"fmt"
	"strings"
)

// Color is one of the four card colors. The numeric value is the sort rank.
type Color int

const (
	ColorRed Color = iota + 1
	ColorGreen
	ColorYellow
	ColorPurple
)

// AllColors lists the colors in rank order.
var AllColors = []Color{ColorRed, ColorGreen, ColorYellow, ColorPurple}

const (
	MinNumber = 1
	MaxNumber = 12
	// HalfSize is the count of numbers a joker can stand in for.
	HalfSize = 6
)

var colorNames = map[Color]string{
	ColorRed:    "RED",
	ColorGreen:  "GREEN",
	ColorYellow: "YELLOW",
	ColorPurple: "PURPLE",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Valid reports whether c is one of the four enumerated colors.
func (c Color) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

// ParseColor maps a color name (case-insensitive) to its Color.
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return 0, &ValidationError{Field: "color", Reason: fmt.Sprintf("unknown color %q", s)}
}

// Half selects which six numbers a joker covers.
type Half int

const (
	HalfLow  Half = iota // 1..6
	HalfHigh             // 7..12
)

// Numbers returns the numbers covered by the half in ascending order.
func (h Half) Numbers() []int {
	start := MinNumber
	if h == HalfHigh {
		start = MinNumber + HalfSize
	}
	out := make([]int, HalfSize)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// HalfOf returns the half a number belongs to.
func HalfOf(number int) Half {
	if number > HalfSize {
		return HalfHigh
	}
	return HalfLow
}

// CardID is the stable arena handle handed out when a card is created.
// It never changes while the card moves between containers.
type CardID int

// Card is either a NumberCard or a JokerCard.
type Card interface {
	ID() CardID
	// Numbers lists every number the card can represent.
	Numbers() []int
	// Colors lists every color the card carries.
	Colors() []Color
	String() string

	isCard()
}

// NumberCard is a single color and number.
type NumberCard struct {
	id     CardID
	color  Color
	number int
}

// NewNumberCard validates and builds a number card.
func NewNumberCard(id CardID, color Color, number int) (NumberCard, error) {
	if !color.Valid() {
		return NumberCard{}, &ValidationError{Field: "color", Reason: fmt.Sprintf("unknown color %d", int(color))}
	}
	if number < MinNumber || number > MaxNumber {
		return NumberCard{}, &ValidationError{Field: "number", Reason: fmt.Sprintf("number must be between %d and %d, got %d", MinNumber, MaxNumber, number)}
	}
	return NumberCard{id: id, color: color, number: number}, nil
}

func (c NumberCard) ID() CardID      { return c.id }
func (c NumberCard) Color() Color    { return c.color }
func (c NumberCard) Number() int     { return c.number }
func (c NumberCard) Numbers() []int  { return []int{c.number} }
func (c NumberCard) Colors() []Color { return []Color{c.color} }
func (c NumberCard) String() string  { return fmt.Sprintf("%s %d", c.color, c.number) }
func (NumberCard) isCard()           {}

// JokerCard carries 2 or 4 colors and stands in for any number of one half.
type JokerCard struct {
	id     CardID
	colors []Color
	half   Half
}

// NewJokerCard validates and builds a joker. numbers must be exactly 1..6 or 7..12.
func NewJokerCard(id CardID, colors []Color, numbers []int) (JokerCard, error) {
	if len(colors) != 2 && len(colors) != 4 {
		return JokerCard{}, &ValidationError{Field: "colors", Reason: fmt.Sprintf("joker must have 2 or 4 colors, got %d", len(colors))}
	}
	seen := make(map[Color]bool, len(colors))
	for _, c := range colors {
		if !c.Valid() {
			return JokerCard{}, &ValidationError{Field: "colors", Reason: fmt.Sprintf("unknown color %d", int(c))}
		}
		if seen[c] {
			return JokerCard{}, &ValidationError{Field: "colors", Reason: fmt.Sprintf("duplicate color %s", c)}
		}
		seen[c] = true
	}

	half, ok := halfFromNumbers(numbers)
	if !ok {
		return JokerCard{}, &ValidationError{Field: "numbers", Reason: fmt.Sprintf("joker must cover 1-6 or 7-12, got %v", numbers)}
	}

	return JokerCard{id: id, colors: append([]Color(nil), colors...), half: half}, nil
}

func halfFromNumbers(numbers []int) (Half, bool) {
	for _, h := range []Half{HalfLow, HalfHigh} {
		want := h.Numbers()
		if len(numbers) != len(want) {
			continue
		}
		match := true
		for i := range want {
			if numbers[i] != want[i] {
				match = false
				break
			}
		}
		if match {
			return h, true
		}
	}
	return 0, false
}

func (c JokerCard) ID() CardID      { return c.id }
func (c JokerCard) Half() Half      { return c.half }
func (c JokerCard) Numbers() []int  { return c.half.Numbers() }
func (c JokerCard) Colors() []Color { return append([]Color(nil), c.colors...) }
func (JokerCard) isCard()           {}

// Covers reports whether the joker can stand in for number.
func (c JokerCard) Covers(number int) bool {
	return number >= MinNumber && number <= MaxNumber && HalfOf(number) == c.half
}

// HasColor reports whether color is one of the joker's colors.
func (c JokerCard) HasColor(color Color) bool {
	for _, own := range c.colors {
		if own == color {
			return true
		}
	}
	return false
}

func (c JokerCard) String() string {
	names := make([]string, len(c.colors))
	for i, color := range c.colors {
		names[i] = color.String()
	}
	numbers := c.Numbers()
	return fmt.Sprintf("Joker %s %d-%d", strings.Join(names, "/"), numbers[0], numbers[len(numbers)-1])
}

// OrderKey is the comparable key behind Less and Equal. Jokers only
// contribute their first color and first number.
type OrderKey struct {
	Joker  bool
	Color  Color
	Number int
}

// KeyOf returns the ordering key of a card.
func KeyOf(c Card) OrderKey {
	switch v := c.(type) {
	case NumberCard:
		return OrderKey{Color: v.color, Number: v.number}
	case JokerCard:
		return OrderKey{Joker: true, Color: v.colors[0], Number: v.Numbers()[0]}
	default:
		panic(fmt.Sprintf("domain: unknown card type %T", c))
	}
}

// Less orders number cards before jokers, then by (color, number).
func Less(a, b Card) bool {
	ka, kb := KeyOf(a), KeyOf(b)
	if ka.Joker != kb.Joker {
		return !ka.Joker
	}
	if ka.Color != kb.Color {
		return ka.Color < kb.Color
	}
	return ka.Number < kb.Number
}

// Equal reports whether neither card orders before the other.
func Equal(a, b Card) bool {
	return KeyOf(a) == KeyOf(b)
}

// SameFace reports whether two cards print the same face, comparing every
// joker color. Unlike Equal it distinguishes RED/YELLOW from RED/GREEN jokers.
func SameFace(a, b Card) bool {
	switch x := a.(type) {
	case NumberCard:
		y, ok := b.(NumberCard)
		return ok && x.color == y.color && x.number == y.number
	case JokerCard:
		y, ok := b.(JokerCard)
		if !ok || x.half != y.half || len(x.colors) != len(y.colors) {
			return false
		}
		for _, c := range x.colors {
			if !y.HasColor(c) {
				return false
			}
		}
		return true
	}
	return false
}
