package nakama

import (
	"reflect"
	"testing"

	"phase10/internal/domain"
)

func TestCardsFromWire(t *testing.T) {
	tests := []struct {
		name    string
		in      wireCard
		want    string
		wantErr bool
	}{
		{name: "number card", in: wireCard{Color: "red", Number: 9}, want: "RED 9"},
		{name: "two color joker", in: wireCard{Colors: []string{"RED", "YELLOW"}, Numbers: []int{1, 2, 3, 4, 5, 6}}, want: "Joker RED/YELLOW 1-6"},
		{name: "four color joker", in: wireCard{Colors: []string{"RED", "GREEN", "YELLOW", "PURPLE"}, Numbers: []int{7, 8, 9, 10, 11, 12}}, want: "Joker RED/GREEN/YELLOW/PURPLE 7-12"},
		{name: "unknown color", in: wireCard{Color: "BLUE", Number: 3}, wantErr: true},
		{name: "number out of range", in: wireCard{Color: "RED", Number: 13}, wantErr: true},
		{name: "joker across halves", in: wireCard{Colors: []string{"RED", "GREEN"}, Numbers: []int{4, 5, 6, 7, 8, 9}}, wantErr: true},
		{name: "joker with three colors", in: wireCard{Colors: []string{"RED", "GREEN", "PURPLE"}, Numbers: []int{1, 2, 3, 4, 5, 6}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards, err := cardsFromWire([]wireCard{tt.in}, 7)
			if (err != nil) != tt.wantErr {
				t.Fatalf("cardsFromWire error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cards[0].String() != tt.want {
				t.Fatalf("card = %s, want %s", cards[0], tt.want)
			}
			if cards[0].ID() != 7 {
				t.Fatalf("card id = %d, want 7", cards[0].ID())
			}
		})
	}
}

func TestCardsFromWire_AssignsSequentialIDs(t *testing.T) {
	cards, err := cardsFromWire([]wireCard{{Color: "RED", Number: 1}, {Color: "RED", Number: 1}}, 10)
	if err != nil {
		t.Fatalf("cardsFromWire error: %v", err)
	}
	if cards[0].ID() != 10 || cards[1].ID() != 11 {
		t.Fatalf("ids = %d, %d, want 10, 11", cards[0].ID(), cards[1].ID())
	}
}

func TestCardToValue(t *testing.T) {
	number, _ := domain.NewNumberCard(0, domain.ColorPurple, 12)
	joker, _ := domain.NewJokerCard(1, []domain.Color{domain.ColorGreen, domain.ColorPurple}, []int{7, 8, 9, 10, 11, 12})

	if got, want := cardToValue(number), map[string]interface{}{"color": "PURPLE", "number": 12}; !reflect.DeepEqual(got, want) {
		t.Fatalf("cardToValue(number) = %v, want %v", got, want)
	}

	want := map[string]interface{}{
		"colors":  []interface{}{"GREEN", "PURPLE"},
		"numbers": []interface{}{7, 8, 9, 10, 11, 12},
	}
	if got := cardToValue(joker); !reflect.DeepEqual(got, want) {
		t.Fatalf("cardToValue(joker) = %v, want %v", got, want)
	}
}

func TestMarshalResponse(t *testing.T) {
	number, _ := domain.NewNumberCard(0, domain.ColorRed, 3)
	raw, err := marshalResponse(map[string]interface{}{
		"card":    cardToValue(number),
		"discard": nil,
		"scores":  []interface{}{0.5, 1.0},
	})
	if err != nil {
		t.Fatalf("marshalResponse error: %v", err)
	}

	resp := decodeResponse(t, raw)
	card := resp["card"].(map[string]interface{})
	if card["color"] != "RED" || card["number"] != 3.0 {
		t.Fatalf("card = %v", card)
	}
	if v, ok := resp["discard"]; !ok || v != nil {
		t.Fatalf("discard = %v (present %v), want null", v, ok)
	}
	if scores := resp["scores"].([]interface{}); len(scores) != 2 {
		t.Fatalf("scores = %v", scores)
	}
}
