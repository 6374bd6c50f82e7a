package domain

import "math/rand"

// Status represents the lifecycle stage of a game.
type Status string

const (
	// StatusPlaying indicates turns are being taken.
	StatusPlaying Status = "playing"
	// StatusEnded indicates a player finished the last phase or the game was stopped.
	StatusEnded Status = "ended"
)

// Player holds state for a participant in a game.
type Player struct {
	UserID   string
	Seat     int // 0-based turn order
	Hand     *Deck
	Progress Progress
}

// Game holds the authoritative state of a single game. Every game owns its
// own draw pile and discard pile.
type Game struct {
	ID      string
	Status  Status
	Players []*Player
	Deck    *Deck
	Discard *Deck

	Seed int64
	Rand *rand.Rand // seeded from Seed, drives every shuffle of this game

	Turn      int // seat whose turn it is
	TurnCount int
	Winner    string
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return g.Players[g.Turn%len(g.Players)]
}

// PlayerByID looks a player up by user ID.
func (g *Game) PlayerByID(userID string) (*Player, bool) {
	for _, p := range g.Players {
		if p.UserID == userID {
			return p, true
		}
	}
	return nil, false
}

// NextTurn passes the turn to the following seat.
func (g *Game) NextTurn() {
	g.Turn = (g.Turn + 1) % len(g.Players)
	g.TurnCount++
}
