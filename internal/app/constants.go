package app

// MinPlayersToStartGame and MaxPlayersToStartGame bound the table size.
const (
	MinPlayersToStartGame = 2
	MaxPlayersToStartGame = 6
)

// DefaultHandSize is the number of cards dealt to each player.
const DefaultHandSize = 10

// DefaultMaxTurns caps a simulated game that never reaches a winner.
const DefaultMaxTurns = 5000
