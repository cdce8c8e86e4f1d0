package game

type StateHash uint64

const (
	Black = "black"
	White = "white"
)

// NoSkip marks a game with no pending skip chain.
const NoSkip = InvalidSquare
