package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Game is the state of a game of checkers: the board, whose turn it is and
// the square a pending skip chain must continue from. It is not safe for
// concurrent use; callers serialize access to a shared Game themselves.
type Game struct {
	board     Board
	blackTurn bool
	skipIndex int
}

// NewGame returns a game in the starting position with black to move.
func NewGame() *Game {
	g := &Game{}
	g.Restart()
	return g
}

// NewGameFromBoard returns a game over an arbitrary position.
func NewGameFromBoard(b Board, blackTurn bool, skipIndex int) *Game {
	if !IsValidIndex(skipIndex) {
		skipIndex = NoSkip
	}
	return &Game{board: b, blackTurn: blackTurn, skipIndex: skipIndex}
}

// NewGameFromState returns a game parsed from a string produced by State.
func NewGameFromState(state string) *Game {
	g := &Game{}
	g.SetState(state)
	return g
}

// Restart resets the game to the starting position with black to move.
func (g *Game) Restart() {
	g.board = NewBoard()
	g.blackTurn = true
	g.skipIndex = NoSkip
}

// Copy returns a deep copy; moves made on one never affect the other.
func (g *Game) Copy() *Game {
	c := *g
	return &c
}

// Board returns a copy of the current position.
func (g *Game) Board() Board {
	return g.board
}

// IsP1Turn reports whether it is the first player's (black's) turn.
func (g *Game) IsP1Turn() bool {
	return g.blackTurn
}

// SkipIndex returns the square a pending skip chain must continue from, or NoSkip.
func (g *Game) SkipIndex() int {
	return g.skipIndex
}

// Player returns the color to move.
func (g *Game) Player() string {
	if g.blackTurn {
		return Black
	}
	return White
}

// Move makes the move from startIndex to endIndex if it is legal and reports
// whether the game was updated. An illegal move leaves the game untouched.
func (g *Game) Move(startIndex, endIndex int) bool {
	if !IsValidMove(g, startIndex, endIndex) {
		return false
	}

	id := g.board.Get(startIndex)
	mid := Middle(startIndex, endIndex)
	g.board.Set(endIndex, id)
	g.board.Set(startIndex, Empty)
	if mid != InvalidSquare {
		g.board.Set(mid, Empty)
	}

	// Crowning always ends the turn, even in the middle of a skip chain
	switchTurn := false
	if promotes(id, endIndex) {
		g.board.Set(endIndex, id.Crowned())
		switchTurn = true
	}

	if mid == InvalidSquare || len(Skips(g.board, endIndex)) == 0 {
		switchTurn = true
	}
	if switchTurn {
		g.blackTurn = !g.blackTurn
		g.skipIndex = NoSkip
	} else {
		g.skipIndex = endIndex
	}
	return true
}

// Play returns a copy of g with the move applied, and whether it was legal.
func (g *Game) Play(m Move) (*Game, bool) {
	next := g.Copy()
	ok := next.Move(m.Start, m.End)
	return next, ok
}

// LegalMoves returns every legal move for the player to move: the skips from
// the pending chain square if there is one, otherwise all skips if any piece
// can capture, otherwise all simple moves.
func (g *Game) LegalMoves() []Move {
	if IsValidIndex(g.skipIndex) {
		return movesFrom(g.skipIndex, Skips(g.board, g.skipIndex))
	}

	pieces := g.board.Pieces(g.blackTurn)
	var moves []Move
	for _, square := range pieces {
		moves = append(moves, movesFrom(square, Skips(g.board, square))...)
	}
	if len(moves) > 0 {
		return moves
	}
	for _, square := range pieces {
		moves = append(moves, movesFrom(square, Moves(g.board, square))...)
	}
	return moves
}

// Destinations returns the squares the piece on square may legally move to now.
func (g *Game) Destinations(square int) []int {
	var ends []int
	for _, m := range g.LegalMoves() {
		if m.Start == square {
			ends = append(ends, m.End)
		}
	}
	return ends
}

func movesFrom(start int, ends []int) []Move {
	moves := make([]Move, 0, len(ends))
	for _, end := range ends {
		moves = append(moves, NewMove(start, end))
	}
	return moves
}

// IsGameOver reports whether a side has no pieces left or the player to move
// cannot move or skip with any piece.
func (g *Game) IsGameOver() bool {
	if g.board.Count(true) == 0 || g.board.Count(false) == 0 {
		return true
	}
	for _, square := range g.board.Pieces(g.blackTurn) {
		if len(Moves(g.board, square)) > 0 || len(Skips(g.board, square)) > 0 {
			return false
		}
	}
	return true
}

// Winner returns the color that won, or "" while the game is still going.
func (g *Game) Winner() string {
	if !g.IsGameOver() {
		return ""
	}
	// The side to move has lost: it is out of pieces or out of moves
	if g.blackTurn {
		return White
	}
	return Black
}

func (g *Game) Hash() StateHash {
	hasher := fnv.New64a()

	for _, word := range g.board.state {
		binary.Write(hasher, binary.LittleEndian, word)
	}
	binary.Write(hasher, binary.LittleEndian, g.blackTurn)
	binary.Write(hasher, binary.LittleEndian, int64(g.skipIndex))

	return StateHash(hasher.Sum64())
}
