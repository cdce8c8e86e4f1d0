package gamemaster

import (
	"checkers/game"
	"errors"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over - no moves allowed")
)

// Update is published after every change to a table's game.
type Update struct {
	Player string    // Who moved, empty when the state was replaced
	Move   game.Move // Zero when the state was replaced
	State  string
	Hash   game.StateHash
}

// UpdateGetter returns the next pending update without blocking. ok is false
// when there is none yet or the game is over and every update was read.
// Intermediate updates are dropped while the feed is full; the game-over
// update is always delivered.
type UpdateGetter func() (u Update, ok bool)

// Mover is a player that chooses moves on its own.
type Mover interface {
	FindMove(g *game.Game) (game.Move, bool)
}
