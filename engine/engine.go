package engine

import (
	"checkers/experiments/metrics"
	"checkers/gamemaster"
	"errors"
)

var ErrInputClosed = errors.New("input closed before the game ended")

type Engine interface {
	// Run plays a game till there's a winner or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Automated players choose their moves on their own, like player.Computer.
type Automated interface {
	gamemaster.Mover
	LastSearch() metrics.SearchMetric
}
