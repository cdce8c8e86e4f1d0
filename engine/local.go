package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"checkers/player"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

// LocalEngine runs a game on a table between a black and a white player.
// Computer players move on their own; every other player's moves are read
// from the input channel.
type LocalEngine struct {
	table    *gamemaster.Table
	players  map[string]player.Player
	input    <-chan game.Move
	maxTurns int
}

func WithInput(input <-chan game.Move) Option {
	return func(e *LocalEngine) {
		e.input = input
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// New sets up black (players[0]) against white (players[1]) on table.
func New(table *gamemaster.Table, players []player.Player, options ...Option) *LocalEngine {
	if table == nil {
		panic("need a table")
	}
	if len(players) != 2 {
		panic("need exactly two players")
	}

	e := &LocalEngine{ // Default values
		table:    table,
		players:  map[string]player.Player{game.Black: players[0], game.White: players[1]},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	for _, p := range players {
		if _, ok := p.(Automated); !ok && e.input == nil {
			panic(fmt.Sprintf("%v needs an input channel", p))
		}
	}
	return e
}

// Run executes the game loop until a winner is found or the turn cap is hit.
// A pending skip chain counts as a turn per skip.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		SessionID:      e.table.ID().String(),
		StartingPlayer: e.table.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("table %s: %s is starting", gameMetric.SessionID, gameMetric.StartingPlayer)

	var err error
	turn := 0
	for !e.table.IsGameOver() && turn < e.maxTurns {
		color := e.table.Player()
		p := e.players[color]

		var move game.Move
		var search metrics.SearchMetric
		move, search, err = e.turn(p)
		if err != nil {
			err = fmt.Errorf("turn %d of %v: %w", turn+1, p, err)
			break
		}

		turn++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       color,
			Start:        move.Start,
			End:          move.End,
			SearchMetric: search,
		})
		log.Debug().Msgf("turn %d: %s played %d->%d", turn, color, move.Start, move.End)
	}

	winner := e.table.Winner()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = turn

	if err != nil {
		return winner, gameMetric, moveMetrics, err
	}
	if winner != "" {
		log.Info().Msgf("table %s: game ended with winner %s after %d moves", gameMetric.SessionID, winner, turn)
	} else {
		log.Info().Msgf("table %s: stopped after %d moves (no winner yet)", gameMetric.SessionID, turn)
	}
	return winner, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) turn(p player.Player) (game.Move, metrics.SearchMetric, error) {
	if a, ok := p.(Automated); ok {
		move, err := e.table.Step(a)
		return move, a.LastSearch(), err
	}

	for {
		move, ok := <-e.input
		if !ok {
			return game.Move{}, metrics.SearchMetric{}, ErrInputClosed
		}
		err := e.table.Play(move.Start, move.End)
		if errors.Is(err, gamemaster.ErrIllegalMove) {
			log.Warn().Err(err).Msgf("%v: rejected input", p)
			continue
		}
		return game.NewMove(move.Start, move.End), metrics.SearchMetric{}, err
	}
}
