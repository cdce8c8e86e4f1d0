package engine

import (
	"checkers/game"
	"checkers/gamemaster"
	"checkers/player"
	"checkers/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func computers(seed1, seed2 uint64) []player.Player {
	return []player.Player{
		player.NewComputer(searcher.WithSeed(seed1), searcher.WithMetrics()),
		player.NewComputer(searcher.WithSeed(seed2), searcher.WithMetrics()),
	}
}

func TestRunComputers(t *testing.T) {
	t.Run("plays to the end or the cap", func(t *testing.T) {
		table := gamemaster.NewTable()
		winner, gameMetric, moveMetrics, err := New(table, computers(1, 2)).Run()
		require.NoError(t, err)

		require.Contains(t, []string{game.Black, game.White, ""}, winner)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, table.ID().String(), gameMetric.SessionID)
		require.Equal(t, game.Black, gameMetric.StartingPlayer)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
		if winner != "" {
			require.True(t, table.IsGameOver())
		}

		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			require.Positive(t, mm.Candidates, "Every computer move should weigh candidates")
			require.Positive(t, mm.Ties)
		}
		require.Equal(t, game.Black, moveMetrics[0].Player)
	})

	t.Run("turn cap", func(t *testing.T) {
		winner, gameMetric, moveMetrics, err := New(gamemaster.NewTable(), computers(1, 2), WithMaxTurns(4)).Run()
		require.NoError(t, err)
		require.Empty(t, winner, "No game ends within four moves")
		require.Equal(t, 4, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 4)
		require.Equal(t, []string{game.Black, game.White, game.Black, game.White},
			[]string{moveMetrics[0].Player, moveMetrics[1].Player, moveMetrics[2].Player, moveMetrics[3].Player})
	})

	t.Run("same seeds same game", func(t *testing.T) {
		_, _, first, err := New(gamemaster.NewTable(), computers(3, 4), WithMaxTurns(40)).Run()
		require.NoError(t, err)
		_, _, second, err := New(gamemaster.NewTable(), computers(3, 4), WithMaxTurns(40)).Run()
		require.NoError(t, err)

		require.Equal(t, len(first), len(second))
		for i := range first {
			require.Equal(t, first[i].Start, second[i].Start, "Move %d differs", i+1)
			require.Equal(t, first[i].End, second[i].End, "Move %d differs", i+1)
		}
	})

	t.Run("finished game", func(t *testing.T) {
		table := gamemaster.NewTableFromState("00000000000000000600000000000000" + "0" + "-1")
		winner, gameMetric, moveMetrics, err := New(table, computers(1, 2)).Run()
		require.NoError(t, err)
		require.Equal(t, game.Black, winner)
		require.Equal(t, game.White, gameMetric.StartingPlayer)
		require.Zero(t, gameMetric.TotalMoves)
		require.Empty(t, moveMetrics)
	})
}

func TestRunWithInput(t *testing.T) {
	t.Run("human against computer", func(t *testing.T) {
		input := make(chan game.Move, 3)
		input <- game.NewMove(8, 9)   // Illegal, skipped
		input <- game.NewMove(20, 16) // Not black's piece, skipped
		input <- game.NewMove(8, 12)
		close(input)

		players := []player.Player{player.NewHuman(), player.NewComputer(searcher.WithSeed(1))}
		table := gamemaster.NewTable()
		_, gameMetric, moveMetrics, err := New(table, players, WithInput(input)).Run()

		require.ErrorIs(t, err, ErrInputClosed)
		require.Equal(t, 2, gameMetric.TotalMoves, "The human's move and the computer's reply")
		require.Len(t, moveMetrics, 2)
		require.Equal(t, game.Black, moveMetrics[0].Player)
		require.Equal(t, 8, moveMetrics[0].Start)
		require.Equal(t, 12, moveMetrics[0].End)
		require.Equal(t, game.White, moveMetrics[1].Player)
		require.True(t, table.Game().IsP1Turn())
	})

	t.Run("network players", func(t *testing.T) {
		input := make(chan game.Move, 2)
		input <- game.NewMove(8, 12)
		input <- game.NewMove(21, 17)
		close(input)

		players := []player.Player{player.NewNetwork(), player.NewNetwork()}
		_, gameMetric, _, err := New(gamemaster.NewTable(), players, WithInput(input)).Run()
		require.ErrorIs(t, err, ErrInputClosed)
		require.Equal(t, 2, gameMetric.TotalMoves)
	})

	t.Run("missing input", func(t *testing.T) {
		require.Panics(t, func() {
			New(gamemaster.NewTable(), []player.Player{player.NewHuman(), player.NewComputer()})
		})
	})

	t.Run("wrong number of players", func(t *testing.T) {
		require.Panics(t, func() {
			New(gamemaster.NewTable(), []player.Player{player.NewComputer()})
		})
		require.Panics(t, func() {
			New(nil, computers(1, 2))
		})
	})
}
