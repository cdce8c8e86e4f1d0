package gamemaster

import (
	"checkers/game"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const startingState = "66666666666600000000444444444444" + "1" + "-1"

// lonelyBlack is a black man on 13 against a white man on 31: black moves
// 13->17 or 13->16, after which white still has moves.
const lonelyBlack = "00000000000006000000000000000004" + "1" + "-1"

type fixedMover struct {
	move game.Move
	ok   bool
}

func (m fixedMover) FindMove(g *game.Game) (game.Move, bool) {
	return m.move, m.ok
}

func TestTableInit(t *testing.T) {
	table := NewTable()
	require.NoError(t, table.Play(8, 12))

	state, getUpdate := table.Init()
	require.Equal(t, startingState, state, "Init should restart the game")
	require.NotEqual(t, uuid.Nil, table.ID(), "Table should have a session ID")

	_, ok := getUpdate()
	require.False(t, ok, "Stale updates should be drained")
}

func TestTablePlay(t *testing.T) {
	t.Run("legal move", func(t *testing.T) {
		table := NewTable()
		_, getUpdate := table.Init()

		require.NoError(t, table.Play(8, 12))

		u, ok := getUpdate()
		require.True(t, ok)
		require.Equal(t, game.Black, u.Player)
		require.Equal(t, game.NewMove(8, 12), u.Move)
		require.Equal(t, table.State(), u.State)
		require.Equal(t, table.Game().Hash(), u.Hash)
		require.Equal(t, game.White, table.Player())

		_, ok = getUpdate()
		require.False(t, ok, "Only one update per move")
	})

	t.Run("illegal move", func(t *testing.T) {
		table := NewTable()
		_, getUpdate := table.Init()

		err := table.Play(20, 16)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.ErrorIs(t, table.Play(8, 9), ErrIllegalMove)
		require.ErrorIs(t, table.Play(-1, 99), ErrIllegalMove)
		require.Equal(t, startingState, table.State(), "Illegal moves should not change the game")

		_, ok := getUpdate()
		require.False(t, ok)
	})

	t.Run("game over", func(t *testing.T) {
		// Black captures white's last piece
		table := NewTableFromState("00000000060000400000000000000000" + "1" + "-1")
		_, getUpdate := table.Init()
		table.SetState("00000000060000400000000000000000" + "1" + "-1")
		_, ok := getUpdate()
		require.True(t, ok, "Replacing the state should publish an update")

		require.NoError(t, table.Play(9, 18))
		require.True(t, table.IsGameOver())
		require.Equal(t, game.Black, table.Winner())

		u, ok := getUpdate()
		require.True(t, ok, "Expected a final update before the feed closes")
		require.Equal(t, game.NewMove(9, 18), u.Move)
		_, ok = getUpdate()
		require.False(t, ok)

		require.ErrorIs(t, table.Play(18, 22), ErrGameOver)
		_, err := table.Step(fixedMover{move: game.NewMove(18, 22), ok: true})
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestTableStep(t *testing.T) {
	t.Run("mover's choice", func(t *testing.T) {
		table := NewTableFromState(lonelyBlack)
		move, err := table.Step(fixedMover{move: game.NewMove(13, 17), ok: true})
		require.NoError(t, err)
		require.Equal(t, game.NewMove(13, 17), move)
		require.Equal(t, game.BlackMan, table.Game().Board().Get(17))
	})

	t.Run("illegal choice", func(t *testing.T) {
		table := NewTableFromState(lonelyBlack)
		_, err := table.Step(fixedMover{move: game.NewMove(13, 9), ok: true})
		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, lonelyBlack, table.State())
	})

	t.Run("no choice", func(t *testing.T) {
		table := NewTableFromState(lonelyBlack)
		_, err := table.Step(fixedMover{})
		require.ErrorIs(t, err, ErrIllegalMove)
	})
}

func TestTableFullFeedKeepsFinalUpdate(t *testing.T) {
	const capture = "00000000060000400000000000000000" + "1" + "-1"
	table := NewTable()
	_, getUpdate := table.Init()
	for i := 0; i < 2*updateBuffer; i++ {
		table.SetState(capture)
	}
	require.NoError(t, table.Play(9, 18))

	var last Update
	count := 0
	for {
		u, ok := getUpdate()
		if !ok {
			break
		}
		last = u
		count++
	}
	require.Equal(t, updateBuffer, count, "Nobody read, the feed stays full")
	require.Equal(t, game.NewMove(9, 18), last.Move, "The game-over update should not be dropped")
	require.Equal(t, table.State(), last.State)
}

func TestTableSetStateIf(t *testing.T) {
	table := NewTable()
	require.False(t, table.SetStateIf(lonelyBlack, startingState))
	require.Equal(t, startingState, table.State())

	require.True(t, table.SetStateIf(startingState, lonelyBlack))
	require.Equal(t, lonelyBlack, table.State())
	require.ElementsMatch(t, []int{16, 17}, table.Destinations(13))
	require.Empty(t, table.Destinations(31), "Not white's turn")
}

func TestTableReopensAfterGameOver(t *testing.T) {
	table := NewTableFromState("00000000060000400000000000000000" + "1" + "-1")
	_, getUpdate := table.Init()
	table.SetState("00000000060000400000000000000000" + "1" + "-1")
	require.NoError(t, table.Play(9, 18))
	for {
		if _, ok := getUpdate(); !ok {
			break
		}
	}

	table.SetState(startingState)
	u, ok := getUpdate()
	require.True(t, ok, "A new game should reopen the feed")
	require.Equal(t, startingState, u.State)
	require.NoError(t, table.Play(8, 12))
}

func TestTableConcurrentAccess(t *testing.T) {
	table := NewTable()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = table.Play(8, 12)
				_ = table.Destinations(8)
				_ = table.State()
			}
		}()
	}
	wg.Wait()

	// Exactly one goroutine made the opening move
	state := table.State()
	require.Equal(t, byte('6'), state[12])
	require.Equal(t, byte('0'), state[32])
}
