package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boardWith builds an otherwise empty board.
func boardWith(pieces map[int]Piece) Board {
	var b Board
	for square, p := range pieces {
		b.Set(square, p)
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	for i := 0; i < 12; i++ {
		require.Equal(t, BlackMan, b.Get(i), "Square %d should hold a black man", i)
		require.Equal(t, WhiteMan, b.Get(31-i), "Square %d should hold a white man", 31-i)
	}
	for i := 12; i < 20; i++ {
		require.Equal(t, Empty, b.Get(i), "Square %d should be empty", i)
	}
	require.Equal(t, 12, b.Count(true))
	require.Equal(t, 12, b.Count(false))
}

func TestBoardGetSet(t *testing.T) {
	t.Run("storing every identity", func(t *testing.T) {
		var b Board
		for _, p := range []Piece{Empty, BlackMan, BlackKing, WhiteMan, WhiteKing} {
			for i := 0; i < NumSquares; i++ {
				b.Set(i, p)
				require.Equal(t, p, b.Get(i), "Square %d should hold %v", i, p)
			}
		}
	})

	t.Run("neighbouring squares are independent", func(t *testing.T) {
		var b Board
		b.Set(10, BlackKing)
		b.Set(11, WhiteMan)
		b.Set(10, Empty)
		require.Equal(t, Empty, b.Get(10))
		require.Equal(t, WhiteMan, b.Get(11))
	})

	t.Run("out of range", func(t *testing.T) {
		b := NewBoard()
		before := b
		b.Set(-1, BlackKing)
		b.Set(32, BlackKing)
		require.Equal(t, before, b, "Out of range sets should be ignored")
		require.Equal(t, Invalid, b.Get(-1))
		require.Equal(t, Invalid, b.Get(32))
	})

	t.Run("negative identity clears", func(t *testing.T) {
		b := NewBoard()
		b.Set(0, Invalid)
		require.Equal(t, Empty, b.Get(0))
	})

	t.Run("coordinates", func(t *testing.T) {
		var b Board
		b.SetAt(1, 0, WhiteKing)
		require.Equal(t, WhiteKing, b.Get(0))
		require.Equal(t, WhiteKing, b.GetAt(1, 0))
		require.Equal(t, Invalid, b.GetAt(0, 0), "Light tiles are not on the board")
	})
}

func TestBoardFind(t *testing.T) {
	b := boardWith(map[int]Piece{3: BlackKing, 17: WhiteMan, 1: BlackKing, 30: BlackMan})
	require.Equal(t, []int{1, 3}, b.Find(BlackKing))
	require.Equal(t, []int{17}, b.Find(WhiteMan))
	require.Empty(t, b.Find(WhiteKing))
	require.Equal(t, []int{1, 3, 30}, b.Pieces(true))
	require.Equal(t, []int{17}, b.Pieces(false))
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	c := b.Copy()
	c.Set(0, Empty)
	c.Set(15, WhiteKing)
	require.Equal(t, BlackMan, b.Get(0), "Mutating a copy should not change the source")
	require.Equal(t, Empty, b.Get(15), "Mutating a copy should not change the source")
	require.Equal(t, NewBoard(), b)
}

func TestCoordinates(t *testing.T) {
	t.Run("index to point to index", func(t *testing.T) {
		for i := 0; i < NumSquares; i++ {
			p := ToPoint(i)
			require.True(t, IsValidPoint(p), "Square %d should map to a dark tile", i)
			require.Equal(t, i, ToIndex(p.X, p.Y))
		}
	})

	t.Run("point to index to point", func(t *testing.T) {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				index := ToIndex(x, y)
				if (x+y)%2 == 0 {
					require.Equal(t, InvalidSquare, index, "(%d, %d) is a light tile", x, y)
					continue
				}
				require.Equal(t, Point{X: x, Y: y}, ToPoint(index))
			}
		}
	})

	t.Run("known squares", func(t *testing.T) {
		require.Equal(t, Point{X: 1, Y: 0}, ToPoint(0))
		require.Equal(t, Point{X: 3, Y: 0}, ToPoint(1))
		require.Equal(t, Point{X: 0, Y: 1}, ToPoint(4))
		require.Equal(t, Point{X: 6, Y: 7}, ToPoint(31))
	})

	t.Run("invalid", func(t *testing.T) {
		require.Equal(t, InvalidPoint, ToPoint(-1))
		require.Equal(t, InvalidPoint, ToPoint(32))
		require.Equal(t, InvalidSquare, ToIndex(-1, 0))
		require.Equal(t, InvalidSquare, ToIndex(8, 1))
		require.Equal(t, InvalidSquare, ToIndex(1, 8))
	})
}

func TestMiddle(t *testing.T) {
	require.Equal(t, 14, Middle(9, 18), "(3,2) to (5,4) jumps (4,3)")
	require.Equal(t, 14, Middle(18, 9))
	require.Equal(t, 13, Middle(9, 16), "(3,2) to (1,4) jumps (2,3)")
	require.Equal(t, InvalidSquare, Middle(9, 13), "Adjacent squares have no middle")
	require.Equal(t, InvalidSquare, Middle(0, 8), "(1,0) to (1,2) is not diagonal")
	require.Equal(t, InvalidSquare, Middle(0, 18), "Distance must be exactly 2")
	require.Equal(t, InvalidSquare, Middle(-1, 9))
}
