package game

import (
	"fmt"
	"strings"
)

const (
	NumSquares    = 32
	InvalidSquare = -1
	rows          = 8
	menPerSide    = 12
)

// Point is an (x, y) coordinate on the 8x8 board, (0, 0) being the top-left
// light tile.
type Point struct {
	X, Y int
}

// InvalidPoint is the coordinate of any square index that is not on the board.
var InvalidPoint = Point{X: -1, Y: -1}

// Board holds the 32 dark squares of a checker board packed into three words,
// one bit of each square's 3-bit Piece code per word. Board is a value type:
// assigning it copies the whole position.
type Board struct {
	state [3]uint32
}

// NewBoard returns the starting position: black men on squares 0-11 and white
// men on squares 20-31.
func NewBoard() Board {
	var b Board
	for i := 0; i < menPerSide; i++ {
		b.Set(i, BlackMan)
		b.Set(NumSquares-1-i, WhiteMan)
	}
	return b
}

// Copy returns an independent duplicate of the board.
func (b Board) Copy() Board {
	return b
}

// Get returns the piece on square index, or Invalid if the index is out of range.
func (b Board) Get(index int) Piece {
	if !IsValidIndex(index) {
		return Invalid
	}
	id := 0
	for i := range b.state {
		id = id<<1 | int(b.state[i]>>uint(index)&1)
	}
	return Piece(id)
}

// GetAt returns the piece at (x, y), or Invalid for a light tile or off-board point.
func (b Board) GetAt(x, y int) Piece {
	return b.Get(ToIndex(x, y))
}

// Set places p on square index. Out of range indices are ignored and negative
// identities clear the square.
func (b *Board) Set(index int, p Piece) {
	if !IsValidIndex(index) {
		return
	}
	if p < 0 {
		p = Empty
	}
	for i := range b.state {
		bit := uint32(1) << uint(index)
		if int(p)&(1<<uint(len(b.state)-i-1)) != 0 {
			b.state[i] |= bit
		} else {
			b.state[i] &^= bit
		}
	}
}

func (b *Board) SetAt(x, y int, p Piece) {
	b.Set(ToIndex(x, y), p)
}

// Find returns the squares holding p in increasing index order.
func (b Board) Find(p Piece) []int {
	var squares []int
	for i := 0; i < NumSquares; i++ {
		if b.Get(i) == p {
			squares = append(squares, i)
		}
	}
	return squares
}

// Pieces returns the squares occupied by black (or white) men and kings in
// increasing index order.
func (b Board) Pieces(black bool) []int {
	var squares []int
	for i := 0; i < NumSquares; i++ {
		p := b.Get(i)
		if (black && p.IsBlack()) || (!black && p.IsWhite()) {
			squares = append(squares, i)
		}
	}
	return squares
}

// Count returns how many pieces black (or white) has left.
func (b Board) Count(black bool) int {
	return len(b.Pieces(black))
}

func (b Board) String() string {
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < rows; x++ {
			switch b.GetAt(x, y) {
			case BlackMan:
				sb.WriteByte('b')
			case BlackKing:
				sb.WriteByte('B')
			case WhiteMan:
				sb.WriteByte('w')
			case WhiteKing:
				sb.WriteByte('W')
			case Empty:
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
		if y < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// GoString prints the raw square codes, handy in test failures.
func (b Board) GoString() string {
	codes := make([]string, NumSquares)
	for i := range codes {
		codes[i] = fmt.Sprint(int(b.Get(i)))
	}
	return "game.Board[" + strings.Join(codes, ", ") + "]"
}

func IsValidIndex(index int) bool {
	return index >= 0 && index < NumSquares
}

// IsValidPoint reports whether p lies on the board and on a dark tile.
func IsValidPoint(p Point) bool {
	if p.X < 0 || p.X >= rows || p.Y < 0 || p.Y >= rows {
		return false
	}
	return p.X%2 != p.Y%2
}

// ToPoint converts a square index to its coordinate: index 0 is (1, 0),
// index 1 is (3, 0), ... index 31 is (6, 7).
func ToPoint(index int) Point {
	if !IsValidIndex(index) {
		return InvalidPoint
	}
	y := index / 4
	x := 2*(index%4) + (y+1)%2
	return Point{X: x, Y: y}
}

// ToIndex converts a coordinate to a square index, or InvalidSquare for a
// light tile or an off-board point.
func ToIndex(x, y int) int {
	if !IsValidPoint(Point{X: x, Y: y}) {
		return InvalidSquare
	}
	return y*4 + x/2
}

func (p Point) Index() int {
	return ToIndex(p.X, p.Y)
}

// Middle returns the square between two squares that are exactly two
// diagonal steps apart, or InvalidSquare otherwise.
func Middle(index1, index2 int) int {
	p1, p2 := ToPoint(index1), ToPoint(index2)
	if p1 == InvalidPoint || p2 == InvalidPoint {
		return InvalidSquare
	}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	if abs(dx) != 2 || abs(dy) != 2 {
		return InvalidSquare
	}
	return ToIndex(p1.X+dx/2, p1.Y+dy/2)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
