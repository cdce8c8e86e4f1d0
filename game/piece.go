package game

import "strconv"

// Piece is the 3-bit identity of a board square: bit 4 marks an occupied
// square, bit 2 a black piece and bit 1 a king.
type Piece int

const (
	Invalid   Piece = -1 // Query result for a square not on the board, never stored
	Empty     Piece = 0
	WhiteMan  Piece = 4*1 + 2*0 + 1*0
	WhiteKing Piece = 4*1 + 2*0 + 1*1
	BlackMan  Piece = 4*1 + 2*1 + 1*0
	BlackKing Piece = 4*1 + 2*1 + 1*1
)

func (p Piece) IsBlack() bool {
	return p == BlackMan || p == BlackKing
}

func (p Piece) IsWhite() bool {
	return p == WhiteMan || p == WhiteKing
}

func (p Piece) IsKing() bool {
	return p == BlackKing || p == WhiteKing
}

// IsPiece reports whether p is one of the four occupied identities.
func (p Piece) IsPiece() bool {
	return p.IsBlack() || p.IsWhite()
}

// Opposes reports whether p and other are pieces of different colors.
func (p Piece) Opposes(other Piece) bool {
	return (p.IsBlack() && other.IsWhite()) || (p.IsWhite() && other.IsBlack())
}

// Crowned returns the king of the same color, or p itself if it is not a man.
func (p Piece) Crowned() Piece {
	switch p {
	case BlackMan:
		return BlackKing
	case WhiteMan:
		return WhiteKing
	}
	return p
}

func (p Piece) String() string {
	switch p {
	case Empty:
		return "empty"
	case BlackMan:
		return "black man"
	case BlackKing:
		return "black king"
	case WhiteMan:
		return "white man"
	case WhiteKing:
		return "white king"
	case Invalid:
		return "invalid"
	}
	return "piece(" + strconv.Itoa(int(p)) + ")"
}

// parsePiece decodes a single serialized digit.
func parsePiece(c byte) (Piece, bool) {
	if c < '0' || c > '9' {
		return Invalid, false
	}
	p := Piece(c - '0')
	if p != Empty && !p.IsPiece() {
		return Invalid, false
	}
	return p, true
}
