package game

// Black starts on the top rows and moves down the board (increasing y);
// white starts on the bottom rows and moves up.

// forward returns the y direction a man of the given piece travels in, or 0
// for kings, which may travel both ways.
func forward(p Piece) int {
	switch p {
	case BlackMan:
		return 1
	case WhiteMan:
		return -1
	}
	return 0
}

// promotionRow is the back row of the opponent, where a man is crowned.
func promotionRow(p Piece) int {
	if p.IsBlack() {
		return rows - 1
	}
	return 0
}

// promotes reports whether a man of identity p landing on square end is crowned.
func promotes(p Piece, end int) bool {
	if p.IsKing() || !p.IsPiece() {
		return false
	}
	return ToPoint(end).Y == promotionRow(p)
}

// belongsTo reports whether p is a piece of the player to move.
func belongsTo(p Piece, blackTurn bool) bool {
	if blackTurn {
		return p.IsBlack()
	}
	return p.IsWhite()
}
