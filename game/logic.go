package game

// IsValidMove reports whether moving start to end is legal in g under the
// rules of checkers: turn ownership, direction, forced capture and, while a
// skip chain is pending, continuation from the chain's square only.
func IsValidMove(g *Game, start, end int) bool {
	if g == nil {
		return false
	}
	return ValidMove(g.board, g.blackTurn, start, end, g.skipIndex)
}

// ValidMove is IsValidMove over an explicit position. skipIndex is the square
// a pending skip chain must continue from, or InvalidSquare.
func ValidMove(b Board, blackTurn bool, start, end, skipIndex int) bool {
	if !IsValidIndex(start) || !IsValidIndex(end) || start == end {
		return false
	}
	if IsValidIndex(skipIndex) && (skipIndex != start || Middle(start, end) == InvalidSquare) {
		return false
	}
	return validateIDs(b, blackTurn, start, end) && validateDistance(b, blackTurn, start, end)
}

// validateIDs checks the identities on the start, end and (for skips) middle squares.
func validateIDs(b Board, blackTurn bool, start, end int) bool {
	if b.Get(end) != Empty {
		return false
	}
	if !belongsTo(b.Get(start), blackTurn) {
		return false
	}
	if mid := Middle(start, end); mid != InvalidSquare {
		return belongsTo(b.Get(mid), !blackTurn)
	}
	return true
}

// validateDistance checks the move is diagonal with magnitude 1 or 2 in an
// allowed direction, and that a simple move is only made when the player has
// no capture anywhere on the board.
func validateDistance(b Board, blackTurn bool, start, end int) bool {
	from, to := ToPoint(start), ToPoint(end)
	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) != abs(dy) || abs(dx) > 2 || dx == 0 {
		return false
	}
	if f := forward(b.Get(start)); f != 0 && dy*f < 0 {
		return false
	}
	if abs(dx) == 1 && HasSkips(b, blackTurn) {
		return false
	}
	return true
}

// IsSafe reports whether the piece on square cannot be captured by the
// opponent on their next move. Empty and off-board squares are safe.
func IsSafe(b Board, square int) bool {
	target := b.Get(square)
	if !target.IsPiece() {
		return true
	}
	at := ToPoint(square)
	for _, p := range reach(at, BlackKing, 1) {
		attacker := b.GetAt(p.X, p.Y)
		if !attacker.Opposes(target) {
			continue
		}
		// The attacker jumps from p over square, travelling by (dx, dy).
		dx, dy := at.X-p.X, at.Y-p.Y
		if f := forward(attacker); f != 0 && dy*f < 0 {
			continue
		}
		if IsValidSkip(b, p.Index(), ToIndex(at.X+dx, at.Y+dy)) {
			return false
		}
	}
	return true
}
