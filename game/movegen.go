package game

// Moves returns the end squares of the simple (one step) moves available to
// the piece on start. Out of range or empty squares have none.
func Moves(b Board, start int) []int {
	if !IsValidIndex(start) {
		return nil
	}
	var ends []int
	for _, p := range reach(ToPoint(start), b.Get(start), 1) {
		if b.GetAt(p.X, p.Y) == Empty {
			ends = append(ends, p.Index())
		}
	}
	return ends
}

// Skips returns the end squares of the captures available to the piece on
// start. The jumped piece is not removed.
func Skips(b Board, start int) []int {
	if !IsValidIndex(start) {
		return nil
	}
	var ends []int
	for _, p := range reach(ToPoint(start), b.Get(start), 2) {
		end := p.Index()
		if IsValidSkip(b, start, end) {
			ends = append(ends, end)
		}
	}
	return ends
}

// IsValidSkip reports whether the piece on start can capture by landing on
// end: end must be empty and the square between must hold an opposing piece.
// Direction is not checked.
func IsValidSkip(b Board, start, end int) bool {
	if b.Get(end) != Empty {
		return false
	}
	id := b.Get(start)
	if !id.IsPiece() {
		return false
	}
	return id.Opposes(b.Get(Middle(start, end)))
}

// HasSkips reports whether any black (or white) piece can capture.
func HasSkips(b Board, black bool) bool {
	for _, square := range b.Pieces(black) {
		if len(Skips(b, square)) > 0 {
			return true
		}
	}
	return false
}

// reach lists the diagonal points delta steps away that a piece may travel
// to: men only forward, kings in all four directions. Points may be off the board.
func reach(from Point, p Piece, delta int) []Point {
	var points []Point
	if p.IsKing() || forward(p) > 0 {
		points = append(points,
			Point{X: from.X + delta, Y: from.Y + delta},
			Point{X: from.X - delta, Y: from.Y + delta})
	}
	if p.IsKing() || forward(p) < 0 {
		points = append(points,
			Point{X: from.X + delta, Y: from.Y - delta},
			Point{X: from.X - delta, Y: from.Y - delta})
	}
	return points
}
