package searcher

import "checkers/game"

// SkipDepth returns the length of the longest chain of skips the piece on
// square can make in one turn on board b. Crowning ends a chain. b is not
// modified.
func SkipDepth(b game.Board, square int) int {
	p := b.Get(square)
	if !p.IsPiece() {
		return 0
	}

	depth := 0
	for _, end := range game.Skips(b, square) {
		g := game.NewGameFromBoard(b, p.IsBlack(), square)
		if !g.Move(square, end) {
			continue
		}
		chain := 1
		if g.SkipIndex() == end {
			chain += SkipDepth(g.Board(), end)
		}
		depth = max(depth, chain)
	}
	return depth
}
