package game

import (
	"fmt"
	"math"
)

// WeightInvalid is the weight of a move that turned out to be illegal.
var WeightInvalid = math.Inf(-1)

// Move is a candidate move from one square to another together with the
// heuristic weight accumulated for it.
type Move struct {
	Start  int
	End    int
	Weight float64
}

func NewMove(start, end int) Move {
	return Move{Start: start, End: end}
}

// IsSkip reports whether the move jumps over a square.
func (m Move) IsSkip() bool {
	return Middle(m.Start, m.End) != InvalidSquare
}

// SameSquares reports whether both moves travel between the same squares,
// ignoring weights.
func (m Move) SameSquares(other Move) bool {
	return m.Start == other.Start && m.End == other.End
}

func (m Move) String() string {
	return fmt.Sprintf("%d->%d (%.1f)", m.Start, m.End, m.Weight)
}
