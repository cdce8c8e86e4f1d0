package game

import (
	"strconv"
	"strings"
)

// State encodes the game as 32 piece digits in square order, a turn digit
// ('1' for black) and the pending skip square (-1 if none).
func (g *Game) State() string {
	var sb strings.Builder
	sb.Grow(NumSquares + 3)
	for i := 0; i < NumSquares; i++ {
		sb.WriteString(strconv.Itoa(int(g.board.Get(i))))
	}
	if g.blackTurn {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.Itoa(g.skipIndex))
	return sb.String()
}

// SetState restarts the game and then loads a string produced by State.
// Parsing never fails: unreadable digits leave the starting piece in place,
// a missing turn digit leaves black to move and a missing or unreadable skip
// square means no pending skip.
func (g *Game) SetState(state string) {
	g.Restart()
	if state == "" {
		return
	}

	n := len(state)
	for i := 0; i < NumSquares && i < n; i++ {
		if p, ok := parsePiece(state[i]); ok {
			g.board.Set(i, p)
		}
	}

	if n > NumSquares {
		g.blackTurn = state[NumSquares] == '1'
	}
	if n > NumSquares+1 {
		skip, err := strconv.Atoi(state[NumSquares+1:])
		if err != nil || !IsValidIndex(skip) {
			skip = NoSkip
		}
		g.skipIndex = skip
	}
}
