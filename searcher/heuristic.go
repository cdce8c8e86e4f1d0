package searcher

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/meta"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(h *Heuristic)

// Heuristic picks a move for the player to move by scoring every candidate
// one ply deep and breaking ties at random. It is not safe for concurrent use.
type Heuristic struct {
	weights meta.Weights
	rng     *rand.Rand
	metrics metrics.Collector
	last    metrics.SearchMetric
}

// WithSeed makes tie-breaks reproducible.
func WithSeed(seed uint64) Option {
	return func(h *Heuristic) {
		h.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(h *Heuristic) {
		if rng != nil {
			h.rng = rng
		}
	}
}

func WithWeights(weights meta.Weights) Option {
	return func(h *Heuristic) {
		if !weights.IsZero() {
			h.weights = weights
		}
	}
}

func WithMetrics() Option {
	return func(h *Heuristic) {
		h.metrics = metrics.NewCollector()
	}
}

func NewHeuristic(options ...Option) *Heuristic {
	h := &Heuristic{ // Default values
		weights: meta.DefaultWeights(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(h)
	}
	if h.rng == nil {
		h.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return h
}

func (h *Heuristic) Weights() meta.Weights {
	return h.weights
}

// LastSearch returns the metrics of the latest FindMove call. It is empty
// unless the heuristic was built WithMetrics.
func (h *Heuristic) LastSearch() metrics.SearchMetric {
	return h.last
}

// UpdateGame commits one move chosen by FindMove to g. It does nothing and
// returns false if the game is over. A pending skip chain is not exhausted:
// the caller invokes UpdateGame again while it is still the same player's turn.
func (h *Heuristic) UpdateGame(g *game.Game) bool {
	m, ok := h.FindMove(g)
	if !ok {
		return false
	}
	return g.Move(m.Start, m.End)
}

// FindMove returns the best weighted candidate for the player to move,
// chosen uniformly at random among equally weighted ones. g is not modified.
func (h *Heuristic) FindMove(g *game.Game) (game.Move, bool) {
	if g == nil || g.IsGameOver() {
		return game.Move{}, false
	}

	h.metrics.Start()
	best := game.WeightInvalid
	var ties []game.Move
	for _, m := range h.Weigh(g) {
		log.Debug().Msgf("%s candidate %v", g.Player(), m)
		if m.Weight == game.WeightInvalid {
			continue
		}
		h.metrics.AddCandidate(m.Weight)
		switch {
		case m.Weight > best:
			best = m.Weight
			ties = append(ties[:0], m)
		case m.Weight == best:
			ties = append(ties, m)
		}
	}
	h.metrics.SetTies(len(ties))
	h.last = h.metrics.Complete()

	if len(ties) == 0 {
		return game.Move{}, false
	}
	return ties[h.rng.Intn(len(ties))], true
}

// Weigh returns every candidate move for the player to move with its weight.
func (h *Heuristic) Weigh(g *game.Game) []game.Move {
	moves := h.Candidates(g)
	for i := range moves {
		moves[i].Weight = h.MoveWeight(g, moves[i])
	}
	return moves
}

// Candidates lists the moves the player to move may consider: the skips of a
// pending chain, else every skip (each carrying the skip weight), else every
// simple move.
func (h *Heuristic) Candidates(g *game.Game) []game.Move {
	b := g.Board()
	if skip := g.SkipIndex(); game.IsValidIndex(skip) {
		var moves []game.Move
		for _, end := range game.Skips(b, skip) {
			moves = append(moves, game.NewMove(skip, end))
		}
		return moves
	}

	pieces := b.Pieces(g.IsP1Turn())
	var moves []game.Move
	for _, start := range pieces {
		for _, end := range game.Skips(b, start) {
			m := game.NewMove(start, end)
			m.Weight = h.weights.Skip
			moves = append(moves, m)
		}
	}
	if len(moves) > 0 {
		return moves
	}
	for _, start := range pieces {
		for _, end := range game.Moves(b, start) {
			moves = append(moves, game.NewMove(start, end))
		}
	}
	return moves
}

// MoveWeight scores m on a copy of g, adding to the weight m already carries.
// A move g rejects weighs game.WeightInvalid.
func (h *Heuristic) MoveWeight(g *game.Game, m game.Move) float64 {
	sim := g.Copy()
	before := sim.Board()
	black := sim.IsP1Turn()
	safeBefore := game.IsSafe(before, m.Start)
	weight := m.Weight + h.safetyWeight(before, black)

	if !sim.Move(m.Start, m.End) {
		return game.WeightInvalid
	}
	after := sim.Board()
	changed := sim.IsP1Turn() != black
	depth := float64(SkipDepth(after, m.End))

	safeAfter := true
	if changed {
		// Skips the moved piece sets up for its next turn
		safeAfter = game.IsSafe(after, m.End)
		if safeAfter {
			weight += h.weights.SkipOnNext * depth * depth
		} else {
			weight += h.weights.SkipOnNext
		}
	} else {
		weight += h.weights.Skip * depth * depth
	}

	switch {
	case safeBefore && safeAfter:
		weight += h.weights.SafeSafe
	case !safeBefore && safeAfter:
		weight += h.weights.UnsafeSafe
	case safeBefore && !safeAfter:
		weight += h.weights.SafeUnsafe * h.kingFactor(after.Get(m.End))
	default:
		weight += h.weights.UnsafeUnsafe
	}

	return weight + h.safetyWeight(after, black)
}

// safetyWeight sums the safe and unsafe terms over every piece of a side.
func (h *Heuristic) safetyWeight(b game.Board, black bool) float64 {
	weight := 0.0
	for _, square := range b.Pieces(black) {
		if game.IsSafe(b, square) {
			weight += h.weights.Safe
		} else {
			weight += h.weights.Unsafe * h.kingFactor(b.Get(square))
		}
	}
	return weight
}

func (h *Heuristic) kingFactor(p game.Piece) float64 {
	if p.IsKing() {
		return h.weights.KingFactor
	}
	return 1
}
