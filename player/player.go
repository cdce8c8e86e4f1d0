package player

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher"
	"fmt"
)

type Kind int

const (
	HumanKind Kind = iota
	ComputerKind
	NetworkKind
)

func (k Kind) String() string {
	switch k {
	case HumanKind:
		return "HumanPlayer"
	case ComputerKind:
		return "ComputerPlayer"
	case NetworkKind:
		return "NetworkPlayer"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Player is one side of a game. The set of players is closed: Human,
// Computer and Network are its only members.
type Player interface {
	Kind() Kind
	// IsHuman reports whether moves come from someone at this machine.
	IsHuman() bool
	// UpdateGame lets the player make its move on g, reporting whether it did.
	// Only the computer player moves on its own; human and network moves
	// arrive from outside.
	UpdateGame(g *game.Game) bool
	String() string
	player()
}

type Human struct{}

func NewHuman() *Human {
	return &Human{}
}

func (*Human) Kind() Kind                   { return HumanKind }
func (*Human) IsHuman() bool                { return true }
func (*Human) UpdateGame(g *game.Game) bool { return false }
func (h *Human) String() string             { return describe(h) }
func (*Human) player()                      {}

// Network is the remote side of a game relayed over the network.
type Network struct{}

func NewNetwork() *Network {
	return &Network{}
}

func (*Network) Kind() Kind                   { return NetworkKind }
func (*Network) IsHuman() bool                { return false }
func (*Network) UpdateGame(g *game.Game) bool { return false }
func (n *Network) String() string             { return describe(n) }
func (*Network) player()                      {}

// Computer moves with the heuristic searcher.
type Computer struct {
	heuristic *searcher.Heuristic
}

func NewComputer(options ...searcher.Option) *Computer {
	return &Computer{heuristic: searcher.NewHeuristic(options...)}
}

func (*Computer) Kind() Kind    { return ComputerKind }
func (*Computer) IsHuman() bool { return false }

// UpdateGame commits exactly one ply; while a skip chain is pending it is
// still the computer's turn and UpdateGame should be called again.
func (c *Computer) UpdateGame(g *game.Game) bool {
	return c.heuristic.UpdateGame(g)
}

// FindMove picks a move without committing it.
func (c *Computer) FindMove(g *game.Game) (game.Move, bool) {
	return c.heuristic.FindMove(g)
}

func (c *Computer) LastSearch() metrics.SearchMetric {
	return c.heuristic.LastSearch()
}

func (c *Computer) String() string { return describe(c) }
func (*Computer) player()          {}

func describe(p Player) string {
	return fmt.Sprintf("%v[isHuman=%t]", p.Kind(), p.IsHuman())
}
