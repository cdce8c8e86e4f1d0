package gamemaster

import (
	"checkers/game"
	"checkers/utils"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const updateBuffer = 64

// Table owns the single live game of a session. Every read and write goes
// through its lock, so a human input path and an automated player may share it.
type Table struct {
	mu       sync.Mutex
	id       uuid.UUID
	game     *game.Game
	updateCh chan Update
	closed   bool
}

func NewTable() *Table {
	return &Table{
		id:       uuid.New(),
		game:     game.NewGame(),
		updateCh: make(chan Update, updateBuffer),
	}
}

// NewTableFromState opens a table on a serialized game.
func NewTableFromState(state string) *Table {
	t := NewTable()
	t.game.SetState(state)
	return t
}

// ID identifies the session, e.g. in experiment records.
func (t *Table) ID() uuid.UUID {
	return t.id
}

// Init restarts the game and returns its state along with a getter for the
// updates that follow.
func (t *Table) Init() (string, UpdateGetter) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.game.Restart()
	t.reopen()
	return t.game.State(), t.next
}

func (t *Table) next() (Update, bool) {
	t.mu.Lock()
	ch := t.updateCh
	t.mu.Unlock()

	select {
	case u, ok := <-ch:
		return u, ok
	default:
		return Update{}, false
	}
}

// Play makes the move from start to end for the player to move.
func (t *Table) Play(start, end int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.play(game.NewMove(start, end))
}

// Step lets m choose and make the next move, returning the move made.
func (t *Table) Step(m Mover) (game.Move, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.game.IsGameOver() {
		return game.Move{}, ErrGameOver
	}
	move, ok := m.FindMove(t.game.Copy())
	if !ok {
		return game.Move{}, fmt.Errorf("%w: no move found for %s", ErrIllegalMove, t.game.Player())
	}
	return move, t.play(move)
}

func (t *Table) play(move game.Move) error {
	if t.game.IsGameOver() {
		return ErrGameOver
	}

	move = game.NewMove(move.Start, move.End)
	if utils.FindIndex(t.game.LegalMoves(), move) < 0 {
		return fmt.Errorf("%w: %d->%d for %s", ErrIllegalMove, move.Start, move.End, t.game.Player())
	}

	mover := t.game.Player()
	if !t.game.Move(move.Start, move.End) {
		return fmt.Errorf("%w: %d->%d rejected", ErrIllegalMove, move.Start, move.End)
	}
	t.publish(Update{Player: mover, Move: move})
	return nil
}

// State returns the serialized game.
func (t *Table) State() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.State()
}

// SetState replaces the game with a serialized one.
func (t *Table) SetState(state string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.setState(state)
}

// SetStateIf replaces the game only if its current serialization is expected,
// reporting whether it did.
func (t *Table) SetStateIf(expected, state string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.game.State() != expected {
		return false
	}
	t.setState(state)
	return true
}

func (t *Table) setState(state string) {
	t.game.SetState(state)
	if t.closed {
		t.reopen()
	}
	t.publish(Update{})
}

// Game returns a copy of the live game.
func (t *Table) Game() *game.Game {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.Copy()
}

// Destinations returns the squares the piece on square may move to now.
func (t *Table) Destinations(square int) []int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.Destinations(square)
}

func (t *Table) IsGameOver() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.IsGameOver()
}

// Winner returns the winning color, or "" while the game goes on.
func (t *Table) Winner() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.Winner()
}

// Player returns the color to move.
func (t *Table) Player() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.game.Player()
}

// publish sends an update for the current game and closes the feed once the
// game is over. Callers hold the lock.
func (t *Table) publish(u Update) {
	if t.closed {
		return
	}
	u.State = t.game.State()
	u.Hash = t.game.Hash()
	over := t.game.IsGameOver()
	if !t.send(u) && over {
		// The final position displaces the oldest pending update
		select {
		case stale := <-t.updateCh:
			log.Debug().Msgf("table %s: update feed full, dropping update %+v", t.id, stale.Move)
		default:
		}
		t.send(u)
	}
	if over {
		close(t.updateCh)
		t.closed = true
	}
}

func (t *Table) send(u Update) bool {
	select {
	case t.updateCh <- u:
		return true
	default:
		if !t.game.IsGameOver() {
			log.Debug().Msgf("table %s: update feed full, dropping update %+v", t.id, u.Move)
		}
		return false
	}
}

func (t *Table) reopen() {
	if !t.closed {
		// Drain stale updates
		for {
			select {
			case <-t.updateCh:
			default:
				return
			}
		}
	}
	t.updateCh = make(chan Update, updateBuffer)
	t.closed = false
}
