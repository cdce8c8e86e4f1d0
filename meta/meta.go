// meta/meta.go
package meta

// MAX_TURNS caps the number of moves in a single match.
const MAX_TURNS = 300

// GAMES defines the number of games per experiment matchup.
const GAMES = 10

// SEED is the base seed for computer players when none is configured.
const SEED = 1

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments"

// Weights are the terms the computer player scores candidate moves with.
type Weights struct {
	Skip         float64 `mapstructure:"skip"`          // Per skip available this turn, times depth squared
	SkipOnNext   float64 `mapstructure:"skip_on_next"`  // Per skip set up for the next turn, times depth squared
	SafeSafe     float64 `mapstructure:"safe_safe"`     // Moved piece safe before and after
	SafeUnsafe   float64 `mapstructure:"safe_unsafe"`   // Moved piece safe before, unsafe after
	UnsafeSafe   float64 `mapstructure:"unsafe_safe"`   // Moved piece unsafe before, safe after
	UnsafeUnsafe float64 `mapstructure:"unsafe_unsafe"` // Moved piece unsafe before and after
	Safe         float64 `mapstructure:"safe"`          // Per safe piece of the mover
	Unsafe       float64 `mapstructure:"unsafe"`        // Per unsafe piece of the mover
	KingFactor   float64 `mapstructure:"king_factor"`   // Multiplier of king penalties
}

// DefaultWeights returns the tuned weights of the standard computer player.
func DefaultWeights() Weights {
	return Weights{
		Skip:         25,
		SkipOnNext:   20,
		SafeSafe:     5,
		SafeUnsafe:   -40,
		UnsafeSafe:   40,
		UnsafeUnsafe: -40,
		Safe:         3,
		Unsafe:       -5,
		KingFactor:   2,
	}
}

// IsZero reports whether no weight is set.
func (w Weights) IsZero() bool {
	return w == Weights{}
}
