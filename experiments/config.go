package experiments

import (
	"checkers/experiments/metrics"
	"checkers/meta"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Games     int                   `mapstructure:"games"` // Per match up
	Seed      uint64                `mapstructure:"seed"`
	MaxTurns  int                   `mapstructure:"max_turns"`
	OutputDir string                `mapstructure:"output_dir"`
	Agents    []metrics.AgentConfig `mapstructure:"agents"`
}

// LoadConfig reads an experiment config file (any format viper supports) and
// CHECKERS_* environment overrides. An empty path uses defaults only. Agents
// without weights play with the default weights; no agents at all means
// DefaultAgents.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("games", meta.GAMES)
	v.SetDefault("seed", meta.SEED)
	v.SetDefault("max_turns", meta.MAX_TURNS)
	v.SetDefault("output_dir", meta.OUTPUT_DIR)
	v.SetEnvPrefix("checkers")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", cfg.Games)
	}
	if cfg.MaxTurns <= 0 {
		return nil, fmt.Errorf("max_turns must be positive, got %d", cfg.MaxTurns)
	}
	if len(cfg.Agents) == 0 {
		cfg.Agents = DefaultAgents()
	}
	ids := map[int]bool{}
	for i := range cfg.Agents {
		if ids[cfg.Agents[i].ID] {
			return nil, fmt.Errorf("duplicate agent id %d", cfg.Agents[i].ID)
		}
		ids[cfg.Agents[i].ID] = true
		if cfg.Agents[i].Weights.IsZero() {
			cfg.Agents[i].Weights = meta.DefaultWeights()
		}
	}
	return &cfg, nil
}

// DefaultAgents returns the baseline (ID 0) and a few weight variations.
func DefaultAgents() []metrics.AgentConfig {
	cautious := meta.DefaultWeights()
	cautious.SafeUnsafe *= 2
	cautious.UnsafeUnsafe *= 2

	greedy := meta.DefaultWeights()
	greedy.Skip *= 2
	greedy.SkipOnNext *= 2

	reckless := meta.DefaultWeights()
	reckless.Safe = 0
	reckless.Unsafe = 0
	reckless.SafeUnsafe = 0

	return []metrics.AgentConfig{
		{ID: 0, Weights: meta.DefaultWeights()},
		{ID: 1, Weights: cautious},
		{ID: 2, Weights: greedy},
		{ID: 3, Weights: reckless},
	}
}
