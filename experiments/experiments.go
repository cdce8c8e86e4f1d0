package experiments

import (
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/gamemaster"
	"checkers/player"
	"checkers/searcher"
	"fmt"

	"github.com/rs/zerolog/log"
)

// RunBaselineExperiment pairs every configured agent against the baseline,
// the first agent.
func RunBaselineExperiment(cfg *Config) (string, error) {
	baseline := cfg.Agents[0]
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range cfg.Agents[1:] {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}
	return Run(cfg, "baseline", cfg.Agents, matchUps)
}

// RunSelfPlayExperiment pairs every configured agent against itself, for the
// game length and first mover advantage at equal strength.
func RunSelfPlayExperiment(cfg *Config) (string, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range cfg.Agents {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}
	return Run(cfg, "self_play", cfg.Agents, matchUps)
}

// Run plays cfg.Games games per matchup, alternating which agent plays black,
// and stores the agent configs, game records and move records as CSV files.
// It returns the directory the records were written to.
func Run(cfg *Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		if len(matchup) != 2 {
			return "", fmt.Errorf("matchup %d has %d agents, need 2", mi+1, len(matchup))
		}

		log.Info().Msgf("starting matchup %d of %d between agent1=%d and agent2=%d...", mi+1, len(matchUps), matchup[0].ID, matchup[1].ID)

		for i := 0; i < cfg.Games; i++ {
			black, white := matchup[0], matchup[1]
			if i%2 == 1 {
				black, white = white, black
			}
			seed := cfg.Seed + uint64(count)

			winner, gameMetric, moveMetrics, err := runGame(black, white, seed, cfg.MaxTurns)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     black.ID,
				Agent2:     white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one game between two computer agents on a fresh table.
func runGame(black, white metrics.AgentConfig, seed uint64, maxTurns int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	players := []player.Player{
		createComputer(black, seed),
		createComputer(white, seed+1),
	}
	e := engine.New(gamemaster.NewTable(), players, engine.WithMaxTurns(maxTurns))
	return e.Run()
}

func createComputer(config metrics.AgentConfig, seed uint64) *player.Computer {
	if config.Seed != 0 {
		seed = config.Seed
	}
	return player.NewComputer(
		searcher.WithSeed(seed),
		searcher.WithWeights(config.Weights),
		searcher.WithMetrics(),
	)
}
