package main

import (
	"checkers/experiments"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Experiment config file (defaults only if empty)")
	experiment := flag.String("experiment", "baseline", "Experiment to run: baseline or selfplay")
	debug := flag.Bool("debug", false, "Log every weighed candidate")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := experiments.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var dir string
	switch *experiment {
	case "baseline":
		dir, err = experiments.RunBaselineExperiment(cfg)
	case "selfplay":
		dir, err = experiments.RunSelfPlayExperiment(cfg)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
	log.Info().Msgf("results in %s", dir)
}
