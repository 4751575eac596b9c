package experiments

import (
	"time"

	"github.com/rs/zerolog/log"
)

type ThroughputResult struct {
	Goroutines     int
	Games          int
	Duration       time.Duration
	GamesPerSecond float64
}

// RunThroughputExperiment plays the same matchups with an increasing number
// of workers and reports how many games per second each setting sustains.
func RunThroughputExperiment(cfg Config, goroutines []int) ([]ThroughputResult, error) {
	cfg.Output = ""
	cfg.Observer = nil

	results := []ThroughputResult{}
	log.Info().Msg("starting throughput experiment...")
	for _, n := range goroutines {
		cfg.Goroutines = n
		report, err := Run(cfg)
		if err != nil {
			return nil, err
		}

		games := cfg.Games * len(cfg.Matchups)
		result := ThroughputResult{
			Goroutines: n,
			Games:      games,
			Duration:   report.Duration,
		}
		if report.Duration > 0 {
			result.GamesPerSecond = float64(games) / report.Duration.Seconds()
		}
		results = append(results, result)
		log.Info().Msgf("%d goroutines: %d games in %s (%.0f games/s)", n, games, report.Duration, result.GamesPerSecond)
	}
	log.Info().Msg("completed throughput experiment")
	return results, nil
}
