package experiments

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"battleship/engine"
	"battleship/experiments/metrics"
	"battleship/player"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MatchupResult aggregates the games of one matchup. Index 0 is the player
// that always fires first.
type MatchupResult struct {
	ID         int
	Matchup    Matchup
	Games      int
	Wins       [2]int
	TotalTurns int
	WinShots   [2]int // sum of shots fired by the winner, per side
}

func (r MatchupResult) WinRate(side int) float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins[side]) / float64(r.Games)
}

func (r MatchupResult) AvgTurns() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalTurns) / float64(r.Games)
}

// AvgShotsToWin is the mean number of shots a side needed in the games it won.
func (r MatchupResult) AvgShotsToWin(side int) float64 {
	if r.Wins[side] == 0 {
		return 0
	}
	return float64(r.WinShots[side]) / float64(r.Wins[side])
}

type Report struct {
	Name      string
	Seed      uint64
	Duration  time.Duration
	Matchups  []MatchupResult
	RecordDir string // empty when no records were written
	// Final holds both players of the last game played, for display
	Final [2]player.Player
}

type task struct {
	id      int // global game id, 0-based
	matchup int
	seed    uint64
	k1, k2  player.Kind
}

type outcome struct {
	winner      int
	turns       int
	winnerShots int
	gameMetric  metrics.GameMetric
	shotMetrics []metrics.ShotMetric
}

// Run plays every matchup of cfg on a pool of cfg.Goroutines workers.
// Game seeds are drawn from cfg.Seed before any game starts, so a fixed seed
// gives the same results for any number of workers.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	record := cfg.Output != ""

	master := rand.New(rand.NewSource(seed))
	tasks := make(chan task, len(cfg.Matchups)*cfg.Games)
	for mi, m := range cfg.Matchups {
		k1, k2, err := m.Kinds()
		if err != nil {
			return nil, err
		}
		for i := 0; i < cfg.Games; i++ {
			tasks <- task{id: mi*cfg.Games + i, matchup: mi, seed: master.Uint64(), k1: k1, k2: k2}
		}
	}
	close(tasks)

	log.Info().Msgf("starting %s experiment with %d matchups of %d games (seed %d)...", cfg.Name, len(cfg.Matchups), cfg.Games, seed)
	start := time.Now()

	outcomes := make([]outcome, len(cfg.Matchups)*cfg.Games)
	seeds := make([]uint64, len(outcomes))
	// Only the players of the last game outlive their game
	last := len(outcomes) - 1
	var final [2]player.Player
	var completed atomic.Int64
	var failed atomic.Bool
	var firstErr error
	var errOnce sync.Once

	var wg sync.WaitGroup
	for i := 0; i < cfg.Goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for t := range tasks {
				if failed.Load() {
					continue
				}
				out, players, err := playGame(t, cfg.Observer, record)
				if err != nil {
					failed.Store(true)
					errOnce.Do(func() { firstErr = fmt.Errorf("game %d (%s): %w", t.id+1, cfg.Matchups[t.matchup], err) })
					continue
				}
				outcomes[t.id] = out
				seeds[t.id] = t.seed
				if t.id == last {
					final = players
				}
				if n := completed.Add(1); n%int64(cfg.Games) == 0 {
					log.Debug().Msgf("completed %d of %d games", n, len(outcomes))
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	report := &Report{
		Name:     cfg.Name,
		Seed:     seed,
		Duration: time.Since(start),
		Final:    final,
	}
	for mi, m := range cfg.Matchups {
		result := MatchupResult{ID: mi + 1, Matchup: m}
		for _, out := range outcomes[mi*cfg.Games : (mi+1)*cfg.Games] {
			result.Games++
			result.Wins[out.winner]++
			result.WinShots[out.winner] += out.winnerShots
			result.TotalTurns += out.turns
		}
		report.Matchups = append(report.Matchups, result)
		log.Info().Msgf("completed matchup %d of %d (%s): %d-%d, %.1f turns per game", mi+1, len(cfg.Matchups), m, result.Wins[0], result.Wins[1], result.AvgTurns())
	}
	log.Info().Msgf("completed %s experiment in %s", cfg.Name, report.Duration)

	if record {
		cfg.Seed = seed
		dir, err := writeRecords(cfg, outcomes, seeds)
		if err != nil {
			return nil, err
		}
		report.RecordDir = dir
	}

	return report, nil
}

func playGame(t task, observer engine.Observer, record bool) (outcome, [2]player.Player, error) {
	p1, err := player.New(t.k1, "P1 "+t.k1.String(), player.WithSeed(t.seed))
	if err != nil {
		return outcome{}, [2]player.Player{}, err
	}
	// A distinct stream so mirrored matchups do not play identical games
	p2, err := player.New(t.k2, "P2 "+t.k2.String(), player.WithSeed(t.seed^0x9e3779b97f4a7c15))
	if err != nil {
		return outcome{}, [2]player.Player{}, err
	}

	options := []engine.Option{}
	if observer != nil {
		options = append(options, engine.WithObserver(observer))
	}
	if record {
		options = append(options, engine.WithMetrics())
	}
	g := engine.NewGame(p1, p2, options...)

	winner, err := g.Play()
	if err != nil {
		return outcome{}, [2]player.Player{}, err
	}

	out := outcome{
		turns:       g.TurnCount(),
		winnerShots: winner.ShotsFired(),
	}
	if winner == p2 {
		out.winner = 1
	}
	out.gameMetric, out.shotMetrics = g.Metrics()
	return out, [2]player.Player{p1, p2}, nil
}

func writeRecords(cfg Config, outcomes []outcome, seeds []uint64) (string, error) {
	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	setup, err := cfg.Marshal()
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := writer.WriteSetup("config.yaml", setup); err != nil {
		return "", err
	}

	configs := make([]metrics.MatchupConfig, len(cfg.Matchups))
	for i, m := range cfg.Matchups {
		configs[i] = metrics.MatchupConfig{ID: i + 1, Player1: m.Player1, Player2: m.Player2, Games: cfg.Games}
	}
	if err := writer.WriteMatchups(configs); err != nil {
		return "", fmt.Errorf("failed to store matchups: %w", err)
	}
	log.Info().Msg("stored matchups")

	gameRecords := make([]metrics.GameRecord, len(outcomes))
	shotRecords := []metrics.ShotRecord{}
	for i, out := range outcomes {
		gameRecords[i] = metrics.GameRecord{
			ID:         i + 1,
			Matchup:    i/cfg.Games + 1,
			Seed:       seeds[i],
			GameMetric: out.gameMetric,
		}
		if cfg.Shots {
			for _, shot := range out.shotMetrics {
				shotRecords = append(shotRecords, metrics.ShotRecord{Game: i + 1, ShotMetric: shot})
			}
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if cfg.Shots {
		if err := writer.WriteShotRecords(shotRecords); err != nil {
			return "", fmt.Errorf("failed to write shot records: %w", err)
		}
		log.Info().Msg("stored shot records")
	}

	return writer.Dir(), nil
}
