package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"battleship/experiments"
	"battleship/meta"
	"battleship/player"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var throughputGoroutines = []int{1, 2, 4, 8, 16, 32}

func main() {
	p1 := player.HuntTarget
	p2 := player.Random
	flag.TextVar(&p1, "p1", p1, "strategy of the player firing first (random, hunt-target, hunt-target-max)")
	flag.TextVar(&p2, "p2", p2, "strategy of the second player")
	iterations := flag.Int("n", meta.ITERATIONS, "number of games to play per matchup")
	seed := flag.Uint64("seed", 0, "random seed (0 = now)")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "number of games played in parallel")
	configPath := flag.String("config", "", "YAML experiment file; explicit flags override it")
	output := flag.String("out", "", "directory for CSV records (empty disables)")
	shots := flag.Bool("shots", false, "also record every shot")
	experiment := flag.String("experiment", "matchup", "experiment to run: matchup or throughput")
	trace := flag.Bool("trace", false, "log every shot at debug level")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	show := flag.Bool("show", true, "print both boards of the last game")
	flag.Parse()

	if err := setupLogging(*level); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg := experiments.DefaultConfig()
	if *configPath != "" {
		loaded, err := experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load experiment config")
		}
		cfg = loaded
	}

	// Flags only override the config file when given explicitly
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Games = *iterations
		case "seed":
			cfg.Seed = *seed
		case "goroutines":
			cfg.Goroutines = *goroutines
		case "out":
			cfg.Output = *output
		case "shots":
			cfg.Shots = *shots
		}
	})
	if *configPath == "" || isSet("p1") || isSet("p2") {
		cfg.Matchups = []experiments.Matchup{{Player1: p1.String(), Player2: p2.String()}}
	}
	if *trace {
		if *level != "debug" && *level != "trace" {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		cfg.Observer = traceObserver{}
	}

	switch *experiment {
	case "matchup":
		runMatchups(cfg, *show)
	case "throughput":
		runThroughput(cfg)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

func isSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)

	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr(), TimeFormat: time.TimeOnly})
	}
	return nil
}

func runMatchups(cfg experiments.Config, show bool) {
	for _, m := range cfg.Matchups {
		fmt.Printf("Starting simulation: %s\n", m)
	}

	report, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	report.Print(os.Stdout)
	if show {
		fmt.Println("Displaying final game state...")
		report.PrintFinal(os.Stdout)
	}
}

func runThroughput(cfg experiments.Config) {
	results, err := experiments.RunThroughputExperiment(cfg, throughputGoroutines)
	if err != nil {
		log.Fatal().Err(err).Msg("throughput experiment failed")
	}
	for _, r := range results {
		fmt.Printf("%3d goroutines: %6d games in %-12s %8.0f games/s\n", r.Goroutines, r.Games, r.Duration.Round(time.Millisecond), r.GamesPerSecond)
	}
}

// traceObserver logs the state of both fleets after every shot.
type traceObserver struct{}

func (traceObserver) Observe(p1, p2 player.Player, turn int) {
	log.Debug().
		Int("turn", turn).
		Int("p1_afloat", afloat(p1)).
		Int("p2_afloat", afloat(p2)).
		Msgf("%s %d shots, %s %d shots", p1.Name(), p1.ShotsFired(), p2.Name(), p2.ShotsFired())
}

func afloat(p player.Player) int {
	n := 0
	for _, ship := range p.Board().Ships() {
		if !ship.IsSunk() {
			n++
		}
	}
	return n
}
