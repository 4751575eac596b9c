package experiments

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"battleship/engine"
	"battleship/meta"
	"battleship/player"

	"gopkg.in/yaml.v3"
)

type Matchup struct {
	Player1 string `yaml:"player1"`
	Player2 string `yaml:"player2"`
}

func (m Matchup) Kinds() (player.Kind, player.Kind, error) {
	k1, err := player.ParseKind(m.Player1)
	if err != nil {
		return 0, 0, fmt.Errorf("player1: %w", err)
	}
	k2, err := player.ParseKind(m.Player2)
	if err != nil {
		return 0, 0, fmt.Errorf("player2: %w", err)
	}
	return k1, k2, nil
}

func (m Matchup) String() string {
	return m.Player1 + " vs " + m.Player2
}

// Config describes an experiment: which strategies meet and how often.
type Config struct {
	Name       string    `yaml:"name"`
	Games      int       `yaml:"games"` // per matchup
	Seed       uint64    `yaml:"seed"`  // 0 seeds from the clock
	Goroutines int       `yaml:"goroutines"`
	Output     string    `yaml:"output"` // CSV root directory, empty disables records
	Shots      bool      `yaml:"shots"`  // also write one row per shot
	Matchups   []Matchup `yaml:"matchups"`

	// Observer is attached to every game, e.g. for tracing. It is called from
	// every worker and must be safe for concurrent use.
	Observer engine.Observer `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Name:       "matchup",
		Games:      meta.ITERATIONS,
		Goroutines: meta.GO_ROUTINES,
		Matchups: []Matchup{
			{Player1: player.HuntTarget.String(), Player2: player.Random.String()},
		},
	}
}

// LoadConfig reads a YAML experiment file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("invalid config: name is empty")
	}
	if c.Games <= 0 {
		return fmt.Errorf("invalid config: games must be positive, got %d", c.Games)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("invalid config: goroutines must be positive, got %d", c.Goroutines)
	}
	if len(c.Matchups) == 0 {
		return errors.New("invalid config: no matchups")
	}
	for i, m := range c.Matchups {
		if _, _, err := m.Kinds(); err != nil {
			return fmt.Errorf("invalid config: matchup %d: %w", i+1, err)
		}
	}
	return nil
}

// Marshal renders the config as YAML, e.g. to store next to the records.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
