package engine

import (
	"fmt"

	"battleship/experiments/metrics"
	"battleship/game"
	"battleship/meta"
	"battleship/player"

	"github.com/rs/zerolog/log"
)

type Option func(g *Game)

var _ Engine = (*Game)(nil)

func WithObserver(observer Observer) Option {
	return func(g *Game) {
		g.observer = observer
	}
}

func WithMetrics() Option {
	return func(g *Game) {
		g.metrics = metrics.NewCollector()
	}
}

func WithMaxTurns(turns int) Option {
	return func(g *Game) {
		if turns > 0 {
			g.maxTurns = turns
		}
	}
}

// Game alternates shots between two players, starting with p1.
type Game struct {
	p1, p2    player.Player
	turnCount int
	phase     Phase
	played    bool
	maxTurns  int
	observer  Observer
	metrics   metrics.Collector

	gameMetric  metrics.GameMetric
	shotMetrics []metrics.ShotMetric
}

func NewGame(p1, p2 player.Player, options ...Option) *Game {
	if p1 == nil || p2 == nil {
		panic("need two players")
	}
	g := &Game{
		p1:       p1,
		p2:       p2,
		maxTurns: meta.MaxTurns,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// Play sets up both boards and runs the loop until the opponent of the
// player who just fired has no ship left. A Game plays once.
func (g *Game) Play() (player.Player, error) {
	if g.played {
		return nil, ErrAlreadyPlayed
	}
	g.played = true

	if err := g.p1.SetupBoard(); err != nil {
		return nil, fmt.Errorf("failed to set up board for %s: %w", g.p1.Name(), err)
	}
	if err := g.p2.SetupBoard(); err != nil {
		return nil, fmt.Errorf("failed to set up board for %s: %w", g.p2.Name(), err)
	}

	players := [2]player.Player{g.p1, g.p2}
	side := 0
	current, opponent := players[0], players[1]
	g.metrics.Start([2]string{g.p1.Name(), g.p2.Name()}, side)
	log.Debug().Msgf("%s vs %s, %s is starting", g.p1.Name(), g.p2.Name(), current.Name())

	for g.turnCount < g.maxTurns {
		g.phase = AwaitingShot
		g.turnCount++

		target := current.ChooseShot()
		result := opponent.Board().ReceiveShot(target)
		current.AbsorbResult(target, result)
		g.phase = ShotResolved

		if result == game.Duplicate {
			log.Debug().Int("turn", g.turnCount).Str("player", current.Name()).Msgf("wasted shot at %v", target)
		}
		g.metrics.AddShot(g.turnCount, side, target, result)

		if g.observer != nil {
			g.observer.Observe(g.p1, g.p2, g.turnCount)
		}

		if opponent.Board().AllSunk() {
			g.phase = Terminal
			g.gameMetric, g.shotMetrics = g.metrics.Complete(side, g.turnCount)
			log.Debug().Msgf("%s won after %d turns", current.Name(), g.turnCount)
			return current, nil
		}

		side = 1 - side
		current, opponent = players[side], players[1-side]
		g.phase = TurnSwapped
	}

	g.phase = Terminal
	return nil, fmt.Errorf("%s vs %s after %d turns: %w", g.p1.Name(), g.p2.Name(), g.turnCount, ErrTurnLimit)
}

// TurnCount is the number of shots fired so far by both players.
func (g *Game) TurnCount() int {
	return g.turnCount
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Metrics returns what the collector recorded; empty unless WithMetrics is set.
func (g *Game) Metrics() (metrics.GameMetric, []metrics.ShotMetric) {
	return g.gameMetric, g.shotMetrics
}
