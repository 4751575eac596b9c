package player

import "battleship/game"

// RandomPlayer fires at uniformly random unfired cells and ignores results.
// It is the baseline the other strategies are measured against.
type RandomPlayer struct {
	base
}

func NewRandomPlayer(name string, options ...Option) *RandomPlayer {
	return &RandomPlayer{base: newBase(name, options...)}
}

func (p *RandomPlayer) ChooseShot() game.Coord {
	return p.fire(p.randomProbe())
}

func (p *RandomPlayer) AbsorbResult(c game.Coord, result game.ShotResult) {}
