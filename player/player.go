package player

import (
	"time"

	"battleship/game"

	"golang.org/x/exp/rand"
)

// Player is an agent that owns a board and fires at an opponent's board it
// never sees. It only learns from the results of its own shots.
type Player interface {
	Name() string
	Board() *game.Board
	// SetupBoard places the player's fleet on its own board
	SetupBoard() error
	// ChooseShot returns the next coordinate to fire at and records it as fired
	ChooseShot() game.Coord
	// AbsorbResult updates the targeting state with the outcome of a shot
	AbsorbResult(c game.Coord, result game.ShotResult)
	ShotsFired() int
}

type Option func(b *base)

// WithRand sets the random source used for placement and shot selection.
func WithRand(rng *rand.Rand) Option {
	return func(b *base) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// WithSeed seeds a fresh random source.
func WithSeed(seed uint64) Option {
	return func(b *base) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// base is the state every strategy carries: its own board and the
// coordinates it has already fired at.
type base struct {
	name    string
	board   *game.Board
	rng     *rand.Rand
	fired   game.CoordSet
	history []game.Coord
}

func newBase(name string, options ...Option) base {
	b := base{name: name}
	for _, option := range options {
		option(&b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	b.board = game.NewBoard(b.rng)
	return b
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Board() *game.Board {
	return b.board
}

func (b *base) SetupBoard() error {
	return b.board.PlaceFleet()
}

func (b *base) ShotsFired() int {
	return b.fired.Len()
}

func (b *base) fire(c game.Coord) game.Coord {
	if b.fired.Add(c) {
		b.history = append(b.history, c)
	}
	return c
}

// randomProbe samples unfired cells uniformly by rejection.
func (b *base) randomProbe() game.Coord {
	if b.fired.Len() >= game.Cells {
		return game.NoCoord
	}
	for {
		c := game.Coord{X: b.rng.Intn(game.Size), Y: b.rng.Intn(game.Size)}
		if !b.fired.Has(c) {
			return c
		}
	}
}

// minLengthProbe picks uniformly among unfired cells that could still hold
// the smallest ship horizontally or vertically.
func (b *base) minLengthProbe() game.Coord {
	candidates := []game.Coord{}
	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			c := game.Coord{X: x, Y: y}
			if b.fired.Has(c) {
				continue
			}
			if b.fits(c, game.MinShipLength) {
				candidates = append(candidates, c)
			}
		}
	}

	if len(candidates) > 0 {
		return candidates[b.rng.Intn(len(candidates))]
	}
	return b.randomProbe()
}

// fits reports whether some run of length unfired cells passes through c.
func (b *base) fits(c game.Coord, length int) bool {
	for start := max(0, c.X-length+1); start <= min(game.Size-length, c.X); start++ {
		if b.runUnfired(game.Coord{X: start, Y: c.Y}, 1, 0, length) {
			return true
		}
	}
	for start := max(0, c.Y-length+1); start <= min(game.Size-length, c.Y); start++ {
		if b.runUnfired(game.Coord{X: c.X, Y: start}, 0, 1, length) {
			return true
		}
	}
	return false
}

func (b *base) runUnfired(origin game.Coord, dx, dy, length int) bool {
	for i := 0; i < length; i++ {
		if b.fired.Has(origin.Add(dx*i, dy*i)) {
			return false
		}
	}
	return true
}

// maxDistanceProbe picks uniformly among unfired cells whose nearest fired
// cell is as far away as possible.
func (b *base) maxDistanceProbe() game.Coord {
	if len(b.history) == 0 {
		return b.randomProbe()
	}

	best := []game.Coord{}
	maxMinDist := -1
	for x := 0; x < game.Size; x++ {
		for y := 0; y < game.Size; y++ {
			c := game.Coord{X: x, Y: y}
			if b.fired.Has(c) {
				continue
			}
			dist := b.nearestShot(c)
			if dist > maxMinDist {
				maxMinDist = dist
				best = []game.Coord{c}
			} else if dist == maxMinDist {
				best = append(best, c)
			}
		}
	}

	if len(best) > 0 {
		return best[b.rng.Intn(len(best))]
	}
	return b.randomProbe()
}

func (b *base) nearestShot(c game.Coord) int {
	nearest := 2 * game.Size
	for _, shot := range b.history {
		if d := c.Manhattan(shot); d < nearest {
			nearest = d
		}
	}
	return nearest
}
