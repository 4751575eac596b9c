package game

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
)

// MaxPlacementAttempts bounds the rejection sampling for each ship.
const MaxPlacementAttempts = 1000

// ErrPlacementFailed means a ship could not be fitted on the board.
var ErrPlacementFailed = errors.New("ship placement failed")

// Board is one player's grid: its fleet and the shots it has received.
type Board struct {
	grid          [Size][Size]CellState
	ships         []*Ship
	shipMap       map[Coord]*Ship // back-references, ships are owned by the ships slice
	shotsReceived CoordSet
	rng           *rand.Rand
}

// NewBoard returns an empty board that samples placements from rng.
func NewBoard(rng *rand.Rand) *Board {
	if rng == nil {
		panic("board needs a random source")
	}
	return &Board{
		shipMap: make(map[Coord]*Ship),
		rng:     rng,
	}
}

// PlaceFleet places the standard fleet at random, non-overlapping positions.
func (b *Board) PlaceFleet() error {
	for _, ship := range StandardFleet() {
		placed := false
		for attempts := 0; !placed && attempts < MaxPlacementAttempts; attempts++ {
			origin := Coord{X: b.rng.Intn(Size), Y: b.rng.Intn(Size)}
			orientation := Horizontal
			if b.rng.Intn(2) == 1 {
				orientation = Vertical
			}
			if b.canPlace(ship, origin, orientation) {
				b.place(ship, origin, orientation)
				placed = true
			}
		}
		if !placed {
			return fmt.Errorf("failed to place %s after %d attempts: %w", ship.Name(), MaxPlacementAttempts, ErrPlacementFailed)
		}
	}
	return nil
}

// PlaceShip puts ship at a fixed origin and orientation.
func (b *Board) PlaceShip(ship *Ship, origin Coord, orientation Orientation) error {
	if !b.canPlace(ship, origin, orientation) {
		return fmt.Errorf("%s does not fit at %v %s: %w", ship.Name(), origin, orientation, ErrPlacementFailed)
	}
	b.place(ship, origin, orientation)
	return nil
}

func (b *Board) canPlace(ship *Ship, origin Coord, orientation Orientation) bool {
	dx, dy := orientation.step()
	for i := 0; i < ship.Length(); i++ {
		c := origin.Add(dx*i, dy*i)
		if !c.InBounds() || b.grid[c.Y][c.X] != Empty {
			return false
		}
	}
	return true
}

func (b *Board) place(ship *Ship, origin Coord, orientation Orientation) {
	b.ships = append(b.ships, ship)
	dx, dy := orientation.step()
	for i := 0; i < ship.Length(); i++ {
		c := origin.Add(dx*i, dy*i)
		b.grid[c.Y][c.X] = ShipCell
		b.shipMap[c] = ship
	}
}

// ReceiveShot resolves an incoming shot. Out of bounds and repeated shots are
// wasted and reported as Duplicate without touching the board.
func (b *Board) ReceiveShot(c Coord) ShotResult {
	if !c.InBounds() {
		return Duplicate
	}
	if !b.shotsReceived.Add(c) {
		return Duplicate
	}

	switch b.grid[c.Y][c.X] {
	case Empty:
		b.grid[c.Y][c.X] = MissCell
		return Miss
	case ShipCell:
		b.grid[c.Y][c.X] = HitCell
		ship := b.shipMap[c]
		ship.hits++
		if ship.IsSunk() {
			return Sunk
		}
		return Hit
	}
	// Only reachable if the shot set and the grid disagree
	return Duplicate
}

// AllSunk reports whether every ship of the fleet has been sunk.
func (b *Board) AllSunk() bool {
	for _, ship := range b.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

// Cell returns the state of c, Empty for coordinates off the board.
func (b *Board) Cell(c Coord) CellState {
	if !c.InBounds() {
		return Empty
	}
	return b.grid[c.Y][c.X]
}

// Ships returns the fleet in placement order.
func (b *Board) Ships() []*Ship {
	return b.ships
}

func (b *Board) ShipAt(c Coord) (*Ship, bool) {
	ship, ok := b.shipMap[c]
	return ship, ok
}

func (b *Board) ShotsReceived() int {
	return b.shotsReceived.Len()
}

// String renders the grid one row per line:
// '.' empty, 'S' ship, 'o' miss, 'X' hit, '#' part of a sunk ship.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := Coord{X: x, Y: y}
			switch b.grid[y][x] {
			case ShipCell:
				sb.WriteByte('S')
			case MissCell:
				sb.WriteByte('o')
			case HitCell:
				if b.shipMap[c].IsSunk() {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('X')
				}
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
