package game

import "fmt"

// Size is the width and height of every board.
const Size = 10

// Cells is the number of cells on a board.
const Cells = Size * Size

// MinShipLength is the length of the smallest ship in the standard fleet.
const MinShipLength = 2

// Coord is a cell position. X is the column, Y the row.
type Coord struct {
	X int
	Y int
}

// NoCoord is returned by probes when no cell is left to fire at.
var NoCoord = Coord{X: -1, Y: -1}

func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the taxicab distance between two coordinates.
func (c Coord) Manhattan(other Coord) int {
	return abs(c.X-other.X) + abs(c.Y-other.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CoordSet is a membership bitset over the board's cells.
type CoordSet struct {
	cells [Size][Size]bool
	n     int
}

// Has reports whether c is in the set. Out of bounds coordinates are never members.
func (s *CoordSet) Has(c Coord) bool {
	return c.InBounds() && s.cells[c.Y][c.X]
}

// Add inserts c and reports whether it was not already present.
func (s *CoordSet) Add(c Coord) bool {
	if !c.InBounds() || s.cells[c.Y][c.X] {
		return false
	}
	s.cells[c.Y][c.X] = true
	s.n++
	return true
}

func (s *CoordSet) Len() int {
	return s.n
}

// Coords lists the members in row-major order.
func (s *CoordSet) Coords() []Coord {
	coords := make([]Coord, 0, s.n)
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if s.cells[y][x] {
				coords = append(coords, Coord{X: x, Y: y})
			}
		}
	}
	return coords
}
