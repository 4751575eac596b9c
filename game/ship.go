package game

// Ship is a named vessel. Only the board it is placed on records hits.
type Ship struct {
	name   string
	length int
	hits   int
}

func NewShip(name string, length int) *Ship {
	if length <= 0 {
		panic("ship length must be positive")
	}
	return &Ship{name: name, length: length}
}

func (s *Ship) Name() string { return s.name }
func (s *Ship) Length() int  { return s.length }
func (s *Ship) Hits() int    { return s.hits }

func (s *Ship) IsSunk() bool {
	return s.hits >= s.length
}

type shipClass struct {
	name   string
	length int
}

// Placement order matters: the longest ships are sampled first.
var standardFleet = []shipClass{
	{"Carrier", 5},
	{"Battleship", 4},
	{"Cruiser", 3},
	{"Submarine", 3},
	{"Destroyer", 2},
}

// StandardFleet returns fresh ships for the 5-4-3-3-2 fleet.
func StandardFleet() []*Ship {
	fleet := make([]*Ship, len(standardFleet))
	for i, class := range standardFleet {
		fleet[i] = NewShip(class.name, class.length)
	}
	return fleet
}

// FleetCells is the number of cells occupied by the standard fleet.
func FleetCells() int {
	total := 0
	for _, class := range standardFleet {
		total += class.length
	}
	return total
}
