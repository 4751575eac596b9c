package game

// CellState is the tag stored for every grid cell.
type CellState int

const (
	Empty CellState = iota // 0
	ShipCell               // 1
	MissCell               // 2
	HitCell                // 3
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "Empty"
	case ShipCell:
		return "Ship"
	case MissCell:
		return "Miss"
	case HitCell:
		return "Hit"
	default:
		return "Unknown"
	}
}

// ShotResult is what a board reports back for an incoming shot.
type ShotResult int

const (
	Miss ShotResult = iota
	Hit
	Sunk
	Duplicate
	// GameOver is reserved for callers; boards never return it.
	GameOver
)

func (r ShotResult) String() string {
	switch r {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case Sunk:
		return "Sunk"
	case Duplicate:
		return "Duplicate"
	case GameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// Orientation is the axis a ship extends along from its origin.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "Vertical"
	}
	return "Horizontal"
}

// step returns the offset between consecutive cells of a ship.
func (o Orientation) step() (dx, dy int) {
	if o == Vertical {
		return 0, 1
	}
	return 1, 0
}
