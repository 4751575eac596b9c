package metrics

import (
	"time"

	"battleship/game"
)

type ShotMetric struct {
	Turn   int
	Side   int    // 0 for the player firing first, 1 for the other
	Player string // display name of Side
	Target game.Coord
	Result game.ShotResult
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	WinnerSide     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
	WinnerShots    int // Shots fired by the winner, wasted ones included
	Wasted         int // Duplicate results across both players
}

// Collector records one game at a time. Players are identified by side, names
// are only carried along for display since both sides may share one.
type Collector interface {
	Start(names [2]string, startingSide int)
	AddShot(turn, side int, target game.Coord, result game.ShotResult)
	Complete(winnerSide, turns int) (GameMetric, []ShotMetric)
}

type collector struct {
	names        [2]string
	startingSide int
	startTime    time.Time
	shots        []ShotMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(names [2]string, startingSide int) {
	m.names = names
	m.startingSide = startingSide
	m.startTime = time.Now()
	m.shots = m.shots[:0]
}

func (m *collector) AddShot(turn, side int, target game.Coord, result game.ShotResult) {
	m.shots = append(m.shots, ShotMetric{
		Turn:   turn,
		Side:   side,
		Player: m.names[side],
		Target: target,
		Result: result,
	})
}

func (m *collector) Complete(winnerSide, turns int) (GameMetric, []ShotMetric) {
	end := time.Now()
	metric := GameMetric{
		StartingPlayer: m.names[m.startingSide],
		Winner:         m.names[winnerSide],
		WinnerSide:     winnerSide,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalTurns:     turns,
	}
	for _, shot := range m.shots {
		if shot.Side == winnerSide {
			metric.WinnerShots++
		}
		if shot.Result == game.Duplicate {
			metric.Wasted++
		}
	}
	shots := make([]ShotMetric, len(m.shots))
	copy(shots, m.shots)
	return metric, shots
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start([2]string, int)                          {}
func (m *dummyCollector) AddShot(int, int, game.Coord, game.ShotResult) {}
func (m *dummyCollector) Complete(int, int) (GameMetric, []ShotMetric)  { return GameMetric{}, nil }
