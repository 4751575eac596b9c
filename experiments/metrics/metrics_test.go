package metrics

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"battleship/game"

	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

// failingCloser accepts every write and fails on Close.
type failingCloser struct {
	bytes.Buffer
}

func (f *failingCloser) Close() error {
	return errDiskFull
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCollector(t *testing.T) {
	t.Run("summarising a game", func(t *testing.T) {
		c := NewCollector()
		c.Start([2]string{"alice", "bob"}, 0)
		c.AddShot(1, 0, game.Coord{X: 1, Y: 1}, game.Hit)
		c.AddShot(2, 1, game.Coord{X: 2, Y: 2}, game.Miss)
		c.AddShot(3, 0, game.Coord{X: -1, Y: 0}, game.Duplicate)
		c.AddShot(4, 1, game.Coord{X: 3, Y: 3}, game.Miss)
		c.AddShot(5, 0, game.Coord{X: 1, Y: 2}, game.Sunk)

		metric, shots := c.Complete(0, 5)

		require.Equal(t, "alice", metric.StartingPlayer)
		require.Equal(t, "alice", metric.Winner)
		require.Equal(t, 0, metric.WinnerSide)
		require.Equal(t, 5, metric.TotalTurns)
		require.Equal(t, 3, metric.WinnerShots)
		require.Equal(t, 1, metric.Wasted)
		require.False(t, metric.EndTime.Before(metric.StartTime))
		require.Len(t, shots, 5)
		require.Equal(t, game.Sunk, shots[4].Result)
		require.Equal(t, "bob", shots[1].Player)
		require.Equal(t, 1, shots[1].Side)
	})

	t.Run("sides sharing a name are counted apart", func(t *testing.T) {
		c := NewCollector()
		c.Start([2]string{"same", "same"}, 0)
		for turn := 1; turn <= 6; turn++ {
			c.AddShot(turn, (turn-1)%2, game.Coord{X: turn, Y: 0}, game.Miss)
		}
		c.AddShot(7, 0, game.Coord{X: 0, Y: 1}, game.Sunk)

		metric, _ := c.Complete(0, 7)

		require.Equal(t, 4, metric.WinnerShots, "Only the winning side's shots should count")
		require.Equal(t, 0, metric.WinnerSide)

		c.Start([2]string{"same", "same"}, 0)
		c.AddShot(1, 0, game.Coord{}, game.Miss)
		c.AddShot(2, 1, game.Coord{}, game.Sunk)

		metric, _ = c.Complete(1, 2)

		require.Equal(t, 1, metric.WinnerShots)
		require.Equal(t, 1, metric.WinnerSide)
	})

	t.Run("restarting clears previous shots", func(t *testing.T) {
		c := NewCollector()
		c.Start([2]string{"alice", "bob"}, 0)
		c.AddShot(1, 0, game.Coord{}, game.Miss)
		_, first := c.Complete(0, 1)

		c.Start([2]string{"alice", "bob"}, 1)
		metric, shots := c.Complete(1, 0)

		require.Empty(t, shots)
		require.Equal(t, "bob", metric.StartingPlayer)
		require.Len(t, first, 1, "Returned shots should not alias the collector")
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start([2]string{"alice", "bob"}, 0)
		c.AddShot(1, 0, game.Coord{}, game.Hit)

		metric, shots := c.Complete(0, 1)

		require.Equal(t, GameMetric{}, metric)
		require.Nil(t, shots)
	})
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "unit"), filepath.Dir(w.Dir()))

	t.Run("writing matchups", func(t *testing.T) {
		err := w.WriteMatchups([]MatchupConfig{{ID: 1, Player1: "hunt-target", Player2: "random", Games: 10}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "matchups.csv"))
		require.Equal(t, [][]string{
			{"id", "player1", "player2", "games"},
			{"1", "hunt-target", "random", "10"},
		}, rows)
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:      7,
			Matchup: 1,
			Seed:    99,
			GameMetric: GameMetric{
				StartingPlayer: "a",
				Winner:         "b",
				WinnerSide:     1,
				StartTime:      start,
				EndTime:        start.Add(time.Millisecond),
				Duration:       time.Millisecond,
				TotalTurns:     120,
				WinnerShots:    60,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"7", "1", "99", "a", "b", "1", "120", "60", "0"}, rows[1][:9])
		require.Equal(t, "1ms", rows[1][11])
	})

	t.Run("writing shot records", func(t *testing.T) {
		err := w.WriteShotRecords([]ShotRecord{
			{Game: 7, ShotMetric: ShotMetric{Turn: 1, Side: 0, Player: "a", Target: game.Coord{X: 4, Y: 5}, Result: game.Hit}},
			{Game: 7, ShotMetric: ShotMetric{Turn: 2, Side: 1, Player: "b", Target: game.Coord{X: 0, Y: 0}, Result: game.Miss}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "shot_records.csv"))
		require.Equal(t, [][]string{
			{"game", "turn", "side", "player", "x", "y", "result"},
			{"7", "1", "0", "a", "4", "5", "Hit"},
			{"7", "2", "1", "b", "0", "0", "Miss"},
		}, rows)
	})

	t.Run("reporting a failed close", func(t *testing.T) {
		failing := &Writer{
			baseDir: w.Dir(),
			create: func(path string) (io.WriteCloser, error) {
				return &failingCloser{}, nil
			},
		}

		err := failing.WriteMatchups([]MatchupConfig{{ID: 1, Player1: "random", Player2: "random", Games: 1}})

		require.ErrorIs(t, err, errDiskFull)
		require.ErrorContains(t, err, "matchups.csv")
	})
}
