package experiments

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a plain-text summary of every matchup.
func (r *Report) Print(w io.Writer) {
	rule := strings.Repeat("-", 30)
	for _, m := range r.Matchups {
		fmt.Fprintf(w, "Matchup %d: %s\n", m.ID, m.Matchup)
		fmt.Fprintf(w, "Iterations: %d\n", m.Games)
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "%s Wins: %d (%.1f%%), %.1f shots per win\n", m.Matchup.Player1, m.Wins[0], 100*m.WinRate(0), m.AvgShotsToWin(0))
		fmt.Fprintf(w, "%s Wins: %d (%.1f%%), %.1f shots per win\n", m.Matchup.Player2, m.Wins[1], 100*m.WinRate(1), m.AvgShotsToWin(1))
		fmt.Fprintf(w, "Average Turns per Game: %.1f\n", m.AvgTurns())
		fmt.Fprintln(w, rule)
	}
	fmt.Fprintf(w, "Results (%.2fs, seed %d)\n", r.Duration.Seconds(), r.Seed)
	if r.RecordDir != "" {
		fmt.Fprintf(w, "Records written to %s\n", r.RecordDir)
	}
}

// PrintFinal shows both boards of the last game side by side.
func (r *Report) PrintFinal(w io.Writer) {
	p1, p2 := r.Final[0], r.Final[1]
	if p1 == nil || p2 == nil {
		return
	}
	left := strings.Split(strings.TrimRight(p1.Board().String(), "\n"), "\n")
	right := strings.Split(strings.TrimRight(p2.Board().String(), "\n"), "\n")
	width := len(left[0])

	fmt.Fprintf(w, "%-*s   %s\n", width, p1.Name(), p2.Name())
	for i := range left {
		fmt.Fprintf(w, "%-*s   %s\n", width, left[i], right[i])
	}
	fmt.Fprintf(w, "%-*s   %s\n", width, status(p1.Board().AllSunk()), status(p2.Board().AllSunk()))
}

func status(sunk bool) string {
	if sunk {
		return "fleet sunk"
	}
	return "fleet afloat"
}
