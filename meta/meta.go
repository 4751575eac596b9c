// meta/meta.go
package meta

// ITERATIONS defines the number of games played per matchup.
const ITERATIONS = 1000

// GO_ROUTINES defines the number of goroutines playing games in parallel.
const GO_ROUTINES = 8

// MaxTurns caps a single game. Each player fires at most once per cell, so
// a game between well-behaved players ends within 2*Cells turns.
const MaxTurns = 400
