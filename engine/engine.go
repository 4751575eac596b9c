package engine

import (
	"errors"

	"battleship/player"
)

// ErrTurnLimit is returned when a game exceeds its turn cap without a winner.
var ErrTurnLimit = errors.New("turn limit reached without a winner")

// ErrAlreadyPlayed is returned by Play on a game that has already been played.
var ErrAlreadyPlayed = errors.New("game has already been played")

type Engine interface {
	// Play runs the game until one fleet is sunk and returns the winner
	Play() (player.Player, error)
}

// Observer is notified after every shot. It must not modify the players.
type Observer interface {
	Observe(p1, p2 player.Player, turn int)
}

type ObserverFunc func(p1, p2 player.Player, turn int)

func (f ObserverFunc) Observe(p1, p2 player.Player, turn int) {
	f(p1, p2, turn)
}

// Phase is the position of the game loop within a turn.
type Phase int

const (
	AwaitingShot Phase = iota
	ShotResolved
	TurnSwapped
	Terminal
)

func (p Phase) String() string {
	switch p {
	case AwaitingShot:
		return "AwaitingShot"
	case ShotResolved:
		return "ShotResolved"
	case TurnSwapped:
		return "TurnSwapped"
	case Terminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}
