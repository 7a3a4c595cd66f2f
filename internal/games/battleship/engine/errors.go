package engine

import "errors"

// Errors returned when a command is refused. None of them mutate state, so
// callers may treat them as no-ops.
var (
	ErrOutOfBounds     = errors.New("engine: coordinates out of bounds")
	ErrCollision       = errors.New("engine: ship collides with another ship or the edge")
	ErrInvalidLength   = errors.New("engine: invalid ship length")
	ErrNoShipsLeft     = errors.New("engine: no ships of this length left to place")
	ErrWrongPhase      = errors.New("engine: command not allowed in this phase")
	ErrNotYourTurn     = errors.New("engine: not this side's turn")
	ErrMatchFinished   = errors.New("engine: match already finished")
	ErrPlacementFailed = errors.New("engine: could not find a legal fleet layout")
)
