package game

import (
	"errors"
	"fmt"
)

// State is a GameLoop lifecycle stage. Transitions only move forward.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateRunning
	StateShuttingDown
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateShuttingDown:
		return "shutting down"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrInvalidState is returned when a lifecycle method is called out of order
var ErrInvalidState = errors.New("invalid game loop state")

// InitializationError reports a failure to bring up the window or GL context
type InitializationError struct {
	Op  string
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialization failed: %s: %v", e.Op, e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }
