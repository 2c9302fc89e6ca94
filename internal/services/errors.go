package services

import (
	"errors"
	"fmt"
)

// ErrUnreachableNode indicates a tour could not be extended because no
// unvisited node is reachable from the current position.
var ErrUnreachableNode = errors.New("no reachable unvisited node")

// ErrUnknownStrategy indicates an unrecognized strategy label.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrNoSolver indicates the external strategy was requested but no solver
// adapter is configured.
var ErrNoSolver = errors.New("external solver not configured")

// PrecedenceBlockedError reports that the pickup/delivery tour builder ran
// out of valid moves before covering every node. The partial tour is carried
// so callers can surface what was planned before the dead end.
type PrecedenceBlockedError struct {
	Tour      []int
	Remaining []int
}

func (e *PrecedenceBlockedError) Error() string {
	return fmt.Sprintf(
		"pickup delivery tour: no valid next stop after %d of %d nodes",
		len(e.Tour), len(e.Tour)+len(e.Remaining),
	)
}
