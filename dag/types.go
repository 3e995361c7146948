// Package dag defines the AcyclicGraph wrapper type and its error surface.
//
// Error policy (explicit and strict):
//   - ErrCycle is the sentinel; branch on it with errors.Is.
//   - CycleError is the typed carrier of the rejected (From, To) pair;
//     recover it with errors.As when the endpoints matter.
//   - CycleError unwraps to ErrCycle, so both idioms work on the same value.
package dag

import (
	"errors"
	"fmt"
)

// ErrCycle indicates an edge insertion was rejected because it would close a
// directed cycle. Use errors.Is(err, ErrCycle) to branch on it.
var ErrCycle = errors.New("dag: edge would create a cycle")

// CycleError reports the exact edge whose insertion was rejected.
// The graph is guaranteed to be unmodified when this error is returned.
type CycleError struct {
	// From is the source of the rejected edge.
	From string
	// To is the destination of the rejected edge.
	To string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("dag: adding edge (%s → %s) would create a cycle", e.From, e.To)
}

// Unwrap ties CycleError to the ErrCycle sentinel for errors.Is.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}
