// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import "fmt"

// InvariantError is raised by the test kernel when it is handed a
// slice that violates its "contained in cell" precondition. This is a
// programmer error, not a caller-data problem — out-of-bounds object
// bounds are recorded in Layer.Invalid by Extend, never raised as an
// error. Recovery is undefined and the panic is expected to terminate
// the query: an invariant violation here means the tree itself is
// malformed, not that the query hit bad input.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "layer: invariant violation: " + e.Msg
}

func panicInvariant(format string, args ...any) {
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
