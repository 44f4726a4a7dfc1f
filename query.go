// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import (
	"math"
	"slices"
)

// Test sorts the tree if needed, then runs geom against it, visiting
// every (cell,id) pair geom's pruning allows down to maxDepth (if
// hasMaxDepth), and returns the sorted, deduplicated set of visited
// ids. The returned slice is a borrowed view into Layer's scratch
// state, valid until the next mutating call.
//
// Test is a free function, not a method, because it needs a type
// parameter (TG, the TestGeometry implementation) beyond the Layer's
// own IX/ID — Go does not allow a generic method to introduce new
// type parameters.
func Test[IX SpatialIndex[IX], ID ObjectID, TG TestGeometry[TG]](
	l *Layer[IX, ID],
	root IX,
	geom TG,
	maxDepth int,
	hasMaxDepth bool,
) []ID {
	l.Sort()
	l.testResults = l.testResults[:0]

	testImpl(l.tree, root, geom, math.Inf(1), maxDepth, hasMaxDepth,
		func(_ TG, nearest float64, id ID) float64 {
			l.testResults = append(l.testResults, id)
			return nearest
		})

	slices.Sort(l.testResults)
	l.testResults = slices.Compact(l.testResults)

	return l.testResults
}
