// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import "math"

// GetDist reports how far geom is from object id, given the nearest
// distance found so far. Returning a non-finite value (e.g. +Inf)
// excludes id from consideration.
type GetDist[TG any, ID ObjectID] func(geom TG, nearest float64, id ID) float64

// Pick finds the single closest object to geom within maxDist,
// descending no deeper than maxDepth (if hasMaxDepth). It differs from
// Test in that it tracks only the best result and lets the kernel's
// nearest-distance pruning cut off whole subtrees early, seeded at
// maxDist rather than +Inf.
//
// Like Test, this is a free function: a method can't introduce the TG
// type parameter on top of Layer's own IX/ID.
func Pick[IX SpatialIndex[IX], ID ObjectID, TG TestGeometry[TG]](
	l *Layer[IX, ID],
	root IX,
	geom TG,
	maxDist float64,
	maxDepth int,
	hasMaxDepth bool,
	getDist GetDist[TG, ID],
) (dist float64, id ID, ok bool) {
	l.Sort()
	clear(l.processed)

	var result ID
	found := false

	best := testImpl(l.tree, root, geom, maxDist, maxDepth, hasMaxDepth,
		func(geom TG, nearest float64, candidate ID) float64 {
			if _, seen := l.processed[candidate]; seen {
				return math.Inf(1)
			}
			l.processed[candidate] = struct{}{}

			d := getDist(geom, nearest, candidate)
			if !isFinite(d) {
				return math.Inf(1)
			}
			if d < nearest {
				result = candidate
				found = true
			}
			return d
		})

	if !found {
		return 0, id, false
	}
	return best, result, true
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
