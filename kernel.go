// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import "slices"

// testCallback is invoked once per visited id with the current nearest
// cutoff; it returns an updated cutoff which is folded into nearest via
// min. Test uses a callback that leaves nearest unchanged; Pick uses
// one that narrows it as better candidates are found.
type testCallback[TG any, ID ObjectID] func(geom TG, nearest float64, id ID) float64

// testImpl is the central recursive routine: it partitions tree (known
// to lie entirely within cell's total-order range) among cell's
// children, prunes subtrees via geom.ShouldTest, and visits ids in the
// order required for ray early-outs: parent-level remainder first,
// then children in geom.TestOrder.
//
// Preconditions (checked by assertion, see assertContained): every
// entry in tree satisfies tree[0].index >= cell and
// cell.Overlaps(tree[len(tree)-1].index).
func testImpl[IX SpatialIndex[IX], ID ObjectID, TG TestGeometry[TG]](
	tree []entry[IX, ID],
	cell IX,
	geom TG,
	nearest float64,
	maxDepth int,
	hasMaxDepth bool,
	callback testCallback[TG, ID],
) float64 {
	if len(tree) == 0 || !geom.ShouldTest(nearest) {
		return nearest
	}

	assertContained(tree, cell)

	if hasMaxDepth && cell.Depth() >= maxDepth {
		return visitAll(tree, geom, nearest, callback)
	}

	children, ok := cell.Subdivide()
	if !ok {
		return visitAll(tree, geom, nearest, callback)
	}

	// Locate, for each child, the first tree index whose cell code is
	// >= that child's starting code. Everything before children[0]'s
	// cut is the parent-level remainder (entries equal to cell itself,
	// pinned at this depth because they fit in no single child);
	// between consecutive cuts lies each child's own sub-slice.
	cuts := make([]int, len(children))
	for i, child := range children {
		cuts[i], _ = slices.BinarySearchFunc(tree, child, func(e entry[IX, ID], c IX) int {
			return e.index.Compare(c)
		})
	}

	nearest = visitAll(tree[:cuts[0]], geom, nearest, callback)

	subGeoms := geom.Subdivide()

	for _, i := range geom.TestOrder() {
		start := cuts[i]
		end := len(tree)
		if i+1 < len(cuts) {
			end = cuts[i+1]
		}
		nearest = testImpl(tree[start:end], children[i], subGeoms[i], nearest, maxDepth, hasMaxDepth, callback)
	}

	return nearest
}

func visitAll[IX SpatialIndex[IX], ID ObjectID, TG any](tree []entry[IX, ID], geom TG, nearest float64, callback testCallback[TG, ID]) float64 {
	for _, e := range tree {
		if d := callback(geom, nearest, e.id); d < nearest {
			nearest = d
		}
	}
	return nearest
}

func assertContained[IX SpatialIndex[IX], ID ObjectID](tree []entry[IX, ID], cell IX) {
	first := tree[0].index
	last := tree[len(tree)-1].index
	if first.Compare(cell) < 0 {
		panicInvariant("test kernel: slice head precedes cell at depth %d", cell.Depth())
	}
	if !cell.Overlaps(last) {
		panicInvariant("test kernel: cell at depth %d does not overlap slice tail", cell.Depth())
	}
}
