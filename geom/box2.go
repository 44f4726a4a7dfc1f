// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package geom

// BoxTestGeometry2 implements layer.TestGeometry[BoxTestGeometry2]: a
// volume test against a fixed query box, tracking the current cell's
// world-space bounds as it descends.
type BoxTestGeometry2 struct {
	cell  Bounds2
	query Bounds2
}

// NewBoxTestGeometry2 builds the root geometry for a box query:
// systemBounds is the world extent the whole tree covers (i.e. the
// same value passed to Extend), query is the box being tested against.
func NewBoxTestGeometry2(systemBounds, query Bounds2) BoxTestGeometry2 {
	return BoxTestGeometry2{cell: systemBounds, query: query}
}

// ShouldTest prunes any cell whose world bounds don't overlap query;
// nearest is unused since box tests have no notion of distance cutoff.
func (g BoxTestGeometry2) ShouldTest(float64) bool {
	return g.cell.Overlaps(g.query)
}

// Subdivide splits the current cell's world bounds to match
// morton.Index2D's child ordering.
func (g BoxTestGeometry2) Subdivide() []BoxTestGeometry2 {
	parts := g.cell.Split()
	out := make([]BoxTestGeometry2, len(parts))
	for i, p := range parts {
		out[i] = BoxTestGeometry2{cell: p, query: g.query}
	}
	return out
}

// TestOrder is irrelevant for volume tests; identity is as good as any
// other permutation.
func (g BoxTestGeometry2) TestOrder() []int {
	return []int{0, 1, 2, 3}
}
