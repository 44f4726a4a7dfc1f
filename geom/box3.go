// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package geom

// BoxTestGeometry3 is the 3D counterpart to BoxTestGeometry2.
type BoxTestGeometry3 struct {
	cell  Bounds3
	query Bounds3
}

// NewBoxTestGeometry3 builds the root geometry for a box query.
func NewBoxTestGeometry3(systemBounds, query Bounds3) BoxTestGeometry3 {
	return BoxTestGeometry3{cell: systemBounds, query: query}
}

// ShouldTest prunes any cell whose world bounds don't overlap query.
func (g BoxTestGeometry3) ShouldTest(float64) bool {
	return g.cell.Overlaps(g.query)
}

// Subdivide splits the current cell's world bounds to match
// morton.Index3D's child ordering.
func (g BoxTestGeometry3) Subdivide() []BoxTestGeometry3 {
	parts := g.cell.Split()
	out := make([]BoxTestGeometry3, len(parts))
	for i, p := range parts {
		out[i] = BoxTestGeometry3{cell: p, query: g.query}
	}
	return out
}

// TestOrder is irrelevant for volume tests.
func (g BoxTestGeometry3) TestOrder() []int {
	return []int{0, 1, 2, 3, 4, 5, 6, 7}
}
