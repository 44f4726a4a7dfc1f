// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package geom

import (
	"slices"

	"github.com/golang/geo/r3"
)

// RayTestGeometry3 is the 3D counterpart to RayTestGeometry2.
type RayTestGeometry3 struct {
	origin, dir r3.Vector
	cell        Bounds3
	tmin, tmax  float64
}

// NewRayTestGeometry3 clips [rangeMin,rangeMax] against systemBounds to
// produce the root geometry for a ray query.
func NewRayTestGeometry3(systemBounds Bounds3, origin, dir r3.Vector, rangeMin, rangeMax float64) RayTestGeometry3 {
	tmin, tmax := clipSlab3(origin, dir, systemBounds, rangeMin, rangeMax)
	return RayTestGeometry3{origin: origin, dir: dir, cell: systemBounds, tmin: tmin, tmax: tmax}
}

// ShouldTest reports whether the ray still enters the clipped range
// at or before nearest.
func (g RayTestGeometry3) ShouldTest(nearest float64) bool {
	return g.tmin <= nearest && g.tmin <= g.tmax
}

// Subdivide splits the cell and re-clips the ray against each child.
func (g RayTestGeometry3) Subdivide() []RayTestGeometry3 {
	parts := g.cell.Split()
	out := make([]RayTestGeometry3, len(parts))
	for i, p := range parts {
		tmin, tmax := clipSlab3(g.origin, g.dir, p, g.tmin, g.tmax)
		out[i] = RayTestGeometry3{origin: g.origin, dir: g.dir, cell: p, tmin: tmin, tmax: tmax}
	}
	return out
}

// TestOrder visits children in ascending tmin.
func (g RayTestGeometry3) TestOrder() []int {
	parts := g.cell.Split()
	order := []int{0, 1, 2, 3, 4, 5, 6, 7}
	tmins := make([]float64, len(parts))
	for i, p := range parts {
		tmins[i], _ = clipSlab3(g.origin, g.dir, p, g.tmin, g.tmax)
	}
	slices.SortFunc(order, func(a, b int) int {
		switch {
		case tmins[a] < tmins[b]:
			return -1
		case tmins[a] > tmins[b]:
			return 1
		default:
			return 0
		}
	})
	return order
}

func clipSlab3(origin, dir r3.Vector, b Bounds3, tmin, tmax float64) (float64, float64) {
	tmin, tmax = clipAxis(origin.X, dir.X, b.Min.X, b.Max.X, tmin, tmax)
	tmin, tmax = clipAxis(origin.Y, dir.Y, b.Min.Y, b.Max.Y, tmin, tmax)
	tmin, tmax = clipAxis(origin.Z, dir.Z, b.Min.Z, b.Max.Z, tmin, tmax)
	return tmin, tmax
}
