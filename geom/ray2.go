// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package geom

import (
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// RayTestGeometry2 implements layer.TestGeometry[RayTestGeometry2]: a
// ray clipped to the current cell's (tmin,tmax) slab range.
type RayTestGeometry2 struct {
	origin, dir r2.Point
	cell        Bounds2
	tmin, tmax  float64
}

// NewRayTestGeometry2 clips [rangeMin,rangeMax] against systemBounds to
// produce the root geometry for a ray query.
func NewRayTestGeometry2(systemBounds Bounds2, origin, dir r2.Point, rangeMin, rangeMax float64) RayTestGeometry2 {
	tmin, tmax := clipSlab2(origin, dir, systemBounds, rangeMin, rangeMax)
	return RayTestGeometry2{origin: origin, dir: dir, cell: systemBounds, tmin: tmin, tmax: tmax}
}

// ShouldTest reports whether the ray still enters the clipped range
// at or before nearest: once tmin exceeds nearest for some cutoff, it
// can only grow on further subdivision, so this stays monotone.
func (g RayTestGeometry2) ShouldTest(nearest float64) bool {
	return g.tmin <= nearest && g.tmin <= g.tmax
}

// Subdivide splits the cell and re-clips the ray against each child.
func (g RayTestGeometry2) Subdivide() []RayTestGeometry2 {
	parts := g.cell.Split()
	out := make([]RayTestGeometry2, len(parts))
	for i, p := range parts {
		tmin, tmax := clipSlab2(g.origin, g.dir, p, g.tmin, g.tmax)
		out[i] = RayTestGeometry2{origin: g.origin, dir: g.dir, cell: p, tmin: tmin, tmax: tmax}
	}
	return out
}

// TestOrder visits children in ascending tmin, the near-to-far order
// that gives callback early-outs on nearest the most effect.
func (g RayTestGeometry2) TestOrder() []int {
	parts := g.cell.Split()
	order := []int{0, 1, 2, 3}
	tmins := make([]float64, len(parts))
	for i, p := range parts {
		tmins[i], _ = clipSlab2(g.origin, g.dir, p, g.tmin, g.tmax)
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

// clipSlab2 narrows [tmin,tmax] to the portion of the ray origin+t*dir
// that lies inside b, per axis. An empty intersection returns
// tmin > tmax, which ShouldTest then prunes.
func clipSlab2(origin, dir r2.Point, b Bounds2, tmin, tmax float64) (float64, float64) {
	tmin, tmax = clipAxis(origin.X, dir.X, b.Min.X, b.Max.X, tmin, tmax)
	tmin, tmax = clipAxis(origin.Y, dir.Y, b.Min.Y, b.Max.Y, tmin, tmax)
	return tmin, tmax
}

func clipAxis(o, d, lo, hi, tmin, tmax float64) (float64, float64) {
	if d == 0 {
		if o < lo || o > hi {
			return math.Inf(1), math.Inf(-1)
		}
		return tmin, tmax
	}
	t1 := (lo - o) / d
	t2 := (hi - o) / d
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 > tmin {
		tmin = t1
	}
	if t2 < tmax {
		tmax = t2
	}
	return tmin, tmax
}
