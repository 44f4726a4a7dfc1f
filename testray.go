// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/flatbroadphase/layer/geom"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// TestRay2 returns the ids of every object whose indexed cells the ray
// from origin along dir crosses within [rangeMin,rangeMax].
// systemBounds must match the bounds passed to Extend. Unlike PickRay2,
// this does no per-object distance narrowing: it enumerates every
// candidate the cell-level slab clip can't rule out.
func TestRay2[ID ObjectID, IX SpatialIndex[IX]](
	l *Layer[IX, ID],
	root IX,
	systemBounds geom.Bounds2,
	origin, dir r2.Point,
	rangeMin, rangeMax float64,
	maxDepth int,
	hasMaxDepth bool,
) []ID {
	g := geom.NewRayTestGeometry2(systemBounds, origin, dir, rangeMin, rangeMax)
	return Test(l, root, g, maxDepth, hasMaxDepth)
}

// TestRay3 is the 3D counterpart to TestRay2.
func TestRay3[ID ObjectID, IX SpatialIndex[IX]](
	l *Layer[IX, ID],
	root IX,
	systemBounds geom.Bounds3,
	origin, dir r3.Vector,
	rangeMin, rangeMax float64,
	maxDepth int,
	hasMaxDepth bool,
) []ID {
	g := geom.NewRayTestGeometry3(systemBounds, origin, dir, rangeMin, rangeMax)
	return Test(l, root, g, maxDepth, hasMaxDepth)
}
