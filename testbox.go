// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import "github.com/flatbroadphase/layer/geom"

// TestBox2 returns the ids of every object whose indexed cells overlap
// query, within a Layer indexed by morton.Index2D over geom.Bounds2.
// systemBounds must match the bounds passed to Extend.
func TestBox2[ID ObjectID, IX SpatialIndex[IX]](
	l *Layer[IX, ID],
	root IX,
	systemBounds, query geom.Bounds2,
	maxDepth int,
	hasMaxDepth bool,
) []ID {
	return Test(l, root, geom.NewBoxTestGeometry2(systemBounds, query), maxDepth, hasMaxDepth)
}

// TestBox3 is the 3D counterpart to TestBox2.
func TestBox3[ID ObjectID, IX SpatialIndex[IX]](
	l *Layer[IX, ID],
	root IX,
	systemBounds, query geom.Bounds3,
	maxDepth int,
	hasMaxDepth bool,
) []ID {
	return Test(l, root, geom.NewBoxTestGeometry3(systemBounds, query), maxDepth, hasMaxDepth)
}
