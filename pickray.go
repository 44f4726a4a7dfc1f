// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/flatbroadphase/layer/geom"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// PickRay2 is [Pick] specialized for a ray query: it finds the closest
// object the ray from origin along dir hits within [0,maxDist], and
// returns the hit point alongside the distance and id. systemBounds
// should match the bounds passed to Extend.
func PickRay2[ID ObjectID, IX SpatialIndex[IX]](
	l *Layer[IX, ID],
	root IX,
	systemBounds geom.Bounds2,
	origin, dir r2.Point,
	maxDist float64,
	maxDepth int,
	hasMaxDepth bool,
	getDist GetDist[geom.RayTestGeometry2, ID],
) (dist float64, id ID, hit r2.Point, ok bool) {
	g := geom.NewRayTestGeometry2(systemBounds, origin, dir, 0, maxDist)
	d, pickedID, found := Pick(l, root, g, maxDist, maxDepth, hasMaxDepth, getDist)
	if !found {
		return 0, id, hit, false
	}
	return d, pickedID, origin.Add(dir.Mul(d)), true
}

// PickRay3 is the 3D counterpart to PickRay2.
func PickRay3[ID ObjectID, IX SpatialIndex[IX]](
	l *Layer[IX, ID],
	root IX,
	systemBounds geom.Bounds3,
	origin, dir r3.Vector,
	maxDist float64,
	maxDepth int,
	hasMaxDepth bool,
	getDist GetDist[geom.RayTestGeometry3, ID],
) (dist float64, id ID, hit r3.Vector, ok bool) {
	g := geom.NewRayTestGeometry3(systemBounds, origin, dir, 0, maxDist)
	d, pickedID, found := Pick(l, root, g, maxDist, maxDepth, hasMaxDepth, getDist)
	if !found {
		return 0, id, hit, false
	}
	return d, pickedID, origin.Add(dir.Mul(d)), true
}
