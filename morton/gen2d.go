// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package morton

import (
	"github.com/flatbroadphase/layer/geom"
	"github.com/golang/geo/r2"
)

// Generator2D implements layer.IndexGenerator[Index2D, geom.Bounds2]:
// it walks the quadtree from the root, forcing subdivision until
// minDepth, then stopping each branch at the smallest cell that fully
// contains bounds. An object that no minDepth cell fully contains is
// emitted as every minDepth cell it overlaps.
type Generator2D struct{}

// Generate returns the leaf cell codes covering bounds, which must
// already be expressed in the local [0,1]x[0,1] space of the index.
func (Generator2D) Generate(minDepth int, bounds geom.Bounds2) []Index2D {
	var out []Index2D
	root := geom.Bounds2{Min: r2.Point{X: 0, Y: 0}, Max: r2.Point{X: 1, Y: 1}}
	generate2D(RootIndex2D(), root, bounds, minDepth, &out)
	return out
}

func generate2D(cell Index2D, cellBounds, objBounds geom.Bounds2, minDepth int, out *[]Index2D) {
	if !cellBounds.Overlaps(objBounds) {
		return
	}
	children, ok := cell.Subdivide()
	if !ok {
		*out = append(*out, cell)
		return
	}
	childBounds := cellBounds.Split()
	if cell.Depth() >= minDepth {
		// Past minDepth, only a child holding the whole object is worth
		// descending into; otherwise the object stops at this cell.
		for i, child := range children {
			if childBounds[i].Contains(objBounds) {
				generate2D(child, childBounds[i], objBounds, minDepth, out)
				return
			}
		}
		*out = append(*out, cell)
		return
	}
	for i, child := range children {
		generate2D(child, childBounds[i], objBounds, minDepth, out)
	}
}
