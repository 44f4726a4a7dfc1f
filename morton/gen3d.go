// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package morton

import (
	"github.com/flatbroadphase/layer/geom"
	"github.com/golang/geo/r3"
)

// Generator3D is the 3D counterpart to Generator2D.
type Generator3D struct{}

// Generate returns the leaf cell codes covering bounds, which must
// already be expressed in the local [0,1]^3 space of the index.
func (Generator3D) Generate(minDepth int, bounds geom.Bounds3) []Index3D {
	var out []Index3D
	root := geom.Bounds3{Min: r3.Vector{X: 0, Y: 0, Z: 0}, Max: r3.Vector{X: 1, Y: 1, Z: 1}}
	generate3D(RootIndex3D(), root, bounds, minDepth, &out)
	return out
}

func generate3D(cell Index3D, cellBounds, objBounds geom.Bounds3, minDepth int, out *[]Index3D) {
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
		for i, child := range children {
			if childBounds[i].Contains(objBounds) {
				generate3D(child, childBounds[i], objBounds, minDepth, out)
				return
			}
		}
		*out = append(*out, cell)
		return
	}
	for i, child := range children {
		generate3D(child, childBounds[i], objBounds, minDepth, out)
	}
}
