// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package morton

// maxDepth3D is the deepest a uint64 code can address: 3 bits consumed
// per level (21*3 = 63 bits, one bit held back).
const maxDepth3D = 21

// Index3D is the 3D counterpart to Index2D: an octree node identified
// by its path from the root, packed 3 bits per level into the high
// bits of a uint64.
type Index3D struct {
	code  uint64
	depth uint8
}

// RootIndex3D returns the depth-0 cell covering the whole local space.
func RootIndex3D() Index3D {
	return Index3D{}
}

// Depth reports how many subdivisions separate ix from the root.
func (ix Index3D) Depth() int {
	return int(ix.depth)
}

// Compare orders ix before other in a depth-first, parent-before-
// children Morton traversal.
func (ix Index3D) Compare(other Index3D) int {
	switch {
	case ix.code < other.code:
		return -1
	case ix.code > other.code:
		return 1
	case ix.depth < other.depth:
		return -1
	case ix.depth > other.depth:
		return 1
	default:
		return 0
	}
}

// Subdivide returns ix's eight children: child i has the upper X half
// iff bit 0 of i is set, upper Y iff bit 1, upper Z iff bit 2 — the
// convention geom.Bounds3.Split uses. ok is false at maxDepth3D.
func (ix Index3D) Subdivide() (children []Index3D, ok bool) {
	if ix.depth >= maxDepth3D {
		return nil, false
	}
	shift := 64 - 3*(uint(ix.depth)+1)
	children = make([]Index3D, 8)
	for i := range children {
		children[i] = Index3D{
			code:  ix.code | uint64(i)<<shift,
			depth: ix.depth + 1,
		}
	}
	return children, true
}

// Overlaps reports whether ix and other share any cell.
func (ix Index3D) Overlaps(other Index3D) bool {
	d := ix.depth
	if other.depth < d {
		d = other.depth
	}
	return sameCellAtDepth64(ix.code, other.code, 3*uint(d))
}

// SameCellAtDepth reports whether ix and other lie in the same cell
// when both are truncated to depth d.
func (ix Index3D) SameCellAtDepth(other Index3D, d int) bool {
	return sameCellAtDepth64(ix.code, other.code, 3*uint(d))
}
