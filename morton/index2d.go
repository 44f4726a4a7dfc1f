// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package morton

import "math/bits"

// maxDepth2D is the deepest a uint64 code can address: 2 bits consumed
// per level, one level held back so the all-ones code is never reached.
const maxDepth2D = 31

// Index2D is a node in an implicit quadtree, identified by its path
// from the root. The path is packed 2 bits per level into the high
// bits of code, left-justified so that an ancestor's code is a prefix
// of all its descendants' codes and comparing codes, with depth
// breaking ties (see Compare), yields a parent-before-children,
// Morton-ordered traversal.
type Index2D struct {
	code  uint64
	depth uint8
}

// RootIndex2D returns the depth-0 cell covering the whole local space.
func RootIndex2D() Index2D {
	return Index2D{}
}

// Depth reports how many subdivisions separate ix from the root.
func (ix Index2D) Depth() int {
	return int(ix.depth)
}

// Compare orders ix before other when it sorts earlier in a
// depth-first, parent-before-children Morton traversal.
func (ix Index2D) Compare(other Index2D) int {
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

// Subdivide returns ix's four children in bit-interleaved order:
// child i has the upper X half iff bit 0 of i is set, the upper Y half
// iff bit 1 is set — the same convention geom.Bounds2.Split uses. ok
// is false once maxDepth2D is reached.
func (ix Index2D) Subdivide() (children []Index2D, ok bool) {
	if ix.depth >= maxDepth2D {
		return nil, false
	}
	shift := 64 - 2*(uint(ix.depth)+1)
	children = make([]Index2D, 4)
	for i := range children {
		children[i] = Index2D{
			code:  ix.code | uint64(i)<<shift,
			depth: ix.depth + 1,
		}
	}
	return children, true
}

// Overlaps reports whether ix and other share any cell: true iff one
// is an ancestor of the other (or they're equal), i.e. the shorter of
// the two paths is a prefix of the longer.
func (ix Index2D) Overlaps(other Index2D) bool {
	d := ix.depth
	if other.depth < d {
		d = other.depth
	}
	return sameCellAtDepth64(ix.code, other.code, 2*uint(d))
}

// SameCellAtDepth reports whether ix and other lie in the same cell
// when both are truncated to depth d.
func (ix Index2D) SameCellAtDepth(other Index2D, d int) bool {
	return sameCellAtDepth64(ix.code, other.code, 2*uint(d))
}

// sameCellAtDepth64 reports whether a and b agree on their top nbits
// most significant bits, shared by Index2D (2 bits/level) and Index3D
// (3 bits/level): callers pass nbits = bitsPerLevel * depth. a and b
// agree on a prefix of that length iff their XOR has at least that
// many leading zeros.
func sameCellAtDepth64(a, b uint64, nbits uint) bool {
	if nbits == 0 {
		return true
	}
	if nbits > 64 {
		nbits = 64
	}
	return bits.LeadingZeros64(a^b) >= int(nbits)
}
