// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package geom

import "github.com/golang/geo/r2"

// Bounds2 is an axis-aligned bounding box in 2D, used both as the
// world-space system bounds and as per-object query/extent bounds.
type Bounds2 struct {
	Min, Max r2.Point
}

// Contains reports whether o lies entirely within the receiver.
func (b Bounds2) Contains(o Bounds2) bool {
	return o.Min.X >= b.Min.X && o.Min.Y >= b.Min.Y &&
		o.Max.X <= b.Max.X && o.Max.Y <= b.Max.Y
}

// Overlaps reports whether the receiver and o share any area.
func (b Bounds2) Overlaps(o Bounds2) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y
}

// ToLocal projects o into the unit square the receiver covers.
func (b Bounds2) ToLocal(o Bounds2) Bounds2 {
	size := b.Max.Sub(b.Min)
	return Bounds2{
		Min: r2.Point{X: (o.Min.X - b.Min.X) / size.X, Y: (o.Min.Y - b.Min.Y) / size.Y},
		Max: r2.Point{X: (o.Max.X - b.Min.X) / size.X, Y: (o.Max.Y - b.Min.Y) / size.Y},
	}
}

// Split halves the receiver along both axes, returning the four
// quadrants in the bit-interleaved order morton.Index2D's Subdivide
// uses: child i has the upper X half iff bit 0 of i is set, the upper
// Y half iff bit 1 is set.
func (b Bounds2) Split() [4]Bounds2 {
	mid := r2.Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}

	var out [4]Bounds2
	for i := range out {
		lo, hi := b.Min, b.Max
		if i&1 != 0 {
			lo.X = mid.X
		} else {
			hi.X = mid.X
		}
		if i&2 != 0 {
			lo.Y = mid.Y
		} else {
			hi.Y = mid.Y
		}
		out[i] = Bounds2{Min: lo, Max: hi}
	}
	return out
}
