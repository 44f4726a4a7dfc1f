// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package geom

import "github.com/golang/geo/r3"

// Bounds3 is an axis-aligned bounding box in 3D.
type Bounds3 struct {
	Min, Max r3.Vector
}

// Contains reports whether o lies entirely within the receiver.
func (b Bounds3) Contains(o Bounds3) bool {
	return o.Min.X >= b.Min.X && o.Min.Y >= b.Min.Y && o.Min.Z >= b.Min.Z &&
		o.Max.X <= b.Max.X && o.Max.Y <= b.Max.Y && o.Max.Z <= b.Max.Z
}

// Overlaps reports whether the receiver and o share any volume.
func (b Bounds3) Overlaps(o Bounds3) bool {
	return b.Min.X <= o.Max.X && o.Min.X <= b.Max.X &&
		b.Min.Y <= o.Max.Y && o.Min.Y <= b.Max.Y &&
		b.Min.Z <= o.Max.Z && o.Min.Z <= b.Max.Z
}

// ToLocal projects o into the unit cube the receiver covers.
func (b Bounds3) ToLocal(o Bounds3) Bounds3 {
	size := b.Max.Sub(b.Min)
	return Bounds3{
		Min: r3.Vector{
			X: (o.Min.X - b.Min.X) / size.X,
			Y: (o.Min.Y - b.Min.Y) / size.Y,
			Z: (o.Min.Z - b.Min.Z) / size.Z,
		},
		Max: r3.Vector{
			X: (o.Max.X - b.Min.X) / size.X,
			Y: (o.Max.Y - b.Min.Y) / size.Y,
			Z: (o.Max.Z - b.Min.Z) / size.Z,
		},
	}
}

// Split eighths the receiver along all three axes, in the bit-
// interleaved order morton.Index3D's Subdivide uses: child i has the
// upper half of axis j iff bit j of i is set.
func (b Bounds3) Split() [8]Bounds3 {
	mid := r3.Vector{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
		Z: (b.Min.Z + b.Max.Z) / 2,
	}

	var out [8]Bounds3
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
		if i&4 != 0 {
			lo.Z = mid.Z
		} else {
			hi.Z = mid.Z
		}
		out[i] = Bounds3{Min: lo, Max: hi}
	}
	return out
}
