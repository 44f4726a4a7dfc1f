// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import "log/slog"

// Clear resets the index to empty. An empty, freshly cleared tree is
// considered sorted: "sorted" means no mutation has happened since the
// last sort, and an empty tree trivially satisfies that.
func (l *Layer[IX, ID]) Clear() {
	l.tree = l.tree[:0]
	l.sorted = true
}

// ObjectBounds pairs a world-space bounding volume with the object ID
// it belongs to, the element type accepted by [Extend].
type ObjectBounds[B any, ID ObjectID] struct {
	Bounds B
	ID     ID
}

// Extend appends objects to the Layer. For each object, if
// systemBounds does not contain its bounds, the ID is recorded in
// Invalid and the object is skipped; otherwise gen.Generate produces
// the cell codes at minDepth and they are appended to the tree.
//
// Extend is a free function rather than a method because it needs a
// type parameter (B, the bounds type) beyond the Layer's own IX/ID —
// Go does not allow a generic method to introduce new type parameters.
func Extend[IX SpatialIndex[IX], ID ObjectID, B any](
	l *Layer[IX, ID],
	systemBounds SystemBounds[B],
	gen IndexGenerator[IX, B],
	objects []ObjectBounds[B, ID],
) {
	if cap(l.tree)-len(l.tree) < len(objects) {
		grown := make([]entry[IX, ID], len(l.tree), len(l.tree)+len(objects))
		copy(grown, l.tree)
		l.tree = grown
	}

	added := false
	for _, obj := range objects {
		if !systemBounds.Contains(obj.Bounds) {
			l.invalid = append(l.invalid, obj.ID)
			continue
		}

		local := systemBounds.ToLocal(obj.Bounds)
		for _, idx := range gen.Generate(l.minDepth, local) {
			l.tree = append(l.tree, entry[IX, ID]{index: idx, id: obj.ID})
		}
		added = true
	}

	if added {
		l.sorted = false
	}
}

// Merge appends another Layer's (cell,id) entries into this one. If
// the other Layer's min_depth is smaller, this Layer adopts it and a
// warning is logged: a lower min_depth elsewhere means finer
// subdivision was skipped, and merging may increase duplication going
// forward.
func (l *Layer[IX, ID]) Merge(other *Layer[IX, ID]) {
	if other.minDepth < l.minDepth {
		slog.Warn("layer: merging layer of lesser min_depth",
			"self_min_depth", l.minDepth, "other_min_depth", other.minDepth)
		l.minDepth = other.minDepth
	}

	if len(other.tree) == 0 {
		return
	}

	l.tree = append(l.tree, other.tree...)
	l.sorted = false
}
