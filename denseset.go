// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package layer

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// DenseLayer is a Layer specialised to uint32 object ids, trading the
// map[ID]struct{} Pick uses for per-call dedup for a *bitset.BitSet.
// Worthwhile once ids are dense enough that a bitset beats a map on
// both allocation churn and cache behaviour.
//
// DenseLayer runs Scan/ParScan/Test unchanged on its embedded *Layer
// (pass dl.Layer); only DensePick takes a different path.
type DenseLayer[IX SpatialIndex[IX]] struct {
	*Layer[IX, uint32]

	processed *bitset.BitSet
}

// NewDense builds a DenseLayer ready for use.
func NewDense[IX SpatialIndex[IX]](opts ...Option[IX, uint32]) *DenseLayer[IX] {
	return &DenseLayer[IX]{
		Layer:     New(opts...),
		processed: bitset.New(0),
	}
}

// DensePick is DenseLayer's counterpart to [Pick], deduplicating
// candidates with a bitset keyed directly by id instead of a map.
func DensePick[IX SpatialIndex[IX], TG TestGeometry[TG]](
	dl *DenseLayer[IX],
	root IX,
	geom TG,
	maxDist float64,
	maxDepth int,
	hasMaxDepth bool,
	getDist GetDist[TG, uint32],
) (dist float64, id uint32, ok bool) {
	dl.Sort()
	dl.processed.ClearAll()

	var result uint32
	found := false

	best := testImpl(dl.tree, root, geom, maxDist, maxDepth, hasMaxDepth,
		func(geom TG, nearest float64, candidate uint32) float64 {
			if dl.processed.Test(uint(candidate)) {
				return math.Inf(1)
			}
			dl.processed.Set(uint(candidate))

			d := getDist(geom, nearest, candidate)
			if !isFinite(d) {
				return math.Inf(1)
			}
			if d < nearest {
				result = candidate
				found = true
			}
			return d
		})

	if !found {
		return 0, 0, false
	}
	return best, result, true
}
