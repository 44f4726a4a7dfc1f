package morton

import (
	"testing"

	"github.com/flatbroadphase/layer/geom"
	"github.com/golang/geo/r3"
)

func TestGenerator3DRespectsMinDepth(t *testing.T) {
	t.Parallel()

	bounds := geom.Bounds3{Min: r3.Vector{X: 0.1, Y: 0.1, Z: 0.1}, Max: r3.Vector{X: 0.2, Y: 0.2, Z: 0.2}}

	for minDepth := 0; minDepth <= 3; minDepth++ {
		indices := Generator3D{}.Generate(minDepth, bounds)
		if len(indices) == 0 {
			t.Fatalf("minDepth %d: expected at least one index", minDepth)
		}
		for _, ix := range indices {
			if ix.Depth() < minDepth {
				t.Errorf("minDepth %d: got index at depth %d", minDepth, ix.Depth())
			}
		}
	}
}

func TestGenerator3DSingleCellWhenWellContained(t *testing.T) {
	t.Parallel()

	bounds := geom.Bounds3{Min: r3.Vector{X: 0.01, Y: 0.01, Z: 0.01}, Max: r3.Vector{X: 0.02, Y: 0.02, Z: 0.02}}
	indices := Generator3D{}.Generate(0, bounds)
	if len(indices) != 1 {
		t.Fatalf("expected a single covering cell, got %d", len(indices))
	}
}
