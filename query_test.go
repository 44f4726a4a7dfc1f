package layer

import (
	"testing"

	"github.com/flatbroadphase/layer/geom"
	"github.com/flatbroadphase/layer/morton"
)

func TestTestBox2FindsOverlappingObjects(t *testing.T) {
	t.Parallel()

	l := New[morton.Index2D, int](WithMinDepth[morton.Index2D, int](2))
	Extend(l, unitSystemBounds(), morton.Generator2D{}, []ObjectBounds[geom.Bounds2, int]{
		{Bounds: box2(0.1, 0.1, 0.2, 0.2), ID: 1},
		{Bounds: box2(0.8, 0.8, 0.9, 0.9), ID: 2},
	})

	ids := TestBox2(l, morton.RootIndex2D(), unitSystemBounds(), box2(0.05, 0.05, 0.25, 0.25), 0, false)
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("expected only id 1 to match the query box, got %v", ids)
	}
}

func TestTestBox2DedupsRepeatedHitsFromMultiCellObjects(t *testing.T) {
	t.Parallel()

	l := New[morton.Index2D, int](WithMinDepth[morton.Index2D, int](3))
	Extend(l, unitSystemBounds(), morton.Generator2D{}, []ObjectBounds[geom.Bounds2, int]{
		{Bounds: box2(0.49, 0.49, 0.51, 0.51), ID: 1},
	})
	if l.Len() < 2 {
		t.Fatalf("setup: expected object 1 to span multiple cells, got %d entries", l.Len())
	}

	ids := TestBox2(l, morton.RootIndex2D(), unitSystemBounds(), unitSystemBounds(), 0, false)
	if len(ids) != 1 {
		t.Errorf("expected a single deduplicated hit, got %v", ids)
	}
}
