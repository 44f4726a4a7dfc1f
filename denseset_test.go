package layer

import (
	"math"
	"testing"

	"github.com/flatbroadphase/layer/geom"
	"github.com/flatbroadphase/layer/morton"
)

func TestDensePickFindsNearestHit(t *testing.T) {
	t.Parallel()

	dl := NewDense[morton.Index2D](WithMinDepth[morton.Index2D, uint32](2))
	Extend(dl.Layer, unitSystemBounds(), morton.Generator2D{}, []ObjectBounds[geom.Bounds2, uint32]{
		{Bounds: box2(0.1, 0.1, 0.2, 0.2), ID: 1},
		{Bounds: box2(0.6, 0.6, 0.7, 0.7), ID: 2},
	})

	query := geom.NewBoxTestGeometry2(unitSystemBounds(), box2(0, 0, 1, 1))
	dist, id, ok := DensePick(dl, morton.RootIndex2D(), query, math.Inf(1), 0, false,
		func(g geom.BoxTestGeometry2, nearest float64, candidate uint32) float64 {
			if candidate == 1 {
				return 1
			}
			return 5
		})

	if !ok {
		t.Fatal("expected a pick result")
	}
	if id != 1 || dist != 1 {
		t.Errorf("expected (dist=1, id=1), got (dist=%v, id=%v)", dist, id)
	}
}

func TestDensePickDedupsAcrossCellsLikePick(t *testing.T) {
	t.Parallel()

	dl := NewDense[morton.Index2D](WithMinDepth[morton.Index2D, uint32](3))
	Extend(dl.Layer, unitSystemBounds(), morton.Generator2D{}, []ObjectBounds[geom.Bounds2, uint32]{
		{Bounds: box2(0.49, 0.49, 0.51, 0.51), ID: 1},
	})
	if dl.Len() < 2 {
		t.Fatalf("setup: expected object 1 to span multiple cells, got %d entries", dl.Len())
	}

	calls := 0
	query := geom.NewBoxTestGeometry2(unitSystemBounds(), unitSystemBounds())
	_, _, ok := DensePick(dl, morton.RootIndex2D(), query, math.Inf(1), 0, false,
		func(g geom.BoxTestGeometry2, nearest float64, candidate uint32) float64 {
			calls++
			return 1
		})
	if !ok {
		t.Fatal("expected a pick result")
	}
	if calls != 1 {
		t.Errorf("expected getDist invoked exactly once despite the object spanning %d cells, got %d calls", dl.Len(), calls)
	}
}

func TestDensePickRespectsMaxDist(t *testing.T) {
	t.Parallel()

	dl := NewDense[morton.Index2D](WithMinDepth[morton.Index2D, uint32](2))
	Extend(dl.Layer, unitSystemBounds(), morton.Generator2D{}, []ObjectBounds[geom.Bounds2, uint32]{
		{Bounds: box2(0.1, 0.1, 0.2, 0.2), ID: 1},
	})

	query := geom.NewBoxTestGeometry2(unitSystemBounds(), box2(0, 0, 1, 1))
	_, _, ok := DensePick(dl, morton.RootIndex2D(), query, 0.5, 0, false,
		func(g geom.BoxTestGeometry2, nearest float64, candidate uint32) float64 {
			return 10
		})
	if ok {
		t.Error("expected no pick result once every candidate's distance exceeds maxDist")
	}
}
