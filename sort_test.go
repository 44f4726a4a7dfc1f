package layer

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/flatbroadphase/layer/geom"
	"github.com/flatbroadphase/layer/morton"
)

func TestParSortMatchesSort(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(1, 2))
	a := New[morton.Index2D, int](WithMinDepth[morton.Index2D, int](3))
	objects := make([]ObjectBounds[geom.Bounds2, int], 5_000)
	for i := range objects {
		cx, cy := prng.Float64(), prng.Float64()
		half := 0.0005
		objects[i] = ObjectBounds[geom.Bounds2, int]{
			Bounds: box2(cx-half, cy-half, cx+half, cy+half),
			ID:     i,
		}
	}
	Extend(a, unitSystemBounds(), morton.Generator2D{}, objects)

	b := a.Clone()
	b.sorted = false

	a.Sort()
	b.ParSort()

	if len(a.tree) != len(b.tree) {
		t.Fatalf("length mismatch: %d vs %d", len(a.tree), len(b.tree))
	}
	for i := range a.tree {
		if a.tree[i].index.Compare(b.tree[i].index) != 0 || a.tree[i].id != b.tree[i].id {
			t.Fatalf("entries differ at index %d: %+v vs %+v", i, a.tree[i], b.tree[i])
		}
	}
	if !slices.IsSortedFunc(b.tree, compareEntry[morton.Index2D, int]) {
		t.Error("ParSort should leave the tree sorted")
	}
}

func TestParSortIsNoOpWhenAlreadySorted(t *testing.T) {
	t.Parallel()

	l := New[morton.Index2D, int]()
	Extend(l, unitSystemBounds(), morton.Generator2D{}, []ObjectBounds[geom.Bounds2, int]{
		{Bounds: box2(0.1, 0.1, 0.2, 0.2), ID: 1},
	})
	l.Sort()

	before := append([]entry[morton.Index2D, int](nil), l.tree...)
	l.ParSort()
	if len(l.tree) != len(before) {
		t.Fatalf("ParSort on an already-sorted tree changed its length")
	}
	for i := range before {
		if l.tree[i] != before[i] {
			t.Errorf("ParSort mutated an already-sorted tree at index %d", i)
		}
	}
}
