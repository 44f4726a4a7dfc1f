package layer

import (
	"testing"

	"github.com/flatbroadphase/layer/geom"
	"github.com/flatbroadphase/layer/morton"
)

func TestTestImplPanicsWhenSliceHeadPrecedesCell(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic for a cell/slice precondition violation")
		} else if _, ok := r.(*InvariantError); !ok {
			t.Fatalf("expected *InvariantError, got %T: %v", r, r)
		}
	}()

	root := morton.RootIndex2D()
	children, _ := root.Subdivide()

	// A tree whose only entry lives under children[1] but is handed to
	// testImpl tagged with cell children[0]: the two don't overlap,
	// violating assertContained's "cell must overlap slice tail" check.
	tree := []entry[morton.Index2D, int]{{index: children[1], id: 1}}
	q := geom.NewBoxTestGeometry2(
		geom.Bounds2{},
		geom.Bounds2{},
	)
	testImpl(tree, children[0], q, 1, 0, false, func(geom.BoxTestGeometry2, float64, int) float64 { return 1 })
}

func TestTestImplRespectsMaxDepth(t *testing.T) {
	t.Parallel()

	l := New[morton.Index2D, int](WithMinDepth[morton.Index2D, int](4))
	Extend(l, unitSystemBounds(), morton.Generator2D{}, []ObjectBounds[geom.Bounds2, int]{
		{Bounds: box2(0.1, 0.1, 0.2, 0.2), ID: 1},
	})

	ids := TestBox2(l, morton.RootIndex2D(), unitSystemBounds(), unitSystemBounds(), 1, true)
	if len(ids) != 1 {
		t.Errorf("expected the maxDepth cutoff to still surface the object, got %v", ids)
	}
}
