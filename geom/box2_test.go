package geom

import (
	"testing"

	"github.com/golang/geo/r2"
)

func TestBoxTestGeometry2ShouldTest(t *testing.T) {
	t.Parallel()

	system := unitSquare2()
	query := Bounds2{Min: r2.Point{X: 0.1, Y: 0.1}, Max: r2.Point{X: 0.2, Y: 0.2}}
	g := NewBoxTestGeometry2(system, query)

	if !g.ShouldTest(0) {
		t.Error("root cell should overlap the query")
	}

	farCell := Bounds2{Min: r2.Point{X: 0.9, Y: 0.9}, Max: r2.Point{X: 1, Y: 1}}
	farGeom := BoxTestGeometry2{cell: farCell, query: query}
	if farGeom.ShouldTest(0) {
		t.Error("a cell disjoint from the query should not be tested")
	}
}

func TestBoxTestGeometry2Subdivide(t *testing.T) {
	t.Parallel()

	g := NewBoxTestGeometry2(unitSquare2(), unitSquare2())
	children := g.Subdivide()
	if len(children) != 4 {
		t.Fatalf("expected 4 children, got %d", len(children))
	}
	for i, c := range children {
		if c.query != g.query {
			t.Errorf("child %d: query should be carried over unchanged", i)
		}
	}
}
