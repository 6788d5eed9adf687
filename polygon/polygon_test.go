package polygon

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/splinefit"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(splinefit.P(0, 0)).Knot(splinefit.P(1, 3)).Knot(splinefit.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	if got, want := AsString(pg), "(0,0) -- (1,3) -- (3,0) -- cycle"; got != want {
		t.Fatalf("AsString mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(splinefit.P(0, 5), splinefit.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	min, max := box.BoundingBox()
	if !min.Equal(splinefit.P(0, 1)) || !max.Equal(splinefit.P(4, 5)) {
		t.Errorf("unexpected bounding box %v–%v", min, max)
	}
}

func TestPickBoxEnclosesBorder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := PickBox(splinefit.P(100, 100), 5)
	for _, p := range []splinefit.Pair{
		splinefit.P(100, 100), splinefit.P(95, 95), splinefit.P(105, 100), splinefit.P(100, 105),
	} {
		if !box.Encloses(p) {
			t.Errorf("expected %v to be enclosed", p)
		}
	}
	for _, p := range []splinefit.Pair{splinefit.P(105.5, 100), splinefit.P(100, 94)} {
		if box.Encloses(p) {
			t.Errorf("expected %v not to be enclosed", p)
		}
	}
}

func TestTriangleEncloses(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := NullPolygon().Knot(splinefit.P(0, 0)).Knot(splinefit.P(4, 0)).Knot(splinefit.P(0, 4)).Cycle()
	if !tri.Encloses(splinefit.P(1, 1)) {
		t.Errorf("expected (1,1) inside triangle")
	}
	if tri.Encloses(splinefit.P(3, 3)) {
		t.Errorf("expected (3,3) outside triangle")
	}
	if NullPolygon().Encloses(splinefit.Origin) {
		t.Errorf("empty polygon must not enclose anything")
	}
}

func TestBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := FromPairs([]splinefit.Pair{splinefit.P(1, 1), splinefit.P(2, 7)})
	b := FromPairs([]splinefit.Pair{splinefit.P(-3, 2), splinefit.P(0, 4)})
	min, max := Bounds(a, NullPolygon(), nil, b)
	if !min.Equal(splinefit.P(-3, 1)) || !max.Equal(splinefit.P(2, 7)) {
		t.Errorf("unexpected bounds %v–%v", min, max)
	}
	min, max = Bounds()
	if !min.IsOrigin() || !max.IsOrigin() {
		t.Errorf("expected empty bounds at origin, got %v–%v", min, max)
	}
}
