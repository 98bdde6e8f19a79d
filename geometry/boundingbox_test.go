package geometry

import "testing"

func TestBoxesOverlapTouching(t *testing.T) {
	a := FromExtrema(0, 1, 0, 1)
	b := FromExtrema(1, 2, 0, 1)
	if !BoxesOverlap(a, b) {
		t.Fatal("expected touching boxes to overlap")
	}
}

func TestBoxesOverlapDisjoint(t *testing.T) {
	a := FromExtrema(0, 1, 0, 1)
	b := FromExtrema(2, 3, 0, 1)
	if BoxesOverlap(a, b) {
		t.Fatal("expected disjoint boxes not to overlap")
	}
}

func TestVoidBoxNeverOverlaps(t *testing.T) {
	void := VoidBox()
	real := FromExtrema(-1e9, 1e9, -1e9, 1e9)
	if BoxesOverlap(void, real) {
		t.Fatal("expected void box never to overlap")
	}
}

func TestInflateGrowsOnEverySide(t *testing.T) {
	box := FromExtrema(0, 1, 0, 1).Inflate(0.5)
	if box.Min[0] != -0.5 || box.Max[0] != 1.5 {
		t.Fatalf("unexpected inflated box: %+v", box)
	}
}
