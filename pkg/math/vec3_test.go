package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	// Zero vector stays zero instead of producing NaN.
	z := Vec3{}.Normalize()
	if z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v, want zero", z)
	}
}

func TestVec3MaxComponent(t *testing.T) {
	cases := []struct {
		v    Vec3
		want float32
	}{
		{Vec3{1, 2, 3}, 3},
		{Vec3{5, 2, 3}, 5},
		{Vec3{1, 7, 3}, 7},
		{Vec3{-1, -2, -3}, -1},
	}
	for _, c := range cases {
		if got := c.v.MaxComponent(); got != c.want {
			t.Errorf("MaxComponent(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
