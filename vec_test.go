package colorfield

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxEq32(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -2, 0.5)

	if got := a.Add(b); got != V3(5, 0, 3.5) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V3(-3, 4, 2.5) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 1.5 {
		t.Errorf("Dot = %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x, y, z := V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)
	if got := x.Cross(y); got != z {
		t.Errorf("x cross y = %v", got)
	}
	if got := y.Cross(x); got != z.Scale(-1) {
		t.Errorf("y cross x = %v", got)
	}
	// Cross product is orthogonal to both operands.
	a, b := V3(1, 2, 3), V3(-2, 0.5, 4)
	c := a.Cross(b)
	if !approxEq32(c.Dot(a), 0, 1e-5) || !approxEq32(c.Dot(b), 0, 1e-5) {
		t.Errorf("cross not orthogonal: %v", c)
	}
}

func TestVec3LengthLerp(t *testing.T) {
	if got := V3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	mid := V3(0, 0, 0).Lerp(V3(2, 4, 6), 0.5)
	if mid != V3(1, 2, 3) {
		t.Errorf("Lerp midpoint = %v", mid)
	}
	if got := V3(1, 1, 1).Lerp(V3(9, 9, 9), 0); got != V3(1, 1, 1) {
		t.Errorf("Lerp t=0 = %v", got)
	}
}

func TestVec3Components(t *testing.T) {
	v := V3(1, 2, 3)
	for i, want := range []float32{1, 2, 3} {
		if got := v.Component(i); got != want {
			t.Errorf("Component(%d) = %v", i, got)
		}
	}
	if got := v.SetComponent(1, 9); got != V3(1, 9, 3) {
		t.Errorf("SetComponent = %v", got)
	}
	if v != V3(1, 2, 3) {
		t.Error("SetComponent mutated receiver")
	}
}

func TestVec4Helpers(t *testing.T) {
	v := V4(2, 4, 6, 2)
	if got := v.Vec3(); got != V3(2, 4, 6) {
		t.Errorf("Vec3 = %v", got)
	}
	if got := v.PerspectiveDivide(); got != V3(1, 2, 3) {
		t.Errorf("PerspectiveDivide = %v", got)
	}
}
