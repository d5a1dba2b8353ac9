package shape

import (
	"testing"

	"github.com/gogpu/colorfield"
)

func TestFaceOrientation(t *testing.T) {
	// The first free axis must land on screen X, the second on screen Y.
	tests := []struct {
		fixed      int
		in         colorfield.Vec3
		wantX, wantY float32
	}{
		{0, colorfield.V3(0, 1, 2), 1, 2}, // free axes y, z
		{1, colorfield.V3(1, 0, 2), 1, 2}, // free axes x, z
		{2, colorfield.V3(1, 2, 0), 1, 2}, // free axes x, y
	}
	for _, tt := range tests {
		got := FaceOrientation(tt.fixed).TransformPoint(tt.in)
		if got.X != tt.wantX || got.Y != tt.wantY {
			t.Errorf("fixed axis %d: transformed %v to (%v, %v), want (%v, %v)",
				tt.fixed, tt.in, got.X, got.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestSliceFace(t *testing.T) {
	const sizeX, sizeY = 2.5, 2.0
	m := SliceFace(0, 0.5, sizeX, sizeY)

	if got, want := len(m.Vertices), 4; got != want {
		t.Fatalf("vertices = %d, want %d", got, want)
	}
	if got, want := len(m.Indices), 6; got != want {
		t.Fatalf("indices = %d, want %d", got, want)
	}

	for i, v := range m.Vertices {
		if v.Position.Z != 0 {
			t.Errorf("vertex %d: depth %v, want 0", i, v.Position.Z)
		}
		if v.Coord.X != 0.5 {
			t.Errorf("vertex %d: fixed coord %v, want 0.5", i, v.Coord.X)
		}
	}

	// Corner (free0=1, free1=1) sits at the top-right of the quad.
	for _, v := range m.Vertices {
		if v.Coord.Y == 1 && v.Coord.Z == 1 {
			if v.Position.X != sizeX/2 || v.Position.Y != sizeY/2 {
				t.Errorf("corner (1,1) at %v, want (%v, %v, 0)",
					v.Position, sizeX/2, sizeY/2)
			}
		}
		if v.Coord.Y == 0 && v.Coord.Z == 0 {
			if v.Position.X != -sizeX/2 || v.Position.Y != -sizeY/2 {
				t.Errorf("corner (0,0) at %v, want (%v, %v, 0)",
					v.Position, -sizeX/2, -sizeY/2)
			}
		}
	}
}
