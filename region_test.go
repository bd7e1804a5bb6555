package glyphatlas

import (
	"image"
	"math"
	"testing"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestNewRegion(t *testing.T) {
	r := newRegion(image.Rect(1, 1, 6, 10), 151, 41)

	if r.X != 1 || r.Y != 1 || r.Width != 5 || r.Height != 9 {
		t.Errorf("pixel bounds = (%d,%d %dx%d), want (1,1 5x9)", r.X, r.Y, r.Width, r.Height)
	}

	want := [4]float32{1.5 / 151, 1.5 / 41, 5.5 / 151, 9.5 / 41}
	got := [4]float32{r.U0, r.V0, r.U1, r.V1}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Errorf("uv[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if r.Rect() != image.Rect(1, 1, 6, 10) {
		t.Errorf("Rect() = %v, want (1,1)-(6,10)", r.Rect())
	}
	if !r.IsValid() {
		t.Error("IsValid() = false for a recorded region")
	}
}

func TestNewRegion_SinglePixel(t *testing.T) {
	r := newRegion(image.Rect(3, 3, 4, 4), 8, 8)
	if r.U0 != r.U1 || r.V0 != r.V1 {
		t.Errorf("single pixel region has extent: %v", r)
	}
	if !approxEqual(r.U0, 3.5/8) {
		t.Errorf("U0 = %v, want %v", r.U0, 3.5/8)
	}
	if !r.IsValid() {
		t.Error("single pixel region should be valid")
	}
}

func TestRegion_ZeroIsInvalid(t *testing.T) {
	var r Region
	if r.IsValid() {
		t.Error("zero Region reports valid")
	}
	if r.String() == "" {
		t.Error("String() is empty")
	}
}
