package numeric

import (
	"math"
	"testing"
)

func TestPrecisionLimits(t *testing.T) {
	if got := Epsilon[float64](); got != 0x1p-52 {
		t.Errorf("Epsilon[float64]: got %v, want %v", got, 0x1p-52)
	}
	if got := Epsilon[float32](); got != 0x1p-23 {
		t.Errorf("Epsilon[float32]: got %v, want %v", got, float32(0x1p-23))
	}
	if got := MaxFinite[float32](); got != math.MaxFloat32 {
		t.Errorf("MaxFinite[float32]: got %v", got)
	}

	s32 := Sentinel[float32]()
	if math.IsInf(float64(s32*s32), 0) {
		t.Errorf("Sentinel[float32] squared overflows: %v", s32)
	}
	if s32 < 1e19 || s32 > 2e19 {
		t.Errorf("Sentinel[float32]: got %v", s32)
	}
	s64 := Sentinel[float64]()
	if math.IsInf(s64*s64, 0) || s64 < 1e153 {
		t.Errorf("Sentinel[float64]: got %v", s64)
	}
}

func TestClampFinite(t *testing.T) {
	s := Sentinel[float32]()
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{-3, -3},
		{float32(math.Inf(1)), s},
		{float32(math.Inf(-1)), -s},
		{math.MaxFloat32, s},
		{s, s},
	}
	for _, tt := range tests {
		if got := ClampFinite(tt.in); got != tt.want {
			t.Errorf("ClampFinite(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := ClampFinite(math.NaN()); !math.IsNaN(got) {
		t.Errorf("ClampFinite(NaN): got %v", got)
	}
}
