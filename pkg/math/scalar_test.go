package math

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		x, want float32
	}{
		{-2, -1},
		{0.5, 0.5},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, -1, 1); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(0.1) != 1 {
		t.Error("Sign returned wrong values")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 6, 0.25); got != 3 {
		t.Errorf("Lerp(2, 6, 0.25) = %v, want 3", got)
	}
}

func TestFastAtan(t *testing.T) {
	for x := float32(-20); x <= 20; x += 0.25 {
		want := math.Atan(float64(x))
		got := FastAtan(x)
		if math.Abs(float64(got)-want) > 0.002 {
			t.Errorf("FastAtan(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{3 * Pi / 2, -Pi / 2},
		{-3 * Pi / 2, Pi / 2},
		{2*Pi + 0.5, 0.5},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(float64(got-tt.want)) > 1e-4 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWrapAngleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		in   float32
	}{
		{"huge positive", 1e10},
		{"huge negative", -1e12},
		{"max float", math32.MaxFloat32},
		{"plus inf", math32.Inf(1)},
		{"minus inf", math32.Inf(-1)},
		{"nan", math32.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAngle(tt.in)
			if math32.IsNaN(got) || got < -Pi || got >= Pi {
				t.Errorf("WrapAngle(%v) = %v, want in [-Pi, Pi)", tt.in, got)
			}
		})
	}

	if got := WrapAngle(math32.Inf(1)); got != 0 {
		t.Errorf("WrapAngle(+Inf) = %v, want 0", got)
	}
	if got := WrapAngle(math32.NaN()); got != 0 {
		t.Errorf("WrapAngle(NaN) = %v, want 0", got)
	}
}

func TestWrapAnglePi(t *testing.T) {
	if got := WrapAngle(Pi); got != -Pi {
		t.Errorf("WrapAngle(Pi) = %v, want -Pi", got)
	}
	if got := WrapAngle(-Pi); got != -Pi {
		t.Errorf("WrapAngle(-Pi) = %v, want -Pi", got)
	}
}
