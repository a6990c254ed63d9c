package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{3, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}

	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero Vec2.Normalize() = %v, want zero", got)
	}
}

func TestVec2ClampLength(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want float32
	}{
		{"inside", Vec2{0.3, 0.4}, 0.5},
		{"on edge", Vec2{0, 1}, 1},
		{"corner", Vec2{1, 1}, 1},
		{"zero", Vec2{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ClampLength(1).Length()
			if abs(got-tt.want) > 1e-5 {
				t.Errorf("ClampLength(%v) length = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVec2ToXZ(t *testing.T) {
	got := Vec2{0.25, -0.5}.ToXZ()
	want := Vec3{0.25, 0, -0.5}
	if got != want {
		t.Errorf("ToXZ() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Mul(t *testing.T) {
	got := Vec3{1, 2, 3}.Mul(Vec3{4, 0, -1})
	want := Vec3{4, 0, -3}
	if got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}

	got := Vec3Lerp(a, b, 0.5)
	want := Vec3{5, 10, 15}
	if got.Distance(want) > 0.001 {
		t.Errorf("Vec3Lerp: got %v, want %v", got, want)
	}
	if got := Vec3Lerp(a, b, 0); got != a {
		t.Errorf("Vec3Lerp at t=0: got %v, want %v", got, a)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
