package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.Dot(n))))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}

	if got := (Quat{}).Normalize(); got != QuatIdentity() {
		t.Errorf("zero quaternion should normalize to identity, got %v", got)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Up, float32(math.Pi/2))

	// At t=0, should equal q1
	result0 := q1.Slerp(q2, 0)
	if math.Abs(float64(result0.W-q1.W)) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1")
	}

	// At t=1, should equal q2
	result1 := q1.Slerp(q2, 1)
	if math.Abs(float64(result1.W-q2.W)) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2")
	}

	// For 90 degree rotation, halfway should be 45 degrees
	result5 := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(math.Pi / 8))
	if math.Abs(float64(result5.W-expectedW)) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}

func TestQuatSlerpShortPath(t *testing.T) {
	q1 := QuatFromYaw(0.1)
	q2 := QuatFromYaw(0.3).Neg()

	mid := q1.Slerp(q2, 0.5)
	if got := mid.Yaw(); math.Abs(float64(got-0.2)) > 0.001 {
		t.Errorf("Slerp across hemispheres: yaw = %v, want 0.2", got)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	// Should have Y component and W = cos(45deg)
	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotateMatchesMathGL(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float32
		v     Vec3
	}{
		{"yaw 90 forward", Up, math.Pi / 2, Forward},
		{"yaw -30 diagonal", Up, -math.Pi / 6, Vec3{1, 0, 1}},
		{"pitch 45", Right, math.Pi / 4, Vec3{0, 2, 3}},
		{"oblique", Vec3{1, 1, 1}.Normalize(), 2.1, Vec3{-4, 0.5, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromAxisAngle(tt.axis, tt.angle)
			got := q.Rotate(tt.v)

			ref := mgl32.QuatRotate(tt.angle, mgl32.Vec3{tt.axis.X, tt.axis.Y, tt.axis.Z})
			want := ref.Rotate(mgl32.Vec3{tt.v.X, tt.v.Y, tt.v.Z})

			if got.Distance(Vec3{want[0], want[1], want[2]}) > 1e-4 {
				t.Errorf("Rotate: got %v, want %v", got, want)
			}

			back := q.InvRotate(got)
			if back.Distance(tt.v) > 1e-4 {
				t.Errorf("InvRotate(Rotate(v)): got %v, want %v", back, tt.v)
			}
		})
	}
}

func TestQuatYawRotatesForward(t *testing.T) {
	// Rotating +Z about +Y by a lands on (sin a, 0, cos a)
	q := QuatFromYaw(float32(math.Pi / 2))
	got := q.Rotate(Forward)
	if got.Distance(Right) > 1e-5 {
		t.Errorf("yaw 90 of Forward: got %v, want %v", got, Right)
	}

	for _, a := range []float32{-3, -1.2, 0, 0.4, 2.9} {
		if y := QuatFromYaw(a).Yaw(); math.Abs(float64(y-a)) > 1e-4 {
			t.Errorf("Yaw(QuatFromYaw(%v)) = %v", a, y)
		}
	}
}

func TestQuatMulComposes(t *testing.T) {
	a := QuatFromYaw(0.5)
	b := QuatFromYaw(0.25)
	got := a.Mul(b).Yaw()
	if math.Abs(float64(got-0.75)) > 1e-5 {
		t.Errorf("Mul yaw: got %v, want 0.75", got)
	}

	id := a.Mul(a.Inverse())
	if !sameRotation(id, QuatIdentity()) {
		t.Errorf("q * q⁻¹ should be identity, got %v", id)
	}
}

func TestScaledAngleAxisRoundTrip(t *testing.T) {
	rotations := []Quat{
		QuatIdentity(),
		QuatFromYaw(1.3),
		QuatFromAxisAngle(Vec3{1, 2, -1}.Normalize(), -0.7),
		QuatFromAxisAngle(Right, 1e-6),
	}

	for _, q := range rotations {
		v := q.ToScaledAngleAxis()
		back := QuatFromScaledAngleAxis(v)
		if !sameRotation(back, q) {
			t.Errorf("round trip of %v gave %v", q, back)
		}
	}

	v := QuatFromYaw(1.3).ToScaledAngleAxis()
	if v.Distance(Up.Scale(1.3)) > 1e-4 {
		t.Errorf("ToScaledAngleAxis of yaw 1.3: got %v, want %v", v, Up.Scale(1.3))
	}
}

func TestQuatAbs(t *testing.T) {
	q := QuatFromYaw(0.4).Neg()
	if q.Abs().W < 0 {
		t.Errorf("Abs should flip to W >= 0, got %v", q.Abs())
	}
}

func sameRotation(a, b Quat) bool {
	return math.Abs(float64(a.Dot(b))) > 1-1e-5
}
