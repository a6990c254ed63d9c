package math

import "github.com/chewxy/math32"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// quatEpsilon guards the log/exp maps near the identity.
const quatEpsilon = 1e-8

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s, c := math32.Sincos(angle / 2)
	return Quat{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// QuatFromYaw returns a rotation of angle radians about Up.
func QuatFromYaw(angle float32) Quat {
	return QuatFromAxisAngle(Up, angle)
}

// Normalize returns a normalized quaternion.
// Degenerate input falls back to identity.
func (q Quat) Normalize() Quat {
	length := math32.Sqrt(q.Dot(q))
	if length < 0.0001 {
		return QuatIdentity()
	}
	inv := 1 / length
	return Quat{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv, W: q.W * inv}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Neg returns -q, which encodes the same rotation.
func (q Quat) Neg() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Conjugate returns the conjugate. For unit quaternions this is the inverse.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the inverse rotation of a unit quaternion.
func (q Quat) Inverse() Quat {
	return q.Conjugate()
}

// Abs returns the representative with W >= 0, so interpolation
// and log maps take the short way round.
func (q Quat) Abs() Quat {
	if q.W < 0 {
		return q.Neg()
	}
	return q
}

// Mul multiplies two quaternions (combines rotations, other applied first).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Rotate applies the rotation to v (q * v * q⁻¹).
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// InvRotate applies the inverse rotation to v, taking a world vector into
// the local frame of q.
func (q Quat) InvRotate(v Vec3) Vec3 {
	return q.Conjugate().Rotate(v)
}

// Yaw returns the heading of the rotated Forward axis about Up, in radians.
func (q Quat) Yaw() float32 {
	f := q.Rotate(Forward)
	return math32.Atan2(f.X, f.Z)
}

// ToScaledAngleAxis returns axis*angle, the log map of q scaled by two.
func (q Quat) ToScaledAngleAxis() Vec3 {
	v := Vec3{q.X, q.Y, q.Z}
	length := v.Length()
	if length < quatEpsilon {
		return v.Scale(2)
	}
	halfAngle := math32.Acos(Clamp(q.W, -1, 1))
	return v.Scale(2 * halfAngle / length)
}

// QuatFromScaledAngleAxis is the inverse of ToScaledAngleAxis.
func QuatFromScaledAngleAxis(v Vec3) Quat {
	h := v.Scale(0.5)
	halfAngle := h.Length()
	if halfAngle < quatEpsilon {
		return Quat{X: h.X, Y: h.Y, Z: h.Z, W: 1}.Normalize()
	}
	s, c := math32.Sincos(halfAngle)
	s /= halfAngle
	return Quat{X: h.X * s, Y: h.Y * s, Z: h.Z * s, W: c}
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1].
func (q Quat) Slerp(other Quat, t float32) Quat {
	dot := q.Dot(other)

	// Take the shorter path
	if dot < 0 {
		other = other.Neg()
		dot = -dot
	}

	// Nearly parallel: lerp avoids dividing by sin(~0)
	if dot > 0.9995 {
		return q.Lerp(other, t)
	}

	theta0 := math32.Acos(dot)
	theta := theta0 * t
	sinTheta := math32.Sin(theta)
	sinTheta0 := math32.Sin(theta0)

	s0 := math32.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}

// Lerp performs normalized linear interpolation between two quaternions.
// Use Slerp for rotation interpolation; this is for simple blending.
func (q Quat) Lerp(other Quat, t float32) Quat {
	return Quat{
		X: q.X + t*(other.X-q.X),
		Y: q.Y + t*(other.Y-q.Y),
		Z: q.Z + t*(other.Z-q.Z),
		W: q.W + t*(other.W-q.W),
	}.Normalize()
}

// Angle returns the angle in radians between two rotations.
func (q Quat) Angle(other Quat) float32 {
	d := math32.Abs(q.Dot(other))
	return 2 * math32.Acos(Clamp(d, -1, 1))
}
