package math

import "github.com/chewxy/math32"

const (
	// Pi as float32.
	Pi = float32(3.14159265358979323846)

	// Ln2 is the natural log of 2.
	Ln2 = float32(0.69314718056)
)

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x > hi {
		return hi
	}
	if x < lo {
		return lo
	}
	return x
}

// Lerp returns (1-t)*a + t*b, evaluated as a + t*(b-a) so that
// t == 0 and a == b both return a exactly.
func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Sign returns -1, 0 or 1.
func Sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Square returns x*x.
func Square(x float32) float32 {
	return x * x
}

// FastAtan approximates atan(x) with a max error around 0.0015 rad.
func FastAtan(x float32) float32 {
	z := math32.Abs(x)
	w := z
	if z > 1 {
		w = 1 / z
	}
	y := (Pi/4)*w - w*(w-1)*(0.2447+0.0663*w)
	if z > 1 {
		y = Pi/2 - y
	}
	return math32.Copysign(y, x)
}

// WrapAngle maps an angle in radians to [-Pi, Pi). NaN and infinities map to 0.
func WrapAngle(a float32) float32 {
	if math32.IsNaN(a) || math32.IsInf(a, 0) {
		return 0
	}
	a = math32.Remainder(a, 2*Pi)
	if a >= Pi {
		a -= 2 * Pi
	}
	return a
}
