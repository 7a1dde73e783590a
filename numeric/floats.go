package numeric

import "math"

// Floats is the set of storage precisions supported for magnitudes and
// derivatives.
type Floats interface {
	float32 | float64
}

// MaxFinite returns the largest finite value representable by T.
func MaxFinite[T Floats]() T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return T(math.MaxFloat32)
	case float64:
		v := float64(math.MaxFloat64)
		return T(v)
	default:
		panic("unsupported float type")
	}
}

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value.
func Epsilon[T Floats]() T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return T(float32(math.Nextafter32(1, 2) - 1))
	case float64:
		return T(math.Nextafter(1, 2) - 1)
	default:
		panic("unsupported float type")
	}
}

// Sentinel returns the large-but-finite magnitude used in place of values
// that would overflow T. It is the square root of MaxFinite, so the product
// of two sentinels is still finite: about 1.8e19 for float32 and 1.3e154 for
// float64.
func Sentinel[T Floats]() T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return T(float32(math.Sqrt(math.MaxFloat32)))
	case float64:
		return T(math.Sqrt(math.MaxFloat64))
	default:
		panic("unsupported float type")
	}
}

// ClampFinite limits v to [-Sentinel, Sentinel]. NaN is returned unchanged.
func ClampFinite[T Floats](v T) T {
	s := Sentinel[T]()
	switch {
	case v > s:
		return s
	case v < -s:
		return -s
	}
	return v
}
