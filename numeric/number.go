package numeric

import "math"

// Number is the operation set formula code may rely on. N is the
// representation itself, so every operation returns the same representation
// it was called on.
//
// Scalar operands are always float64; representations with float32 storage
// round them on entry.
type Number[N any] interface {
	// Float decays the value to a plain float64 magnitude, discarding any
	// derivative information.
	Float() float64

	// Constant returns c in the representation of the receiver. For
	// automatic-differentiation values the result has the receiver's
	// derivative length and all derivatives zero.
	Constant(c float64) N

	Add(y N) N
	Sub(y N) N
	Mul(y N) N
	Div(y N) N
	Neg() N
	Inv() N

	AddScalar(c float64) N
	SubScalar(c float64) N
	MulScalar(c float64) N
	DivScalar(c float64) N

	Pow(y N) N
	PowScalar(e float64) N
	Sqrt() N
	Exp() N
	Log() N
	Log10() N

	Sin() N
	Cos() N
	Tan() N
	Asin() N
	Acos() N
	Atan() N
	Atan2(x N) N
	Sinh() N
	Cosh() N
	Tanh() N

	Abs() N
}

// Decay returns the plain magnitude of x.
func Decay[N Number[N]](x N) float64 {
	return x.Float()
}

// Scalar returns c in the representation of like.
func Scalar[N Number[N]](like N, c float64) N {
	return like.Constant(c)
}

// Less reports whether a's magnitude is below b's.
func Less[N Number[N]](a, b N) bool {
	return a.Float() < b.Float()
}

// Greater reports whether a's magnitude is above b's.
func Greater[N Number[N]](a, b N) bool {
	return a.Float() > b.Float()
}

// Equal reports whether a and b have the same magnitude. Derivatives are not
// compared.
func Equal[N Number[N]](a, b N) bool {
	return a.Float() == b.Float()
}

// Min returns the operand with the smaller magnitude, derivatives included.
// Ties return a.
func Min[N Number[N]](a, b N) N {
	if b.Float() < a.Float() {
		return b
	}
	return a
}

// Max returns the operand with the larger magnitude, derivatives included.
// Ties return a.
func Max[N Number[N]](a, b N) N {
	if b.Float() > a.Float() {
		return b
	}
	return a
}

// Clamp limits x to [lo, hi] by magnitude.
func Clamp[N Number[N]](x, lo, hi N) N {
	return Min(Max(x, lo), hi)
}

// Sq returns x*x.
func Sq[N Number[N]](x N) N {
	return x.Mul(x)
}

// IsNaN reports whether the magnitude of x is NaN.
func IsNaN[N Number[N]](x N) bool {
	return math.IsNaN(x.Float())
}

// IsFinite reports whether the magnitude of x is neither NaN nor infinite.
func IsFinite[N Number[N]](x N) bool {
	v := x.Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
