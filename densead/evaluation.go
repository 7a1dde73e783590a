package densead

import (
	"fmt"
	"math"
	"strings"

	"github.com/ajroetker/go-densead/numeric"
)

// Evaluation is the value of a function together with its partial
// derivatives with respect to Len() independent variables.
type Evaluation[T numeric.Floats, D Derivs[T, D]] struct {
	value T
	deriv D
}

var (
	_ numeric.Number[Evaluation[float64, Fixed2[float64]]]  = Evaluation[float64, Fixed2[float64]]{}
	_ numeric.Number[Evaluation[float32, Dynamic[float32]]] = Evaluation[float32, Dynamic[float32]]{}
)

// New returns an Evaluation with the given value and derivatives. The
// derivative vector is copied.
func New[T numeric.Floats, D Derivs[T, D]](value T, deriv D) Evaluation[T, D] {
	return Evaluation[T, D]{value: value, deriv: deriv.Scale(1)}
}

// Constant returns an Evaluation of a function that does not depend on any
// independent variable. With Dynamic storage the result has length zero; use
// DynamicConstant or Evaluation.Constant to get a specific length.
func Constant[T numeric.Floats, D Derivs[T, D]](value T) Evaluation[T, D] {
	var d D
	return Evaluation[T, D]{value: value, deriv: d.Zero()}
}

// Variable returns the Evaluation of the independent variable idx at value:
// derivative idx is one and all others are zero.
func Variable[T numeric.Floats, D Derivs[T, D]](value T, idx int) Evaluation[T, D] {
	var d D
	if idx < 0 || idx >= d.Len() {
		numeric.PanicIndex("Variable", idx, d.Len())
	}
	return Evaluation[T, D]{value: value, deriv: d.Unit(idx)}
}

// DynamicConstant returns a constant with n tracked derivatives.
func DynamicConstant[T numeric.Floats](value T, n int) Evaluation[T, Dynamic[T]] {
	if n < 0 {
		numeric.PanicIndex("DynamicConstant", n, 0)
	}
	return Evaluation[T, Dynamic[T]]{value: value, deriv: make(Dynamic[T], n)}
}

// DynamicVariable returns independent variable idx of n at value.
func DynamicVariable[T numeric.Floats](value T, n, idx int) Evaluation[T, Dynamic[T]] {
	if idx < 0 || idx >= n {
		numeric.PanicIndex("DynamicVariable", idx, n)
	}
	return Evaluation[T, Dynamic[T]]{value: value, deriv: make(Dynamic[T], n).Unit(idx)}
}

// Value returns the magnitude.
func (x Evaluation[T, D]) Value() T { return x.value }

// Float returns the magnitude as a float64.
func (x Evaluation[T, D]) Float() float64 { return float64(x.value) }

// Len returns the number of tracked derivatives.
func (x Evaluation[T, D]) Len() int { return x.deriv.Len() }

// Derivative returns the partial derivative with respect to independent i.
func (x Evaluation[T, D]) Derivative(i int) T {
	if i < 0 || i >= x.deriv.Len() {
		numeric.PanicIndex("Derivative", i, x.deriv.Len())
	}
	return x.deriv.At(i)
}

// Derivatives returns a copy of the derivative vector.
func (x Evaluation[T, D]) Derivatives() []T {
	out := make([]T, x.deriv.Len())
	for i := range out {
		out[i] = x.deriv.At(i)
	}
	return out
}

// Constant returns c with the receiver's derivative length and no dependence
// on any independent variable.
func (x Evaluation[T, D]) Constant(c float64) Evaluation[T, D] {
	return Evaluation[T, D]{value: T(c), deriv: x.deriv.Zero()}
}

// WithValue returns a copy with the magnitude replaced.
func (x Evaluation[T, D]) WithValue(v T) Evaluation[T, D] {
	return Evaluation[T, D]{value: v, deriv: x.deriv}
}

// WithDerivative returns a copy with derivative i replaced.
func (x Evaluation[T, D]) WithDerivative(i int, v T) Evaluation[T, D] {
	if i < 0 || i >= x.deriv.Len() {
		numeric.PanicIndex("WithDerivative", i, x.deriv.Len())
	}
	return Evaluation[T, D]{value: x.value, deriv: x.deriv.Set(i, v)}
}

// WithDerivativesOf returns the receiver's magnitude with o's derivatives.
func (x Evaluation[T, D]) WithDerivativesOf(o Evaluation[T, D]) Evaluation[T, D] {
	x.match("WithDerivativesOf", o)
	return Evaluation[T, D]{value: x.value, deriv: o.deriv}
}

func (x Evaluation[T, D]) match(op string, y Evaluation[T, D]) {
	if n, m := x.deriv.Len(), y.deriv.Len(); n != m {
		numeric.PanicLengthMismatch(op, n, m)
	}
}

// unary applies the chain rule for f(x) with f(x) = v and f'(x) = dfdx.
func (x Evaluation[T, D]) unary(v, dfdx T) Evaluation[T, D] {
	return Evaluation[T, D]{value: v, deriv: x.deriv.Scale(dfdx)}
}

// binary applies the chain rule for f(x, y) with partials dfdx and dfdy.
func (x Evaluation[T, D]) binary(y Evaluation[T, D], v, dfdx, dfdy T) Evaluation[T, D] {
	return Evaluation[T, D]{value: v, deriv: x.deriv.Combine(dfdx, y.deriv, dfdy)}
}

// steep returns the derivative of a function with infinite slope at x:
// ±Inf where x's derivative is nonzero, zero elsewhere.
func (x Evaluation[T, D]) steep(v T) Evaluation[T, D] {
	d := x.deriv.Zero()
	for i := 0; i < d.Len(); i++ {
		if di := x.deriv.At(i); di != 0 {
			d = d.Set(i, T(math.Copysign(math.Inf(1), float64(di))))
		}
	}
	return Evaluation[T, D]{value: v, deriv: d}
}

func (x Evaluation[T, D]) Add(y Evaluation[T, D]) Evaluation[T, D] {
	x.match("Add", y)
	return x.binary(y, x.value+y.value, 1, 1)
}

func (x Evaluation[T, D]) Sub(y Evaluation[T, D]) Evaluation[T, D] {
	x.match("Sub", y)
	return x.binary(y, x.value-y.value, 1, -1)
}

// Mul follows the product rule (uv)' = u'v + uv'.
func (x Evaluation[T, D]) Mul(y Evaluation[T, D]) Evaluation[T, D] {
	x.match("Mul", y)
	return x.binary(y, x.value*y.value, y.value, x.value)
}

// Div follows the quotient rule (u/v)' = u'/v - u v'/v². A divisor with zero
// magnitude panics with numeric.ErrDivisionByZero.
func (x Evaluation[T, D]) Div(y Evaluation[T, D]) Evaluation[T, D] {
	x.match("Div", y)
	if y.value == 0 {
		numeric.PanicDivisionByZero("Div")
	}
	v := x.value / y.value
	return x.binary(y, v, 1/y.value, -v/y.value)
}

func (x Evaluation[T, D]) Neg() Evaluation[T, D] {
	return x.unary(-x.value, -1)
}

// Inv returns 1/x.
func (x Evaluation[T, D]) Inv() Evaluation[T, D] {
	if x.value == 0 {
		numeric.PanicDivisionByZero("Inv")
	}
	v := 1 / x.value
	return x.unary(v, -v*v)
}

func (x Evaluation[T, D]) AddScalar(c float64) Evaluation[T, D] {
	return Evaluation[T, D]{value: x.value + T(c), deriv: x.deriv}
}

func (x Evaluation[T, D]) SubScalar(c float64) Evaluation[T, D] {
	return Evaluation[T, D]{value: x.value - T(c), deriv: x.deriv}
}

func (x Evaluation[T, D]) MulScalar(c float64) Evaluation[T, D] {
	return x.unary(x.value*T(c), T(c))
}

func (x Evaluation[T, D]) DivScalar(c float64) Evaluation[T, D] {
	if T(c) == 0 {
		numeric.PanicDivisionByZero("DivScalar")
	}
	return x.unary(x.value/T(c), 1/T(c))
}

// ScalarSub returns c - x.
func ScalarSub[T numeric.Floats, D Derivs[T, D]](c float64, x Evaluation[T, D]) Evaluation[T, D] {
	return x.unary(T(c)-x.value, -1)
}

// ScalarDiv returns c / x.
func ScalarDiv[T numeric.Floats, D Derivs[T, D]](c float64, x Evaluation[T, D]) Evaluation[T, D] {
	if x.value == 0 {
		numeric.PanicDivisionByZero("ScalarDiv")
	}
	v := T(c) / x.value
	return x.unary(v, -v/x.value)
}

// PowScalar returns x**e.
//
// At a zero base the derivative is taken from its analytic limit rather than
// from e*x**(e-1):
//
//	PowScalar(0, 0)       = 1, derivative 0
//	PowScalar(0, 1)       = 0, derivative dx
//	PowScalar(0, e > 1)   = 0, derivative 0
//	PowScalar(0, 0<e<1)   = 0, derivative ±Inf where dx != 0
//	PowScalar(0, e < 0)   panics with numeric.ErrDivisionByZero
func (x Evaluation[T, D]) PowScalar(e float64) Evaluation[T, D] {
	n := T(e)
	switch {
	case n == 0:
		return Evaluation[T, D]{value: 1, deriv: x.deriv.Zero()}
	case n == 1:
		return x
	case x.value == 0:
		switch {
		case n < 0:
			numeric.PanicDivisionByZero("PowScalar")
		case n > 1:
			return Evaluation[T, D]{value: 0, deriv: x.deriv.Zero()}
		}
		return x.steep(0)
	}
	u := float64(x.value)
	v := T(math.Pow(u, float64(n)))
	return x.unary(v, n*T(math.Pow(u, float64(n)-1)))
}

// Pow returns x**y, differentiating with respect to both base and exponent.
// A zero base follows the PowScalar rules; the exponent term vanishes there
// for y > 0.
func (x Evaluation[T, D]) Pow(y Evaluation[T, D]) Evaluation[T, D] {
	x.match("Pow", y)
	if y.deriv.IsZero() {
		return x.PowScalar(float64(y.value))
	}
	if x.value == 0 {
		if y.value <= 0 {
			numeric.PanicDivisionByZero("Pow")
		}
		return x.PowScalar(float64(y.value))
	}
	u, w := float64(x.value), float64(y.value)
	v := math.Pow(u, w)
	return x.binary(y, T(v), T(w*math.Pow(u, w-1)), T(v*math.Log(u)))
}

// Sqrt returns the square root. At zero the slope is infinite, so only
// derivatives that are already nonzero become ±Inf.
func (x Evaluation[T, D]) Sqrt() Evaluation[T, D] {
	if x.value == 0 {
		return x.steep(0)
	}
	v := T(math.Sqrt(float64(x.value)))
	return x.unary(v, 0.5/v)
}

func (x Evaluation[T, D]) Exp() Evaluation[T, D] {
	v := T(math.Exp(float64(x.value)))
	return x.unary(v, v)
}

// Log returns the natural logarithm. A zero argument panics with
// numeric.ErrDivisionByZero because the derivative 1/x is undefined.
func (x Evaluation[T, D]) Log() Evaluation[T, D] {
	if x.value == 0 {
		numeric.PanicDivisionByZero("Log")
	}
	return x.unary(T(math.Log(float64(x.value))), 1/x.value)
}

func (x Evaluation[T, D]) Log10() Evaluation[T, D] {
	if x.value == 0 {
		numeric.PanicDivisionByZero("Log10")
	}
	return x.unary(T(math.Log10(float64(x.value))), T(1/(float64(x.value)*math.Ln10)))
}

func (x Evaluation[T, D]) Sin() Evaluation[T, D] {
	s, c := math.Sincos(float64(x.value))
	return x.unary(T(s), T(c))
}

func (x Evaluation[T, D]) Cos() Evaluation[T, D] {
	s, c := math.Sincos(float64(x.value))
	return x.unary(T(c), T(-s))
}

func (x Evaluation[T, D]) Tan() Evaluation[T, D] {
	t := math.Tan(float64(x.value))
	return x.unary(T(t), T(1+t*t))
}

func (x Evaluation[T, D]) Asin() Evaluation[T, D] {
	u := float64(x.value)
	r := 1 - u*u
	if r == 0 {
		numeric.PanicDivisionByZero("Asin")
	}
	return x.unary(T(math.Asin(u)), T(1/math.Sqrt(r)))
}

func (x Evaluation[T, D]) Acos() Evaluation[T, D] {
	u := float64(x.value)
	r := 1 - u*u
	if r == 0 {
		numeric.PanicDivisionByZero("Acos")
	}
	return x.unary(T(math.Acos(u)), T(-1/math.Sqrt(r)))
}

func (x Evaluation[T, D]) Atan() Evaluation[T, D] {
	u := float64(x.value)
	return x.unary(T(math.Atan(u)), T(1/(1+u*u)))
}

// Atan2 returns atan2(x, w), the angle of the point (w, x).
func (x Evaluation[T, D]) Atan2(w Evaluation[T, D]) Evaluation[T, D] {
	x.match("Atan2", w)
	a, b := float64(x.value), float64(w.value)
	r := a*a + b*b
	if r == 0 {
		numeric.PanicDivisionByZero("Atan2")
	}
	return x.binary(w, T(math.Atan2(a, b)), T(b/r), T(-a/r))
}

func (x Evaluation[T, D]) Sinh() Evaluation[T, D] {
	u := float64(x.value)
	return x.unary(T(math.Sinh(u)), T(math.Cosh(u)))
}

func (x Evaluation[T, D]) Cosh() Evaluation[T, D] {
	u := float64(x.value)
	return x.unary(T(math.Cosh(u)), T(math.Sinh(u)))
}

func (x Evaluation[T, D]) Tanh() Evaluation[T, D] {
	t := math.Tanh(float64(x.value))
	return x.unary(T(t), T(1-t*t))
}

// Abs returns |x|. At zero the derivative is passed through unchanged.
func (x Evaluation[T, D]) Abs() Evaluation[T, D] {
	if x.value < 0 {
		return x.Neg()
	}
	return x
}

// Min returns the operand with the smaller magnitude. Ties return x.
func (x Evaluation[T, D]) Min(y Evaluation[T, D]) Evaluation[T, D] {
	x.match("Min", y)
	if y.value < x.value {
		return y
	}
	return x
}

// Max returns the operand with the larger magnitude. Ties return x.
func (x Evaluation[T, D]) Max(y Evaluation[T, D]) Evaluation[T, D] {
	x.match("Max", y)
	if y.value > x.value {
		return y
	}
	return x
}

// Comparisons look at magnitudes only.

func (x Evaluation[T, D]) Less(y Evaluation[T, D]) bool {
	x.match("Less", y)
	return x.value < y.value
}

func (x Evaluation[T, D]) LessEqual(y Evaluation[T, D]) bool {
	x.match("LessEqual", y)
	return x.value <= y.value
}

func (x Evaluation[T, D]) Greater(y Evaluation[T, D]) bool {
	x.match("Greater", y)
	return x.value > y.value
}

func (x Evaluation[T, D]) GreaterEqual(y Evaluation[T, D]) bool {
	x.match("GreaterEqual", y)
	return x.value >= y.value
}

func (x Evaluation[T, D]) Equal(y Evaluation[T, D]) bool {
	x.match("Equal", y)
	return x.value == y.value
}

// Cmp returns -1, 0 or +1 depending on whether x's magnitude is below, equal
// to, or above y's. NaN compares as equal to everything.
func (x Evaluation[T, D]) Cmp(y Evaluation[T, D]) int {
	x.match("Cmp", y)
	switch {
	case x.value < y.value:
		return -1
	case x.value > y.value:
		return 1
	}
	return 0
}

func (x Evaluation[T, D]) IsNaN() bool { return math.IsNaN(float64(x.value)) }
func (x Evaluation[T, D]) IsInf() bool { return math.IsInf(float64(x.value), 0) }

// IsFinite reports whether the magnitude is neither NaN nor infinite.
func (x Evaluation[T, D]) IsFinite() bool {
	return !x.IsNaN() && !x.IsInf()
}

// String formats x as "v: <value> / d: <d0> <d1> ...".
func (x Evaluation[T, D]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "v: %v / d:", x.value)
	for i := 0; i < x.deriv.Len(); i++ {
		fmt.Fprintf(&sb, " %v", x.deriv.At(i))
	}
	return sb.String()
}
