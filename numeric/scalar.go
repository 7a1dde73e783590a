package numeric

import "math"

// Float64 is the plain float64 representation of Number.
type Float64 float64

// Float32 is the plain float32 representation of Number. Transcendental
// functions are evaluated in float64 and rounded back.
type Float32 float32

var (
	_ Number[Float64] = Float64(0)
	_ Number[Float32] = Float32(0)
)

func quotient[T Floats](op string, a, b T) T {
	if b == 0 {
		PanicDivisionByZero(op)
	}
	return a / b
}

func power[T Floats](x, e T) T {
	if x == 0 && e < 0 {
		PanicDivisionByZero("Pow")
	}
	return T(math.Pow(float64(x), float64(e)))
}

func logarithm[T Floats](op string, f func(float64) float64, x T) T {
	if x == 0 {
		PanicDivisionByZero(op)
	}
	return T(f(float64(x)))
}

func (x Float64) Float() float64           { return float64(x) }
func (x Float64) Constant(c float64) Float64 { return Float64(c) }

func (x Float64) Add(y Float64) Float64 { return x + y }
func (x Float64) Sub(y Float64) Float64 { return x - y }
func (x Float64) Mul(y Float64) Float64 { return x * y }
func (x Float64) Div(y Float64) Float64 { return Float64(quotient("Div", float64(x), float64(y))) }
func (x Float64) Neg() Float64          { return -x }
func (x Float64) Inv() Float64          { return Float64(quotient("Inv", 1, float64(x))) }

func (x Float64) AddScalar(c float64) Float64 { return x + Float64(c) }
func (x Float64) SubScalar(c float64) Float64 { return x - Float64(c) }
func (x Float64) MulScalar(c float64) Float64 { return x * Float64(c) }
func (x Float64) DivScalar(c float64) Float64 { return Float64(quotient("DivScalar", float64(x), float64(c))) }

func (x Float64) Pow(y Float64) Float64       { return Float64(power(float64(x), float64(y))) }
func (x Float64) PowScalar(e float64) Float64 { return Float64(power(float64(x), e)) }
func (x Float64) Sqrt() Float64               { return Float64(math.Sqrt(float64(x))) }
func (x Float64) Exp() Float64                { return Float64(math.Exp(float64(x))) }
func (x Float64) Log() Float64                { return Float64(logarithm("Log", math.Log, float64(x))) }
func (x Float64) Log10() Float64              { return Float64(logarithm("Log10", math.Log10, float64(x))) }

func (x Float64) Sin() Float64            { return Float64(math.Sin(float64(x))) }
func (x Float64) Cos() Float64            { return Float64(math.Cos(float64(x))) }
func (x Float64) Tan() Float64            { return Float64(math.Tan(float64(x))) }
func (x Float64) Asin() Float64           { return Float64(math.Asin(float64(x))) }
func (x Float64) Acos() Float64           { return Float64(math.Acos(float64(x))) }
func (x Float64) Atan() Float64           { return Float64(math.Atan(float64(x))) }
func (x Float64) Atan2(y Float64) Float64 { return Float64(math.Atan2(float64(x), float64(y))) }
func (x Float64) Sinh() Float64           { return Float64(math.Sinh(float64(x))) }
func (x Float64) Cosh() Float64           { return Float64(math.Cosh(float64(x))) }
func (x Float64) Tanh() Float64           { return Float64(math.Tanh(float64(x))) }
func (x Float64) Abs() Float64            { return Float64(math.Abs(float64(x))) }

func (x Float32) Float() float64           { return float64(x) }
func (x Float32) Constant(c float64) Float32 { return Float32(c) }

func (x Float32) Add(y Float32) Float32 { return x + y }
func (x Float32) Sub(y Float32) Float32 { return x - y }
func (x Float32) Mul(y Float32) Float32 { return x * y }
func (x Float32) Div(y Float32) Float32 { return Float32(quotient("Div", float32(x), float32(y))) }
func (x Float32) Neg() Float32          { return -x }
func (x Float32) Inv() Float32          { return Float32(quotient("Inv", 1, float32(x))) }

func (x Float32) AddScalar(c float64) Float32 { return x + Float32(c) }
func (x Float32) SubScalar(c float64) Float32 { return x - Float32(c) }
func (x Float32) MulScalar(c float64) Float32 { return x * Float32(c) }
func (x Float32) DivScalar(c float64) Float32 { return Float32(quotient("DivScalar", float32(x), float32(c))) }

func (x Float32) Pow(y Float32) Float32       { return Float32(power(float32(x), float32(y))) }
func (x Float32) PowScalar(e float64) Float32 { return Float32(power(float32(x), float32(e))) }
func (x Float32) Sqrt() Float32               { return Float32(math.Sqrt(float64(x))) }
func (x Float32) Exp() Float32                { return Float32(math.Exp(float64(x))) }
func (x Float32) Log() Float32                { return Float32(logarithm("Log", math.Log, float32(x))) }
func (x Float32) Log10() Float32              { return Float32(logarithm("Log10", math.Log10, float32(x))) }

func (x Float32) Sin() Float32            { return Float32(math.Sin(float64(x))) }
func (x Float32) Cos() Float32            { return Float32(math.Cos(float64(x))) }
func (x Float32) Tan() Float32            { return Float32(math.Tan(float64(x))) }
func (x Float32) Asin() Float32           { return Float32(math.Asin(float64(x))) }
func (x Float32) Acos() Float32           { return Float32(math.Acos(float64(x))) }
func (x Float32) Atan() Float32           { return Float32(math.Atan(float64(x))) }
func (x Float32) Atan2(y Float32) Float32 { return Float32(math.Atan2(float64(x), float64(y))) }
func (x Float32) Sinh() Float32           { return Float32(math.Sinh(float64(x))) }
func (x Float32) Cosh() Float32           { return Float32(math.Cosh(float64(x))) }
func (x Float32) Tanh() Float32           { return Float32(math.Tanh(float64(x))) }
func (x Float32) Abs() Float32            { return Float32(math.Abs(float64(x))) }
