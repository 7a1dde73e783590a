package densead

import (
	"testing"

	"github.com/ajroetker/go-densead/numeric"
)

func chain[N numeric.Number[N]](x, y N) N {
	for range 8 {
		x = x.Mul(y).Add(x.Sin()).DivScalar(1.5)
	}
	return x
}

func BenchmarkFixed4(b *testing.B) {
	x := Variable[float64, Fixed4[float64]](0.5, 0)
	y := Variable[float64, Fixed4[float64]](1.5, 3)
	for b.Loop() {
		_ = chain(x, y)
	}
}

func BenchmarkDynamic4(b *testing.B) {
	x := DynamicVariable(0.5, 4, 0)
	y := DynamicVariable(1.5, 4, 3)
	for b.Loop() {
		_ = chain(x, y)
	}
}

func BenchmarkFixed12(b *testing.B) {
	x := Variable[float64, Fixed12[float64]](0.5, 0)
	y := Variable[float64, Fixed12[float64]](1.5, 11)
	for b.Loop() {
		_ = chain(x, y)
	}
}

func BenchmarkDynamic12(b *testing.B) {
	x := DynamicVariable(0.5, 12, 0)
	y := DynamicVariable(1.5, 12, 11)
	for b.Loop() {
		_ = chain(x, y)
	}
}

func BenchmarkPlain(b *testing.B) {
	for b.Loop() {
		_ = chain(numeric.Float64(0.5), numeric.Float64(1.5))
	}
}
