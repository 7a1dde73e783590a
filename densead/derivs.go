package densead

import (
	"slices"

	"github.com/ajroetker/go-densead/numeric"
)

// Derivs is the derivative-vector storage an Evaluation is built on. Every
// method returns a new vector and leaves the receiver untouched.
type Derivs[T numeric.Floats, D any] interface {
	// Len is the number of tracked independent variables.
	Len() int
	At(i int) T
	// Zero returns a vector of the same length with every entry zero.
	Zero() D
	// Unit returns a vector of the same length with entry i set to one.
	Unit(i int) D
	// Set returns a copy with entry i replaced by v.
	Set(i int, v T) D
	// Scale returns a*d.
	Scale(a T) D
	// Combine returns a*d + b*o.
	Combine(a T, o D, b T) D
	IsZero() bool
}

// Dynamic is derivative storage whose length is fixed per value at run time.
type Dynamic[T numeric.Floats] []T

var _ Derivs[float64, Dynamic[float64]] = Dynamic[float64](nil)

func (d Dynamic[T]) Len() int   { return len(d) }
func (d Dynamic[T]) At(i int) T { return d[i] }

func (d Dynamic[T]) Zero() Dynamic[T] {
	return make(Dynamic[T], len(d))
}

func (d Dynamic[T]) Unit(i int) Dynamic[T] {
	u := make(Dynamic[T], len(d))
	u[i] = 1
	return u
}

func (d Dynamic[T]) Set(i int, v T) Dynamic[T] {
	c := slices.Clone(d)
	c[i] = v
	return c
}

func (d Dynamic[T]) Scale(a T) Dynamic[T] {
	r := make(Dynamic[T], len(d))
	for i, v := range d {
		r[i] = a * v
	}
	return r
}

func (d Dynamic[T]) Combine(a T, o Dynamic[T], b T) Dynamic[T] {
	if len(o) != len(d) {
		numeric.PanicLengthMismatch("Combine", len(d), len(o))
	}
	r := make(Dynamic[T], len(d))
	for i := range d {
		r[i] = a*d[i] + b*o[i]
	}
	return r
}

func (d Dynamic[T]) IsZero() bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}
