package main

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxSize bounds the largest derivative count adgen will unroll. Beyond it the
// generated source grows quadratically with little gain over Dynamic.
const MaxSize = 64

// Specialization describes one fixed-length derivative vector to emit.
type Specialization struct {
	Size     int    // number of derivatives
	TypeName string // "Fixed3"
}

// Indices returns 0..Size-1 for unrolling in templates.
func (s Specialization) Indices() []int {
	idx := make([]int, s.Size)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Last reports whether i is the final index, for joining unrolled terms.
func (s Specialization) Last(i int) bool {
	return i == s.Size-1
}

// Specializations returns the specializations for sizes lo..hi inclusive.
// The type name is the title-cased prefix followed by the size.
func Specializations(prefix string, lo, hi int) ([]Specialization, error) {
	if prefix == "" {
		return nil, fmt.Errorf("empty type prefix")
	}
	if lo < 1 || hi < lo || hi > MaxSize {
		return nil, fmt.Errorf("invalid size range [%d, %d] (valid: 1..%d)", lo, hi, MaxSize)
	}
	title := cases.Title(language.English).String(prefix)
	specs := make([]Specialization, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		specs = append(specs, Specialization{
			Size:     n,
			TypeName: title + strconv.Itoa(n),
		})
	}
	return specs, nil
}
