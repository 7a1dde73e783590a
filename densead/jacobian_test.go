package densead

import (
	"errors"
	"testing"

	"github.com/ajroetker/go-densead/numeric"
)

func TestJacobian(t *testing.T) {
	x := Variable[float64, Fixed2[float64]](2, 0)
	y := Variable[float64, Fixed2[float64]](5, 1)
	rows := []Evaluation[float64, Fixed2[float64]]{
		x.Mul(y),
		x.Sub(y).MulScalar(3),
		y.PowScalar(2),
	}

	j := Jacobian(rows)
	if r, c := j.Dims(); r != 3 || c != 2 {
		t.Fatalf("Dims: got %dx%d, want 3x2", r, c)
	}
	want := [3][2]float64{{5, 2}, {3, -3}, {0, 10}}
	for r := range want {
		for i := range want[r] {
			if got := j.At(r, i); got != want[r][i] {
				t.Errorf("J(%d, %d): got %v, want %v", r, i, got, want[r][i])
			}
		}
	}

	v := Values(rows)
	for r, w := range []float64{10, -9, 25} {
		if got := v.AtVec(r); got != w {
			t.Errorf("Values[%d]: got %v, want %v", r, got, w)
		}
	}
}

func TestJacobianEdges(t *testing.T) {
	if Jacobian[float64, Dynamic[float64]](nil) != nil || Values[float64, Dynamic[float64]](nil) != nil {
		t.Error("empty input must give nil")
	}
	if Jacobian([]Evaluation[float64, Dynamic[float64]]{DynamicConstant(1.0, 0)}) != nil {
		t.Error("zero derivatives must give nil")
	}

	err := numeric.Catch(func() {
		Jacobian([]Evaluation[float64, Dynamic[float64]]{DynamicConstant(1.0, 2), DynamicConstant(1.0, 3)})
	})
	if !errors.Is(err, numeric.ErrLogic) {
		t.Errorf("ragged rows: got %v, want ErrLogic", err)
	}
}
