package densead

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-densead/numeric"
)

// Jacobian assembles the derivative vectors of rows into a dense matrix whose
// entry (r, i) is the derivative of rows[r] with respect to independent i.
// It returns nil when there are no rows or no tracked derivatives. Rows with
// differing derivative lengths panic with numeric.ErrLogic.
func Jacobian[T numeric.Floats, D Derivs[T, D]](rows []Evaluation[T, D]) *mat.Dense {
	if len(rows) == 0 {
		return nil
	}
	n := rows[0].Len()
	if n == 0 {
		return nil
	}
	data := make([]float64, 0, len(rows)*n)
	for _, r := range rows {
		if r.Len() != n {
			numeric.PanicLengthMismatch("Jacobian", n, r.Len())
		}
		for i := 0; i < n; i++ {
			data = append(data, float64(r.deriv.At(i)))
		}
	}
	return mat.NewDense(len(rows), n, data)
}

// Values returns the magnitudes of rows as a vector, or nil for no rows.
func Values[T numeric.Floats, D Derivs[T, D]](rows []Evaluation[T, D]) *mat.VecDense {
	if len(rows) == 0 {
		return nil
	}
	data := make([]float64, len(rows))
	for i, r := range rows {
		data[i] = float64(r.value)
	}
	return mat.NewVecDense(len(rows), data)
}
