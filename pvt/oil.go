package pvt

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-densead/numeric"
)

// ErrInvalidFluid is returned for fluid descriptions outside the range the
// correlations are defined on.
var ErrInvalidFluid = errors.New("pvt: invalid fluid")

// Properties is a fluid description in plain floats.
type Properties struct {
	API         float64 // stock-tank oil gravity, °API
	GasGravity  float64 // separator gas specific gravity, air = 1
	Temperature float64 // reservoir temperature, °F
}

// Validate reports whether p can be fed to the correlations.
func (p Properties) Validate() error {
	switch {
	case !(p.API > 0):
		return fmt.Errorf("%w: API gravity %g", ErrInvalidFluid, p.API)
	case !(p.GasGravity > 0):
		return fmt.Errorf("%w: gas gravity %g", ErrInvalidFluid, p.GasGravity)
	case !(p.Temperature > -rankineOffset):
		return fmt.Errorf("%w: temperature %g °F", ErrInvalidFluid, p.Temperature)
	}
	return nil
}

// Oil is a fluid description in any numeric representation.
type Oil[N numeric.Number[N]] struct {
	API         N
	GasGravity  N
	Temperature N
}

// OilOf lifts p into the representation of like as constants.
func OilOf[N numeric.Number[N]](like N, p Properties) Oil[N] {
	return Oil[N]{
		API:         like.Constant(p.API),
		GasGravity:  like.Constant(p.GasGravity),
		Temperature: like.Constant(p.Temperature),
	}
}

// OilGravity is the stock-tank oil specific gravity, water = 1.
func (o Oil[N]) OilGravity() N {
	return numeric.Scalar(o.API, 141.5).Div(o.API.AddScalar(131.5))
}

const rankineOffset = 459.67
