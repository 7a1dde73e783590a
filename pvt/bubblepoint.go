package pvt

import (
	"github.com/ajroetker/go-densead/densead"
	"github.com/ajroetker/go-densead/numeric"
	"github.com/ajroetker/go-densead/satpress"
)

// Indices of the variables carried by BubblePointSensitivities.
const (
	WrtGOR = iota
	WrtAPI
	WrtGasGravity
	WrtTemperature
)

// Sensitivities is a value with derivatives with respect to solution GOR,
// oil gravity, gas gravity and temperature, in that order.
type Sensitivities[T numeric.Floats] = densead.Evaluation[T, densead.Fixed4[T]]

// Residual returns the Newton residual p -> Rs(p) for the fluid.
func Residual[T numeric.Floats](c Correlation, props Properties) satpress.Residual[T] {
	return func(p satpress.Eval[T]) satpress.Eval[T] {
		return SolutionGOR(c, p, OilOf(p, props))
	}
}

// BubblePoint solves Rs(p) = rs for the bubble-point pressure.
func BubblePoint[T numeric.Floats](c Correlation, props Properties, rs, guess T, opts satpress.Options) (satpress.Result[T], error) {
	if err := props.Validate(); err != nil {
		return satpress.Result[T]{}, err
	}
	return satpress.Solve(Residual[T](c, props), rs, guess, opts)
}

// BubblePointSensitivities solves for the bubble point and returns it with
// its derivatives with respect to the fluid description.
func BubblePointSensitivities[T numeric.Floats](c Correlation, props Properties, rs, guess T, opts satpress.Options) (Sensitivities[T], satpress.Result[T], error) {
	if err := props.Validate(); err != nil {
		return Sensitivities[T]{}, satpress.Result[T]{}, err
	}
	upstream := func(p Sensitivities[T]) Sensitivities[T] {
		return SolutionGOR(c, p, Oil[Sensitivities[T]]{
			API:         densead.Variable[T, densead.Fixed4[T]](T(props.API), WrtAPI),
			GasGravity:  densead.Variable[T, densead.Fixed4[T]](T(props.GasGravity), WrtGasGravity),
			Temperature: densead.Variable[T, densead.Fixed4[T]](T(props.Temperature), WrtTemperature),
		})
	}
	target := densead.Variable[T, densead.Fixed4[T]](rs, WrtGOR)
	return satpress.SolveWithDerivatives(Residual[T](c, props), upstream, target, guess, opts)
}
