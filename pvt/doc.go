// Package pvt holds black-oil correlations for solution gas-oil ratio and
// the bubble-point pressures derived from them.
//
// The correlations are written once against numeric.Number, so the same code
// evaluates on plain floats, on a densead value carrying the pressure
// derivative during a Newton solve, and on a densead value carrying
// derivatives with respect to the fluid description.
//
// Units are oilfield: pressure in psia, temperature in °F, solution GOR in
// scf/STB, oil gravity in °API and gas specific gravity relative to air.
package pvt
