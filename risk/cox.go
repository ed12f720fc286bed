package risk

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CoefficientSet holds one stratum of a proportional-hazards model: the
// per-predictor coefficients, the originating cohort's mean linear
// predictor, and the baseline survival at the model horizon. Sets are
// package-level constants, loaded once and never mutated.
type CoefficientSet struct {
	Coef  []float64
	LMean float64
	S0    float64
}

// Risk evaluates the model for one record's transformed predictor terms
// and returns the risk percentage rounded to two decimals, the precision
// of the published worked examples.
func (cs CoefficientSet) Risk(terms []float64) float64 {
	l := floats.Dot(cs.Coef, terms)
	return Round2(100 * CoxRisk(l, cs.LMean, cs.S0))
}

// CoxRisk converts a linear predictor into an absolute event probability
// via 1 - S0^exp(L - LMean).
func CoxRisk(l, lMean, s0 float64) float64 {
	return 1 - math.Pow(s0, math.Exp(l-lMean))
}

// Ln guards the natural log against its undefined domain. A measurement of
// zero or below must surface as a DomainError, never as a silent NaN.
func Ln(param string, index int, v float64) (float64, error) {
	if v <= 0 {
		return 0, DomainError{Param: param, Index: index, Value: v, Reason: "log of non-positive value"}
	}
	return math.Log(v), nil
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }
