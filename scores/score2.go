package scores

import (
	"math"

	"github.com/intervention-engine/cvriskservice/risk"

	"gonum.org/v1/gonum/floats"
)

// SCORE2Input carries the cohort vectors for the 2021 SCORE2 model.
// SCORE2 is natively mmol/L; when Mmol is false the cholesterol inputs
// are taken as mg/dL and converted.
type SCORE2Input struct {
	Sex      []risk.Sex
	Age      []float64
	SBP      []float64
	TotChol  []float64
	HDL      []float64
	Smoker   []bool
	Diabetic []bool
	Mmol     bool
}

// SCORE2 working group 2021, supplementary methods. Terms: cage, smoker,
// csbp, diabetic, ctchol, chdl, then the same five interacted with cage,
// where cage=(age-60)/5, csbp=(sbp-120)/20, ctchol=tchol-6 and
// chdl=(hdl-1.3)/0.5.
var score2Model = map[risk.Sex]risk.CoefficientSet{
	risk.Male: {
		Coef: []float64{0.3742, 0.6012, 0.2777, 0.6457, 0.1458, -0.2698, -0.0755, -0.0255, -0.0983, -0.0281, 0.0426},
		S0:   0.9605,
	},
	risk.Female: {
		Coef: []float64{0.4648, 0.7744, 0.3131, 0.8096, 0.1002, -0.2606, -0.1088, -0.0277, -0.1272, -0.0226, 0.0613},
		S0:   0.9776,
	},
}

// Region recalibration scales: risk = 1-exp(-exp(s1+s2*ln(-ln(1-r)))).
type score2Scale struct{ s1, s2 float64 }

var score2Scales = map[risk.Sex]map[risk.Region]score2Scale{
	risk.Male: {
		risk.LowRisk:      {-0.5699, 0.7476},
		risk.ModerateRisk: {-0.1565, 0.8009},
		risk.HighRisk:     {0.3207, 0.9360},
		risk.VeryHighRisk: {0.5836, 0.8294},
	},
	risk.Female: {
		risk.LowRisk:      {-0.7380, 0.7019},
		risk.ModerateRisk: {-0.3143, 0.7701},
		risk.HighRisk:     {0.5710, 0.9369},
		risk.VeryHighRisk: {0.9412, 0.8329},
	},
}

// SCORE2 validity window; ages outside clamp to the nearest bound, the
// same edge policy the charts apply.
const (
	score2AgeMin = 40
	score2AgeMax = 69
)

// SCORE2 computes the 10-year fatal and non-fatal CVD risk of the 2021
// SCORE2 model, recalibrated to the given geographic risk region, in
// percent.
func SCORE2(in SCORE2Input, region risk.Region) ([]float64, error) {
	if _, ok := score2Scales[risk.Male][region]; !ok {
		return nil, risk.InvalidOptionError{Option: "risk", Value: region.String(),
			Allowed: []string{"low", "moderate", "high", "veryhigh"}}
	}
	n := len(in.Age)
	if n == 0 {
		return nil, risk.MissingInputError{Param: "age"}
	}
	if err := risk.FirstErr(
		risk.CheckVec("sex", in.Sex, n),
		risk.CheckVec("sbp", in.SBP, n),
		risk.CheckVec("totchol", in.TotChol, n),
		risk.CheckVec("hdl", in.HDL, n),
		risk.CheckVec("smoker", in.Smoker, n),
		risk.CheckVec("diabetic", in.Diabetic, n),
	); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		if err := checkSex(in.Sex[i]); err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		tc, hdl := in.TotChol[i], in.HDL[i]
		if !in.Mmol {
			tc, hdl = risk.MgdlToMmol(tc), risk.MgdlToMmol(hdl)
		}
		age := math.Min(math.Max(in.Age[i], score2AgeMin), score2AgeMax)
		cage := (age - 60) / 5
		csbp := (in.SBP[i] - 120) / 20
		ctc := tc - 6
		chdl := (hdl - 1.3) / 0.5
		smk, diab := b2f(in.Smoker[i]), b2f(in.Diabetic[i])
		terms := []float64{cage, smk, csbp, diab, ctc, chdl,
			smk * cage, csbp * cage, diab * cage, ctc * cage, chdl * cage}

		m := score2Model[in.Sex[i]]
		uncal := risk.CoxRisk(floats.Dot(m.Coef, terms), 0, m.S0)
		sc := score2Scales[in.Sex[i]][region]
		cal := 1 - math.Exp(-math.Exp(sc.s1+sc.s2*math.Log(-math.Log(1-uncal))))
		out[i] = risk.Round2(100 * cal)
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// SCORE2One scores a single record.
func SCORE2One(region risk.Region, sex risk.Sex, age, sbp, totChol, hdl float64, smoker, diabetic, mmol bool) (float64, error) {
	out, err := SCORE2(SCORE2Input{
		Sex:      []risk.Sex{sex},
		Age:      []float64{age},
		SBP:      []float64{sbp},
		TotChol:  []float64{totChol},
		HDL:      []float64{hdl},
		Smoker:   []bool{smoker},
		Diabetic: []bool{diabetic},
		Mmol:     mmol,
	}, region)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
