package scores

import (
	"math"

	"github.com/intervention-engine/cvriskservice/risk"
)

// ESCScoreInput carries the cohort vectors for the ESC SCORE charts and
// the underlying Conroy 2003 formula. Cholesterol is mg/dL unless Mmol
// is set; the charts themselves are laid out in mmol/L columns.
type ESCScoreInput struct {
	Sex     []risk.Sex
	Age     []float64
	TotChol []float64
	SBP     []float64
	Smoker  []bool
	Mmol    bool
}

// escChart is one SCORE chart: 10-year fatal CVD risk in percent,
// indexed by sex, smoking status, age band (40/50/55/60/65), systolic
// band (120/140/160/180) and total cholesterol band (4..8 mmol/L).
type escChart [2][2][5][4][5]float64

// Chart bands follow the printed charts: a reading is assigned to the
// band whose representative value it is closest to, expressed here as
// lower-bound breakpoints.
var (
	escAgeBands = risk.Banding{0, 45, 53, 58, 63}
	escSBPBands = risk.Banding{0, 130, 150, 170}
	escTCBands  = risk.Banding{0, 4.5, 5.5, 6.5, 7.5} // mmol/L
)

var escChartGermany2016 = escChart{
	// male
	{
		// non-smoker
		{
			{{0, 0, 0, 0, 0}, {0, 0, 0, 1, 1}, {0, 1, 1, 1, 1}, {1, 1, 1, 1, 1}},       // age 40
			{{1, 1, 1, 1, 2}, {1, 1, 2, 2, 2}, {2, 2, 2, 3, 3}, {2, 3, 3, 4, 5}},       // age 50
			{{1, 1, 2, 2, 3}, {2, 2, 3, 3, 4}, {3, 3, 4, 4, 5}, {4, 4, 5, 6, 8}},       // age 55
			{{2, 2, 3, 3, 4}, {3, 3, 4, 5, 6}, {4, 5, 6, 7, 8}, {6, 7, 8, 10, 11}},     // age 60
			{{3, 3, 4, 5, 6}, {4, 5, 6, 7, 8}, {6, 7, 8, 10, 12}, {9, 10, 12, 14, 16}}, // age 65
		},
		// smoker
		{
			{{0, 1, 1, 1, 1}, {1, 1, 1, 1, 1}, {1, 1, 1, 2, 2}, {1, 2, 2, 2, 3}},               // age 40
			{{1, 2, 2, 3, 3}, {2, 3, 3, 4, 5}, {3, 4, 4, 5, 7}, {4, 5, 6, 8, 9}},               // age 50
			{{2, 3, 3, 4, 5}, {3, 4, 5, 6, 7}, {5, 6, 7, 9, 10}, {7, 9, 10, 12, 14}},           // age 55
			{{4, 4, 5, 6, 8}, {5, 6, 8, 9, 11}, {8, 9, 11, 13, 15}, {11, 13, 15, 18, 21}},      // age 60
			{{5, 6, 8, 9, 11}, {8, 9, 11, 13, 16}, {11, 13, 15, 18, 21}, {16, 18, 21, 24, 28}}, // age 65
		},
	},
	// female
	{
		// non-smoker
		{
			{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}}, // age 40
			{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 1}, {0, 1, 1, 1, 1}, {1, 1, 1, 1, 1}}, // age 50
			{{0, 0, 1, 1, 1}, {1, 1, 1, 1, 1}, {1, 1, 1, 1, 2}, {1, 1, 2, 2, 2}}, // age 55
			{{1, 1, 1, 1, 1}, {1, 1, 1, 2, 2}, {2, 2, 2, 2, 3}, {2, 3, 3, 4, 4}}, // age 60
			{{1, 1, 2, 2, 2}, {2, 2, 2, 3, 3}, {3, 3, 4, 4, 5}, {4, 5, 5, 6, 7}}, // age 65
		},
		// smoker
		{
			{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}},    // age 40
			{{0, 0, 1, 1, 1}, {1, 1, 1, 1, 1}, {1, 1, 1, 1, 2}, {1, 1, 2, 2, 2}},    // age 50
			{{1, 1, 1, 1, 1}, {1, 1, 2, 2, 2}, {2, 2, 2, 3, 3}, {3, 3, 3, 4, 5}},    // age 55
			{{1, 2, 2, 2, 3}, {2, 2, 3, 3, 4}, {3, 4, 4, 5, 6}, {5, 5, 6, 7, 8}},    // age 60
			{{2, 3, 3, 4, 5}, {4, 4, 5, 6, 7}, {5, 6, 7, 8, 9}, {8, 9, 10, 12, 13}}, // age 65
		},
	},
}

var escChartLow = escChart{
	// male
	{
		// non-smoker
		{
			{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 1}, {0, 0, 1, 1, 1}, {1, 1, 1, 1, 1}},     // age 40
			{{1, 1, 1, 1, 1}, {1, 1, 1, 2, 2}, {1, 2, 2, 2, 3}, {2, 2, 3, 3, 4}},     // age 50
			{{1, 1, 1, 2, 2}, {2, 2, 2, 3, 3}, {2, 3, 3, 4, 4}, {3, 4, 5, 5, 6}},     // age 55
			{{2, 2, 2, 3, 3}, {2, 3, 3, 4, 5}, {4, 4, 5, 6, 7}, {5, 6, 7, 8, 10}},    // age 60
			{{3, 3, 3, 4, 5}, {4, 4, 5, 6, 7}, {6, 6, 7, 9, 10}, {8, 9, 11, 13, 15}}, // age 65
		},
		// smoker
		{
			{{0, 0, 0, 1, 1}, {0, 1, 1, 1, 1}, {1, 1, 1, 1, 2}, {1, 1, 1, 2, 2}},               // age 40
			{{1, 1, 2, 2, 3}, {2, 2, 3, 3, 4}, {3, 3, 4, 4, 5}, {4, 5, 5, 6, 8}},               // age 50
			{{2, 2, 3, 3, 4}, {3, 4, 4, 5, 6}, {4, 5, 6, 7, 9}, {6, 8, 9, 10, 12}},             // age 55
			{{3, 4, 5, 5, 7}, {5, 6, 7, 8, 9}, {7, 8, 10, 11, 13}, {10, 12, 14, 16, 19}},       // age 60
			{{5, 6, 7, 8, 10}, {7, 8, 10, 12, 14}, {11, 12, 14, 17, 20}, {15, 17, 20, 23, 27}}, // age 65
		},
	},
	// female
	{
		// non-smoker
		{
			{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}}, // age 40
			{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 1}, {0, 1, 1, 1, 1}, {1, 1, 1, 1, 1}}, // age 50
			{{0, 0, 1, 1, 1}, {1, 1, 1, 1, 1}, {1, 1, 1, 1, 2}, {1, 2, 2, 2, 2}}, // age 55
			{{1, 1, 1, 1, 1}, {1, 1, 2, 2, 2}, {2, 2, 2, 3, 3}, {3, 3, 3, 4, 4}}, // age 60
			{{1, 2, 2, 2, 2}, {2, 2, 3, 3, 4}, {3, 3, 4, 4, 5}, {5, 5, 6, 7, 8}}, // age 65
		},
		// smoker
		{
			{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}},      // age 40
			{{0, 0, 1, 1, 1}, {1, 1, 1, 1, 1}, {1, 1, 1, 1, 2}, {1, 2, 2, 2, 2}},      // age 50
			{{1, 1, 1, 1, 1}, {1, 1, 2, 2, 2}, {2, 2, 2, 3, 3}, {3, 3, 3, 4, 5}},      // age 55
			{{2, 2, 2, 2, 3}, {2, 3, 3, 3, 4}, {3, 4, 4, 5, 6}, {5, 6, 6, 7, 8}},      // age 60
			{{3, 3, 3, 4, 5}, {4, 5, 5, 6, 7}, {6, 7, 8, 9, 10}, {9, 10, 11, 13, 14}}, // age 65
		},
	},
}

var escChartHigh = escChart{
	// male
	{
		// non-smoker
		{
			{{0, 0, 1, 1, 1}, {0, 1, 1, 1, 1}, {1, 1, 1, 1, 2}, {1, 1, 2, 2, 2}},            // age 40
			{{1, 1, 2, 2, 3}, {2, 2, 2, 3, 4}, {2, 3, 4, 4, 5}, {4, 4, 5, 6, 8}},            // age 50
			{{2, 2, 3, 3, 4}, {3, 3, 4, 5, 6}, {4, 5, 6, 7, 9}, {6, 7, 8, 10, 12}},          // age 55
			{{3, 4, 4, 5, 6}, {4, 5, 6, 7, 9}, {6, 8, 9, 11, 13}, {9, 11, 13, 15, 18}},      // age 60
			{{4, 5, 6, 8, 9}, {7, 8, 9, 11, 13}, {9, 11, 13, 16, 19}, {14, 16, 19, 22, 26}}, // age 65
		},
		// smoker
		{
			{{1, 1, 1, 1, 2}, {1, 1, 1, 2, 2}, {1, 2, 2, 3, 3}, {2, 2, 3, 4, 5}},                    // age 40
			{{2, 3, 3, 4, 5}, {3, 4, 5, 6, 7}, {5, 6, 7, 9, 10}, {7, 8, 10, 12, 15}},                // age 50
			{{4, 5, 6, 7, 8}, {6, 7, 8, 10, 12}, {8, 9, 11, 14, 16}, {12, 14, 16, 19, 23}},          // age 55
			{{6, 7, 8, 10, 12}, {9, 10, 12, 14, 17}, {12, 14, 17, 20, 24}, {17, 20, 24, 28, 33}},    // age 60
			{{9, 10, 12, 15, 18}, {12, 15, 17, 21, 25}, {18, 21, 24, 29, 34}, {25, 29, 34, 39, 45}}, // age 65
		},
	},
	// female
	{
		// non-smoker
		{
			{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}},   // age 40
			{{0, 0, 0, 1, 1}, {0, 1, 1, 1, 1}, {1, 1, 1, 1, 1}, {1, 1, 1, 2, 2}},   // age 50
			{{1, 1, 1, 1, 1}, {1, 1, 1, 1, 2}, {1, 2, 2, 2, 3}, {2, 2, 3, 3, 4}},   // age 55
			{{1, 1, 2, 2, 2}, {2, 2, 2, 3, 3}, {3, 3, 3, 4, 5}, {4, 4, 5, 6, 7}},   // age 60
			{{2, 2, 3, 3, 4}, {3, 3, 4, 5, 5}, {4, 5, 6, 7, 8}, {7, 7, 8, 10, 11}}, // age 65
		},
		// smoker
		{
			{{0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 0, 0}, {0, 0, 0, 1, 1}},           // age 40
			{{1, 1, 1, 1, 1}, {1, 1, 1, 1, 2}, {1, 2, 2, 2, 3}, {2, 2, 3, 3, 4}},           // age 50
			{{1, 1, 2, 2, 2}, {2, 2, 2, 3, 3}, {3, 3, 4, 4, 5}, {4, 5, 5, 6, 7}},           // age 55
			{{2, 3, 3, 4, 4}, {3, 4, 4, 5, 6}, {5, 6, 7, 8, 9}, {7, 8, 9, 11, 13}},         // age 60
			{{4, 4, 5, 6, 7}, {6, 7, 8, 9, 11}, {8, 10, 11, 13, 15}, {12, 14, 16, 18, 21}}, // age 65
		},
	},
}

func (in *ESCScoreInput) validate() (int, error) {
	n := len(in.Age)
	if n == 0 {
		return 0, risk.MissingInputError{Param: "age"}
	}
	return n, risk.FirstErr(
		risk.CheckVec("sex", in.Sex, n),
		risk.CheckVec("totchol", in.TotChol, n),
		risk.CheckVec("sbp", in.SBP, n),
		risk.CheckVec("smoker", in.Smoker, n),
	)
}

// tcMmol returns the record's total cholesterol in mmol/L.
func (in *ESCScoreInput) tcMmol(i int) float64 {
	if in.Mmol {
		return in.TotChol[i]
	}
	return risk.MgdlToMmol(in.TotChol[i])
}

func lookupESCChart(chart *escChart, in ESCScoreInput) ([]float64, error) {
	n, err := in.validate()
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		if err := checkSex(in.Sex[i]); err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		smoker := 0
		if in.Smoker[i] {
			smoker = 1
		}
		out[i] = chart[in.Sex[i]][smoker][escAgeBands.Assign(in.Age[i])][escSBPBands.Assign(in.SBP[i])][escTCBands.Assign(in.tcMmol(i))]
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// ESCScoreGER2016Table reads the 2016 German calibration of the SCORE
// chart.
func ESCScoreGER2016Table(in ESCScoreInput) ([]float64, error) {
	return lookupESCChart(&escChartGermany2016, in)
}

// ESCScoreTable reads the 2003 European SCORE chart for a low or high
// risk country.
func ESCScoreTable(in ESCScoreInput, region risk.Region) ([]float64, error) {
	switch region {
	case risk.LowRisk:
		return lookupESCChart(&escChartLow, in)
	case risk.HighRisk:
		return lookupESCChart(&escChartHigh, in)
	}
	return nil, risk.InvalidOptionError{Option: "risk", Value: region.String(), Allowed: []string{"low", "high"}}
}

// weibullCause is one cause-specific component of the Conroy 2003 SCORE
// model (coronary and non-coronary deaths are modelled separately and
// combined).
type weibullCause struct {
	alpha map[risk.Sex]float64
	p     map[risk.Sex]float64
	chol  float64 // per mmol/L above 6
	sbp   float64 // per mmHg above 120
	smk   float64
}

func (w weibullCause) tenYear(sex risk.Sex, age, tc, sbp float64, smoker bool) float64 {
	s := func(t float64) float64 {
		return math.Exp(-math.Exp(w.alpha[sex]) * math.Pow(t-20, w.p[sex]))
	}
	e := math.Exp(w.chol*(tc-6) + w.sbp*(sbp-120) + w.smk*b2f(smoker))
	return math.Pow(s(age+10), e) / math.Pow(s(age), e)
}

var conroyModels = map[risk.Region][2]weibullCause{
	risk.LowRisk: {
		{alpha: map[risk.Sex]float64{risk.Male: -22.1, risk.Female: -29.8}, p: map[risk.Sex]float64{risk.Male: 4.71, risk.Female: 6.36}, chol: 0.24, sbp: 0.018, smk: 0.71},
		{alpha: map[risk.Sex]float64{risk.Male: -26.7, risk.Female: -31.0}, p: map[risk.Sex]float64{risk.Male: 5.64, risk.Female: 6.62}, chol: 0.02, sbp: 0.022, smk: 0.63},
	},
	risk.HighRisk: {
		{alpha: map[risk.Sex]float64{risk.Male: -21.0, risk.Female: -28.7}, p: map[risk.Sex]float64{risk.Male: 4.62, risk.Female: 6.23}, chol: 0.24, sbp: 0.018, smk: 0.71},
		{alpha: map[risk.Sex]float64{risk.Male: -25.7, risk.Female: -30.0}, p: map[risk.Sex]float64{risk.Male: 5.47, risk.Female: 6.42}, chol: 0.02, sbp: 0.022, smk: 0.63},
	},
}

// ESCScoreFormula evaluates the Conroy 2003 closed form: two
// cause-specific Weibull survival models whose 10-year event
// probabilities combine into the fatal CVD risk, in percent.
func ESCScoreFormula(in ESCScoreInput, region risk.Region) ([]float64, error) {
	causes, ok := conroyModels[region]
	if !ok {
		return nil, risk.InvalidOptionError{Option: "risk", Value: region.String(), Allowed: []string{"low", "high"}}
	}
	n, err := in.validate()
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		if err := checkSex(in.Sex[i]); err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		if in.Age[i] <= 20 {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: risk.DomainError{
				Param: "age", Index: i, Value: in.Age[i], Reason: "below the model domain (age > 20)"}})
			continue
		}
		survival := 1.0
		for _, cause := range causes {
			survival *= cause.tenYear(in.Sex[i], in.Age[i], in.tcMmol(i), in.SBP[i], in.Smoker[i])
		}
		out[i] = risk.Round2(100 * (1 - survival))
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// ESCScoreGER2016TableOne scores a single record against the German
// chart.
func ESCScoreGER2016TableOne(sex risk.Sex, age, totChol, sbp float64, smoker, mmol bool) (float64, error) {
	out, err := ESCScoreGER2016Table(ESCScoreInput{
		Sex:     []risk.Sex{sex},
		Age:     []float64{age},
		TotChol: []float64{totChol},
		SBP:     []float64{sbp},
		Smoker:  []bool{smoker},
		Mmol:    mmol,
	})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
