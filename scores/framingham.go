package scores

import "github.com/intervention-engine/cvriskservice/risk"

// FRSCVDInput carries the cohort vectors for the Framingham general
// cardiovascular disease score (D'Agostino 2008). Cholesterol is mg/dL
// unless Mmol is set.
type FRSCVDInput struct {
	Sex      []risk.Sex
	Age      []float64
	TotChol  []float64
	HDL      []float64
	SBP      []float64
	BPMed    []bool
	Smoker   []bool
	Diabetic []bool
	Mmol     bool
}

// Point assignments from D'Agostino et al. 2008, table 2.
var frsCVDAgePoints = map[risk.Sex]risk.PointBanding{
	risk.Female: {Bounds: risk.Banding{0, 35, 40, 45, 50, 55, 60, 65, 70, 75}, Points: []int{0, 2, 4, 5, 7, 8, 9, 10, 11, 12}},
	risk.Male:   {Bounds: risk.Banding{0, 35, 40, 45, 50, 55, 60, 65, 70, 75}, Points: []int{0, 2, 5, 6, 8, 10, 11, 12, 14, 15}},
}

var frsCVDCholPoints = map[risk.Sex]risk.PointBanding{
	risk.Female: {Bounds: risk.Banding{0, 160, 200, 240, 280}, Points: []int{0, 1, 3, 4, 5}},
	risk.Male:   {Bounds: risk.Banding{0, 160, 200, 240, 280}, Points: []int{0, 1, 2, 3, 4}},
}

var frsCVDHDLPoints = risk.PointBanding{Bounds: risk.Banding{0, 35, 45, 50, 60}, Points: []int{2, 1, 0, -1, -2}}

// Treated and untreated systolic pressure award different points.
var frsCVDSBPPoints = map[risk.Sex]map[bool]risk.PointBanding{
	risk.Female: {
		false: {Bounds: risk.Banding{0, 120, 130, 140, 150, 160}, Points: []int{-3, 0, 1, 2, 4, 5}},
		true:  {Bounds: risk.Banding{0, 120, 130, 140, 150, 160}, Points: []int{-1, 2, 3, 5, 6, 7}},
	},
	risk.Male: {
		false: {Bounds: risk.Banding{0, 120, 130, 140, 160}, Points: []int{-2, 0, 1, 2, 3}},
		true:  {Bounds: risk.Banding{0, 120, 130, 140, 160}, Points: []int{0, 2, 3, 4, 5}},
	},
}

var frsCVDSmokerPoints = map[risk.Sex]int{risk.Female: 3, risk.Male: 4}

var frsCVDDiabeticPoints = map[risk.Sex]int{risk.Female: 4, risk.Male: 3}

// 10-year general CVD risk by point total. Totals below the first key
// fall in the published "<1%" floor; totals above the last key in the
// ">30%" ceiling.
var frsCVDRisk = map[risk.Sex]risk.PointTable{
	risk.Female: {
		Keys: []int{-2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21},
		Risk: []float64{1.0, 1.0, 1.2, 1.5, 1.7, 2.0, 2.4, 2.8, 3.3, 3.9, 4.5, 5.3, 6.3, 7.3, 8.6, 10.0, 11.7, 13.7, 15.9, 18.5, 21.5, 24.8, 28.5, 30.0},
	},
	risk.Male: {
		Keys: []int{-3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18},
		Risk: []float64{1.0, 1.1, 1.4, 1.6, 1.9, 2.3, 2.8, 3.3, 3.9, 4.7, 5.6, 6.7, 7.9, 9.4, 11.2, 13.2, 15.6, 18.4, 21.6, 25.3, 29.4, 30.0},
	},
}

// Vascular ("heart") age by point total, the optional add-on of the 2008
// paper. Totals outside the tabulated range clamp to the published
// "<30" and ">80" extremes.
var frsCVDHeartAge = map[risk.Sex]risk.PointTable{
	risk.Female: {
		Keys: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		Risk: []float64{30, 31, 34, 36, 39, 42, 45, 48, 51, 55, 59, 64, 68, 73, 79, 80},
	},
	risk.Male: {
		Keys: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
		Risk: []float64{30, 32, 34, 36, 38, 40, 42, 45, 48, 51, 54, 57, 60, 64, 68, 72, 76, 80},
	},
}

// Cox model of the same paper, terms: ln age, ln total cholesterol,
// ln HDL, ln untreated SBP, ln treated SBP, smoker, diabetic.
var frsCVDModel = map[risk.Sex]risk.CoefficientSet{
	risk.Female: {
		Coef:  []float64{2.32888, 1.20904, -0.70833, 2.76157, 2.82263, 0.52873, 0.69154},
		LMean: 26.1931,
		S0:    0.95012,
	},
	risk.Male: {
		Coef:  []float64{3.06117, 1.12370, -0.93263, 1.93303, 1.99881, 0.65451, 0.57367},
		LMean: 23.9802,
		S0:    0.88936,
	},
}

func (in *FRSCVDInput) validate() (int, error) {
	n := len(in.Age)
	if n == 0 {
		return 0, risk.MissingInputError{Param: "age"}
	}
	return n, risk.FirstErr(
		risk.CheckVec("sex", in.Sex, n),
		risk.CheckVec("totchol", in.TotChol, n),
		risk.CheckVec("hdl", in.HDL, n),
		risk.CheckVec("sbp", in.SBP, n),
		risk.CheckVec("bp_med", in.BPMed, n),
		risk.CheckVec("smoker", in.Smoker, n),
		risk.CheckVec("diabetic", in.Diabetic, n),
	)
}

// chol returns the record's cholesterol measurements in mg/dL, the unit
// of the embedded tables.
func (in *FRSCVDInput) chol(i int) (tc, hdl float64) {
	tc, hdl = in.TotChol[i], in.HDL[i]
	if in.Mmol {
		tc, hdl = risk.MmolToMgdl(tc), risk.MmolToMgdl(hdl)
	}
	return tc, hdl
}

func (in *FRSCVDInput) points(i int) (int, error) {
	sex := in.Sex[i]
	if err := checkSex(sex); err != nil {
		return 0, err
	}
	tc, hdl := in.chol(i)
	total := frsCVDAgePoints[sex].PointsFor(in.Age[i])
	total += frsCVDCholPoints[sex].PointsFor(tc)
	total += frsCVDHDLPoints.PointsFor(hdl)
	total += frsCVDSBPPoints[sex][in.BPMed[i]].PointsFor(in.SBP[i])
	if in.Smoker[i] {
		total += frsCVDSmokerPoints[sex]
	}
	if in.Diabetic[i] {
		total += frsCVDDiabeticPoints[sex]
	}
	return total, nil
}

// FRSCVDTable computes the 10-year general cardiovascular disease risk
// from the Framingham 2008 point charts.
func FRSCVDTable(in FRSCVDInput) ([]float64, error) {
	return frsCVDFromPoints(in, frsCVDRisk)
}

// FRSCVDHeartAge computes the vascular age corresponding to each record's
// point total, the optional add-on published alongside the 2008 score.
func FRSCVDHeartAge(in FRSCVDInput) ([]float64, error) {
	return frsCVDFromPoints(in, frsCVDHeartAge)
}

func frsCVDFromPoints(in FRSCVDInput, tables map[risk.Sex]risk.PointTable) ([]float64, error) {
	n, err := in.validate()
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		total, err := in.points(i)
		if err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		out[i] = tables[in.Sex[i]].Lookup(total)
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// FRSCVDFormula computes the same risk through the paper's Cox model,
// returning a continuous percentage instead of the chart value.
func FRSCVDFormula(in FRSCVDInput) ([]float64, error) {
	n, err := in.validate()
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		terms, err := in.terms(i)
		if err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		out[i] = frsCVDModel[in.Sex[i]].Risk(terms)
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// terms builds the Cox model's transformed predictor vector for one record.
func (in *FRSCVDInput) terms(i int) ([]float64, error) {
	if err := checkSex(in.Sex[i]); err != nil {
		return nil, err
	}
	tc, hdl := in.chol(i)
	la, err := risk.Ln("age", i, in.Age[i])
	if err != nil {
		return nil, err
	}
	lt, err := risk.Ln("totchol", i, tc)
	if err != nil {
		return nil, err
	}
	lh, err := risk.Ln("hdl", i, hdl)
	if err != nil {
		return nil, err
	}
	ls, err := risk.Ln("sbp", i, in.SBP[i])
	if err != nil {
		return nil, err
	}
	var lsTr, lsUn float64
	if in.BPMed[i] {
		lsTr = ls
	} else {
		lsUn = ls
	}
	return []float64{la, lt, lh, lsUn, lsTr, b2f(in.Smoker[i]), b2f(in.Diabetic[i])}, nil
}

// FRSCVDTableOne scores a single record against the point charts.
func FRSCVDTableOne(sex risk.Sex, age, totChol, hdl, sbp float64, bpMed, smoker, diabetic bool) (float64, error) {
	return frsCVDOne(FRSCVDTable, sex, age, totChol, hdl, sbp, bpMed, smoker, diabetic)
}

// FRSCVDFormulaOne scores a single record through the Cox model.
func FRSCVDFormulaOne(sex risk.Sex, age, totChol, hdl, sbp float64, bpMed, smoker, diabetic bool) (float64, error) {
	return frsCVDOne(FRSCVDFormula, sex, age, totChol, hdl, sbp, bpMed, smoker, diabetic)
}

// FRSCVDHeartAgeOne returns the vascular age of a single record.
func FRSCVDHeartAgeOne(sex risk.Sex, age, totChol, hdl, sbp float64, bpMed, smoker, diabetic bool) (float64, error) {
	return frsCVDOne(FRSCVDHeartAge, sex, age, totChol, hdl, sbp, bpMed, smoker, diabetic)
}

func frsCVDOne(fn func(FRSCVDInput) ([]float64, error), sex risk.Sex, age, totChol, hdl, sbp float64, bpMed, smoker, diabetic bool) (float64, error) {
	out, err := fn(FRSCVDInput{
		Sex:      []risk.Sex{sex},
		Age:      []float64{age},
		TotChol:  []float64{totChol},
		HDL:      []float64{hdl},
		SBP:      []float64{sbp},
		BPMed:    []bool{bpMed},
		Smoker:   []bool{smoker},
		Diabetic: []bool{diabetic},
	})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
