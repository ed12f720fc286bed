package scores

import "github.com/intervention-engine/cvriskservice/risk"

// InvestInput carries the cohort vectors for the INVEST adverse-outcome
// score for treated hypertensive coronary disease patients. EGFR is an
// optional refinement of the renal factor: when absent, the CKD flag
// alone decides it.
type InvestInput struct {
	Age      []float64
	HR       []float64
	SBP      []float64
	DBP      []float64
	EGFR     []float64
	MI       []bool
	CHF      []bool
	Diabetic []bool
	Stroke   []bool
	PAD      []bool
	CKD      []bool
	Smoker   []bool
}

var (
	investAgePoints = risk.PointBanding{Bounds: risk.Banding{0, 65, 75}, Points: []int{0, 1, 2}}
	investHRPoints  = risk.PointBanding{Bounds: risk.Banding{0, 80, 100}, Points: []int{0, 1, 2}}
)

// Risk of the composite adverse outcome (death, MI or stroke) by point
// total.
var investRisk = risk.PointTable{
	Keys: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	Risk: []float64{0.5, 0.8, 1.2, 1.8, 2.7, 4.0, 5.9, 8.6, 12.4, 17.6, 24.4, 32.8, 42.5, 52.0, 61.0, 70.0},
}

// Invest computes the composite adverse-outcome risk, in percent, from
// age, resting heart rate, blood-pressure control and comorbidity
// points.
func Invest(in InvestInput) ([]float64, error) {
	n := len(in.Age)
	if n == 0 {
		return nil, risk.MissingInputError{Param: "age"}
	}
	if err := risk.FirstErr(
		risk.CheckVec("hr", in.HR, n),
		risk.CheckVec("sbp", in.SBP, n),
		risk.CheckVec("dbp", in.DBP, n),
		risk.CheckOptionalVec("egfr", in.EGFR, n),
		risk.CheckVec("mi", in.MI, n),
		risk.CheckVec("chf", in.CHF, n),
		risk.CheckVec("diabetic", in.Diabetic, n),
		risk.CheckVec("stroke", in.Stroke, n),
		risk.CheckVec("pad", in.PAD, n),
		risk.CheckVec("ckd", in.CKD, n),
		risk.CheckVec("smoker", in.Smoker, n),
	); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		if in.HR[i] <= 0 {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: risk.DomainError{
				Param: "hr", Index: i, Value: in.HR[i], Reason: "heart rate must be positive"}})
			continue
		}
		if in.EGFR != nil && in.EGFR[i] <= 0 {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: risk.DomainError{
				Param: "egfr", Index: i, Value: in.EGFR[i], Reason: "eGFR must be positive"}})
			continue
		}
		total := investAgePoints.PointsFor(in.Age[i])
		total += investHRPoints.PointsFor(in.HR[i])
		if in.SBP[i] >= 160 || in.DBP[i] >= 100 {
			total++ // uncontrolled blood pressure under treatment
		}
		if in.MI[i] {
			total += 2
		}
		if in.CHF[i] {
			total += 2
		}
		if in.Diabetic[i] {
			total++
		}
		if in.Stroke[i] {
			total += 2
		}
		if in.PAD[i] {
			total++
		}
		if in.CKD[i] || (in.EGFR != nil && in.EGFR[i] < 60) {
			total++
		}
		if in.Smoker[i] {
			total++
		}
		out[i] = investRisk.Lookup(total)
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// InvestOne scores a single record. An egfr of 0 means not measured.
func InvestOne(age, hr, sbp, dbp, egfr float64, mi, chf, diabetic, stroke, pad, ckd, smoker bool) (float64, error) {
	in := InvestInput{
		Age:      []float64{age},
		HR:       []float64{hr},
		SBP:      []float64{sbp},
		DBP:      []float64{dbp},
		MI:       []bool{mi},
		CHF:      []bool{chf},
		Diabetic: []bool{diabetic},
		Stroke:   []bool{stroke},
		PAD:      []bool{pad},
		CKD:      []bool{ckd},
		Smoker:   []bool{smoker},
	}
	if egfr > 0 {
		in.EGFR = []float64{egfr}
	}
	out, err := Invest(in)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
