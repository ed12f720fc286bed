package scores

import "github.com/intervention-engine/cvriskservice/risk"

// ACCAHAInput carries the cohort vectors for the 2013 ACC/AHA pooled
// cohort equations. Cholesterol is mg/dL, blood pressure mmHg.
type ACCAHAInput struct {
	Ethnicity []risk.Ethnicity
	Sex       []risk.Sex
	Age       []float64
	TotChol   []float64
	HDL       []float64
	SBP       []float64
	Smoker    []bool
	Diabetic  []bool
	BPMed     []bool
}

type pooledCohortStratum struct {
	ethnicity risk.Ethnicity
	sex       risk.Sex
}

// Goff et al., 2013 ACC/AHA Guideline on the Assessment of Cardiovascular
// Risk, appendix 7. Coefficients are listed in the term order built by
// pooledCohortTerms for the stratum.
var pooledCohort = map[pooledCohortStratum]risk.CoefficientSet{
	{risk.White, risk.Female}: {
		Coef:  []float64{-29.799, 4.884, 13.540, -3.114, -13.578, 3.149, 2.019, 1.957, 7.574, -1.665, 0.661},
		LMean: -29.18,
		S0:    0.9665,
	},
	{risk.AfricanAmerican, risk.Female}: {
		Coef:  []float64{17.114, 0.940, -18.920, 4.475, 29.291, -6.432, 27.820, -6.087, 0.691, 0.874},
		LMean: 86.61,
		S0:    0.9533,
	},
	{risk.White, risk.Male}: {
		Coef:  []float64{12.344, 11.853, -2.664, -7.990, 1.769, 1.797, 1.764, 7.837, -1.795, 0.658},
		LMean: 61.18,
		S0:    0.9144,
	},
	{risk.AfricanAmerican, risk.Male}: {
		Coef:  []float64{2.469, 0.302, -0.307, 1.916, 1.809, 0.549, 0.645},
		LMean: 19.54,
		S0:    0.8954,
	},
}

// ACCAHA computes the 10-year ASCVD risk of the 2013 ACC/AHA pooled cohort
// equations, in percent, for each record.
func ACCAHA(in ACCAHAInput) ([]float64, error) {
	n := len(in.Age)
	if n == 0 {
		return nil, risk.MissingInputError{Param: "age"}
	}
	if err := risk.FirstErr(
		risk.CheckVec("ethnicity", in.Ethnicity, n),
		risk.CheckVec("sex", in.Sex, n),
		risk.CheckVec("totchol", in.TotChol, n),
		risk.CheckVec("hdl", in.HDL, n),
		risk.CheckVec("sbp", in.SBP, n),
		risk.CheckVec("smoker", in.Smoker, n),
		risk.CheckVec("diabetic", in.Diabetic, n),
		risk.CheckVec("bp_med", in.BPMed, n),
	); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		stratum := pooledCohortStratum{in.Ethnicity[i], in.Sex[i]}
		cs, ok := pooledCohort[stratum]
		if !ok {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: risk.InvalidStratumError{
				Stratum: stratum.ethnicity.String() + " " + stratum.sex.String()}})
			continue
		}
		terms, err := pooledCohortTerms(&in, stratum, i)
		if err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		out[i] = cs.Risk(terms)
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// ACCAHAOne scores a single record.
func ACCAHAOne(ethnicity risk.Ethnicity, sex risk.Sex, age, totChol, hdl, sbp float64, smoker, diabetic, bpMed bool) (float64, error) {
	out, err := ACCAHA(ACCAHAInput{
		Ethnicity: []risk.Ethnicity{ethnicity},
		Sex:       []risk.Sex{sex},
		Age:       []float64{age},
		TotChol:   []float64{totChol},
		HDL:       []float64{hdl},
		SBP:       []float64{sbp},
		Smoker:    []bool{smoker},
		Diabetic:  []bool{diabetic},
		BPMed:     []bool{bpMed},
	})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}

// pooledCohortTerms builds the transformed predictor vector for one
// record. Each stratum has its own term layout; treated and untreated
// blood-pressure terms occupy separate slots, with the inactive branch
// zeroed.
func pooledCohortTerms(in *ACCAHAInput, stratum pooledCohortStratum, i int) ([]float64, error) {
	la, err := risk.Ln("age", i, in.Age[i])
	if err != nil {
		return nil, err
	}
	lt, err := risk.Ln("totchol", i, in.TotChol[i])
	if err != nil {
		return nil, err
	}
	lh, err := risk.Ln("hdl", i, in.HDL[i])
	if err != nil {
		return nil, err
	}
	ls, err := risk.Ln("sbp", i, in.SBP[i])
	if err != nil {
		return nil, err
	}
	smk := b2f(in.Smoker[i])
	diab := b2f(in.Diabetic[i])
	var lsTr, lsUn float64
	if in.BPMed[i] {
		lsTr = ls
	} else {
		lsUn = ls
	}

	switch stratum {
	case pooledCohortStratum{risk.White, risk.Female}:
		return []float64{la, la * la, lt, la * lt, lh, la * lh, lsTr, lsUn, smk, la * smk, diab}, nil
	case pooledCohortStratum{risk.AfricanAmerican, risk.Female}:
		return []float64{la, lt, lh, la * lh, lsTr, la * lsTr, lsUn, la * lsUn, smk, diab}, nil
	case pooledCohortStratum{risk.White, risk.Male}:
		return []float64{la, lt, la * lt, lh, la * lh, lsTr, lsUn, smk, la * smk, diab}, nil
	default: // african american male
		return []float64{la, lt, lh, lsTr, lsUn, smk, diab}, nil
	}
}
