package scores

import "github.com/intervention-engine/cvriskservice/risk"

// FRSCHDInput carries the cohort vectors for the Framingham coronary
// heart disease score (Wilson 1998). CholModel selects between the
// total-cholesterol and the LDL model; the corresponding measurement
// vector is required, the other one ignored. DBP is optional: when
// supplied, the blood-pressure stage is the higher of the systolic and
// diastolic categories, per the original paper.
type FRSCHDInput struct {
	Sex       []risk.Sex
	Age       []float64
	TotChol   []float64
	LDL       []float64
	HDL       []float64
	SBP       []float64
	DBP       []float64
	Smoker    []bool
	Diabetic  []bool
	CholModel risk.CholModel
	Mmol      bool
}

var (
	frsCHDTCBands  = risk.Banding{0, 160, 200, 240, 280}
	frsCHDLDLBands = risk.Banding{0, 100, 130, 160, 190}
	frsCHDHDLBands = risk.Banding{0, 35, 45, 50, 60}
	frsCHDSBPBands = risk.Banding{0, 120, 130, 140, 160}
	frsCHDDBPBands = risk.Banding{0, 80, 85, 90, 100}
)

// wilsonModel is one sex x cholesterol-model stratum of Wilson 1998,
// with per-category coefficients instead of continuous transforms.
type wilsonModel struct {
	age, age2        float64
	chol, hdl, bp    [5]float64
	diabetic, smoker float64
	lMean, s0        float64
}

func (m wilsonModel) risk(age float64, cholCat, hdlCat, bpCat int, diabetic, smoker bool) float64 {
	l := m.age*age + m.age2*age*age
	l += m.chol[cholCat] + m.hdl[hdlCat] + m.bp[bpCat]
	l += m.diabetic*b2f(diabetic) + m.smoker*b2f(smoker)
	return risk.Round2(100 * risk.CoxRisk(l, m.lMean, m.s0))
}

var frsCHDModels = map[risk.CholModel]map[risk.Sex]wilsonModel{
	risk.CholTC: {
		risk.Male: {
			age:      0.04826,
			chol:     [5]float64{-0.65945, 0, 0.17692, 0.50539, 0.65713},
			hdl:      [5]float64{0.49744, 0.24310, 0, -0.05107, -0.48660},
			bp:       [5]float64{-0.00226, 0, 0.28320, 0.52168, 0.61859},
			diabetic: 0.42839, smoker: 0.52337,
			lMean: 3.09750, s0: 0.90015,
		},
		risk.Female: {
			age: 0.33766, age2: -0.00268,
			chol:     [5]float64{-0.26138, 0, 0.20771, 0.24385, 0.53513},
			hdl:      [5]float64{0.84312, 0.37796, 0.19785, 0, -0.42951},
			bp:       [5]float64{-0.53363, 0, -0.06773, 0.26288, 0.46573},
			diabetic: 0.59626, smoker: 0.29246,
			lMean: 9.92545, s0: 0.96246,
		},
	},
	risk.CholLDL: {
		risk.Male: {
			age:      0.04808,
			chol:     [5]float64{-0.69281, 0, 0.00389, 0.26755, 0.56705},
			hdl:      [5]float64{0.61313, 0.24026, 0, -0.00697, -0.54925},
			bp:       [5]float64{-0.02642, 0, 0.30104, 0.55714, 0.65107},
			diabetic: 0.42146, smoker: 0.54377,
			lMean: 3.00069, s0: 0.90017,
		},
		risk.Female: {
			age: 0.33994, age2: -0.00270,
			chol:     [5]float64{-0.42616, 0, 0.01366, 0.26948, 0.33251},
			hdl:      [5]float64{0.88121, 0.36312, 0.19247, 0, -0.35404},
			bp:       [5]float64{-0.51204, 0, -0.03484, 0.28533, 0.50403},
			diabetic: 0.61313, smoker: 0.29737,
			lMean: 9.914136, s0: 0.96278,
		},
	},
}

// FRSCHD computes the 10-year coronary heart disease risk of Wilson 1998,
// in percent, for each record.
func FRSCHD(in FRSCHDInput) ([]float64, error) {
	models, ok := frsCHDModels[in.CholModel]
	if !ok {
		return nil, risk.InvalidOptionError{Option: "chol_cat", Value: in.CholModel.String(), Allowed: []string{"tc", "ldl"}}
	}
	n := len(in.Age)
	if n == 0 {
		return nil, risk.MissingInputError{Param: "age"}
	}
	cholParam, cholVec := "totchol", in.TotChol
	if in.CholModel == risk.CholLDL {
		cholParam, cholVec = "ldl", in.LDL
	}
	if err := risk.FirstErr(
		risk.CheckVec("sex", in.Sex, n),
		risk.CheckVec(cholParam, cholVec, n),
		risk.CheckVec("hdl", in.HDL, n),
		risk.CheckVec("sbp", in.SBP, n),
		risk.CheckOptionalVec("dbp", in.DBP, n),
		risk.CheckVec("smoker", in.Smoker, n),
		risk.CheckVec("diabetic", in.Diabetic, n),
	); err != nil {
		return nil, err
	}

	cholBands := frsCHDTCBands
	if in.CholModel == risk.CholLDL {
		cholBands = frsCHDLDLBands
	}
	out := make([]float64, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		if err := checkSex(in.Sex[i]); err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		chol, hdl := cholVec[i], in.HDL[i]
		if in.Mmol {
			chol, hdl = risk.MmolToMgdl(chol), risk.MmolToMgdl(hdl)
		}
		bpCat := frsCHDSBPBands.Assign(in.SBP[i])
		if in.DBP != nil {
			bpCat = max(bpCat, frsCHDDBPBands.Assign(in.DBP[i]))
		}
		m := models[in.Sex[i]]
		out[i] = m.risk(in.Age[i], cholBands.Assign(chol), frsCHDHDLBands.Assign(hdl), bpCat, in.Diabetic[i], in.Smoker[i])
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// FRSCHDOne scores a single record. The chol argument is total or LDL
// cholesterol depending on the model choice.
func FRSCHDOne(model risk.CholModel, sex risk.Sex, age, chol, hdl, sbp, dbp float64, smoker, diabetic bool) (float64, error) {
	in := FRSCHDInput{
		Sex:       []risk.Sex{sex},
		Age:       []float64{age},
		HDL:       []float64{hdl},
		SBP:       []float64{sbp},
		DBP:       []float64{dbp},
		Smoker:    []bool{smoker},
		Diabetic:  []bool{diabetic},
		CholModel: model,
	}
	if model == risk.CholLDL {
		in.LDL = []float64{chol}
	} else {
		in.TotChol = []float64{chol}
	}
	out, err := FRSCHD(in)
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
