package scores

import "github.com/intervention-engine/cvriskservice/risk"

// TRA2PInput carries the cohort vectors for the TRA 2P-TIMI 50
// secondary-prevention risk indicators. BypassSurg is prior coronary
// bypass grafting, OtherSurg prior peripheral bypass or other vascular
// surgery.
type TRA2PInput struct {
	Age          []float64
	EGFR         []float64
	CHF          []bool
	Hypertension []bool
	Diabetic     []bool
	Stroke       []bool
	BypassSurg   []bool
	OtherSurg    []bool
	Smoker       []bool
}

// Three-year rate of cardiovascular death, MI or ischemic stroke by the
// number of risk indicators present; five or more indicators mark the
// steep tail of the published curve.
var tra2pRisk = risk.PointTable{
	Keys: []int{0, 1, 2, 3, 4, 5, 6, 7},
	Risk: []float64{2.6, 4.4, 7.0, 11.3, 17.8, 28.8, 37.0, 45.2},
}

// TRA2P computes the 3-year atherothrombotic risk, in percent, from the
// count of present risk indicators: heart failure, hypertension, age 75
// or older, diabetes, prior stroke, prior coronary bypass, peripheral
// vascular surgery, renal dysfunction (eGFR below 60) and smoking.
func TRA2P(in TRA2PInput) ([]float64, error) {
	n := len(in.Age)
	if n == 0 {
		return nil, risk.MissingInputError{Param: "age"}
	}
	if err := risk.FirstErr(
		risk.CheckVec("egfr", in.EGFR, n),
		risk.CheckVec("chf", in.CHF, n),
		risk.CheckVec("ah", in.Hypertension, n),
		risk.CheckVec("diabetic", in.Diabetic, n),
		risk.CheckVec("stroke", in.Stroke, n),
		risk.CheckVec("bypass_surg", in.BypassSurg, n),
		risk.CheckVec("other_surg", in.OtherSurg, n),
		risk.CheckVec("smoker", in.Smoker, n),
	); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		if in.EGFR[i] <= 0 {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: risk.DomainError{
				Param: "egfr", Index: i, Value: in.EGFR[i], Reason: "eGFR must be positive"}})
			continue
		}
		indicators := 0
		for _, present := range []bool{
			in.CHF[i],
			in.Hypertension[i],
			in.Age[i] >= 75,
			in.Diabetic[i],
			in.Stroke[i],
			in.BypassSurg[i],
			in.OtherSurg[i],
			in.EGFR[i] < 60,
			in.Smoker[i],
		} {
			if present {
				indicators++
			}
		}
		out[i] = tra2pRisk.Lookup(indicators)
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// TRA2POne scores a single record.
func TRA2POne(age float64, chf, hypertension, diabetic, stroke, bypassSurg, otherSurg bool, egfr float64, smoker bool) (float64, error) {
	out, err := TRA2P(TRA2PInput{
		Age:          []float64{age},
		EGFR:         []float64{egfr},
		CHF:          []bool{chf},
		Hypertension: []bool{hypertension},
		Diabetic:     []bool{diabetic},
		Stroke:       []bool{stroke},
		BypassSurg:   []bool{bypassSurg},
		OtherSurg:    []bool{otherSurg},
		Smoker:       []bool{smoker},
	})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
