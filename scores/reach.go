package scores

import "github.com/intervention-engine/cvriskservice/risk"

// ReachInput carries the cohort vectors for the REACH registry's
// 20-month next-cardiovascular-event score (Wilson 2012). BMI and Region
// are optional modifiers: an absent BMI vector awards no underweight
// point and an absent Region vector means the reference region.
type ReachInput struct {
	Sex          []risk.Sex
	Age          []float64
	BMI          []float64
	VascularBeds []int
	Smoker       []bool
	Diabetic     []bool
	CVEvent      []bool
	CHF          []bool
	AF           []bool
	Statin       []bool
	ASA          []bool
	Region       []risk.ReachRegion
}

var reachAgePoints = risk.PointBanding{
	Bounds: risk.Banding{0, 45, 55, 65, 75, 85},
	Points: []int{0, 1, 2, 3, 4, 5},
}

// 20-month risk of a next cardiovascular event by point total.
var reachRisk = risk.PointTable{
	Keys: []int{-3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18},
	Risk: []float64{0.6, 0.8, 1.0, 1.3, 1.7, 2.2, 2.8, 3.5, 4.5, 5.7, 7.3, 9.2, 11.6, 14.6, 18.2, 22.5, 27.6, 33.4, 39.8, 46.7, 53.9, 61.1},
}

// ReachScore computes the 20-month risk, in percent, of a next
// cardiovascular event for patients with established atherothrombotic
// disease.
func ReachScore(in ReachInput) ([]float64, error) {
	n := len(in.Age)
	if n == 0 {
		return nil, risk.MissingInputError{Param: "age"}
	}
	if err := risk.FirstErr(
		risk.CheckVec("sex", in.Sex, n),
		risk.CheckOptionalVec("bmi", in.BMI, n),
		risk.CheckVec("vasc", in.VascularBeds, n),
		risk.CheckVec("smoker", in.Smoker, n),
		risk.CheckVec("diabetic", in.Diabetic, n),
		risk.CheckVec("cv_event", in.CVEvent, n),
		risk.CheckVec("chf", in.CHF, n),
		risk.CheckVec("af", in.AF, n),
		risk.CheckVec("statin", in.Statin, n),
		risk.CheckVec("asa", in.ASA, n),
		risk.CheckOptionalVec("region", in.Region, n),
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
		if in.VascularBeds[i] < 0 || in.VascularBeds[i] > 3 {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: risk.DomainError{
				Param: "vasc", Index: i, Value: float64(in.VascularBeds[i]),
				Reason: "affected vascular beds must be 0..3"}})
			continue
		}
		total := reachAgePoints.PointsFor(in.Age[i])
		if in.Sex[i] == risk.Male {
			total++
		}
		if in.Smoker[i] {
			total += 2
		}
		if in.Diabetic[i] {
			total += 2
		}
		if in.BMI != nil && in.BMI[i] < 20 {
			total++
		}
		if in.CVEvent[i] {
			total += 2
		}
		if in.CHF[i] {
			total += 2
		}
		if in.AF[i] {
			total++
		}
		total += in.VascularBeds[i]
		if in.Statin[i] {
			total--
		}
		if in.ASA[i] {
			total--
		}
		if in.Region != nil {
			switch in.Region[i] {
			case risk.ReachJapanAustralia:
				total--
			case risk.ReachEasternEuropeMiddleEast:
				total++
			}
		}
		out[i] = reachRisk.Lookup(total)
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReachScoreOne scores a single record.
func ReachScoreOne(sex risk.Sex, age, bmi float64, vascularBeds int, smoker, diabetic, cvEvent, chf, af, statin, asa bool, region risk.ReachRegion) (float64, error) {
	out, err := ReachScore(ReachInput{
		Sex:          []risk.Sex{sex},
		Age:          []float64{age},
		BMI:          []float64{bmi},
		VascularBeds: []int{vascularBeds},
		Smoker:       []bool{smoker},
		Diabetic:     []bool{diabetic},
		CVEvent:      []bool{cvEvent},
		CHF:          []bool{chf},
		AF:           []bool{af},
		Statin:       []bool{statin},
		ASA:          []bool{asa},
		Region:       []risk.ReachRegion{region},
	})
	if err != nil {
		return 0, err
	}
	return out[0], nil
}
