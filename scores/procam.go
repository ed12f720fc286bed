package scores

import (
	"math"

	"github.com/intervention-engine/cvriskservice/risk"
)

// PROCAMInput carries the cohort vectors for the 2007 PROCAM health
// check score. Lipids are mg/dL unless Mmol is set.
type PROCAMInput struct {
	Sex           []risk.Sex
	Age           []float64
	LDL           []float64
	HDL           []float64
	SBP           []float64
	Triglycerides []float64
	Smoker        []bool
	Diabetic      []bool
	FamilialMI    []bool
	Mmol          bool
}

// PROCAMBuckets is the ordered set of 10-year risk labels the 2007
// charts report.
var PROCAMBuckets = []string{"0-4%", "5-9%", "10-19%", "20-29%", "=30%"}

// Risk factor points of the PROCAM scheme. Age does not award points in
// the 2007 charts: it selects the sub-table instead.
var (
	procamLDLPoints = risk.PointBanding{Bounds: risk.Banding{0, 100, 130, 160, 190}, Points: []int{0, 5, 10, 14, 20}}
	procamHDLPoints = risk.PointBanding{Bounds: risk.Banding{0, 35, 45, 55}, Points: []int{11, 8, 5, 0}}
	procamTGPoints  = risk.PointBanding{Bounds: risk.Banding{0, 100, 150, 200}, Points: []int{0, 2, 3, 4}}
	procamSBPPoints = risk.PointBanding{Bounds: risk.Banding{0, 120, 130, 140, 160}, Points: []int{0, 2, 3, 5, 8}}
)

const (
	procamSmokerPoints     = 8
	procamDiabeticPoints   = 6
	procamFamilialMIPoints = 4
)

// Charted ages; records select the nearest sub-table, clamped to the
// 20..75 coverage of the published charts.
const (
	procamAgeMin  = 20
	procamAgeMax  = 75
	procamAgeStep = 5
)

// Per-sex, per-age sub-tables: the lowest point total classified into
// each bucket above the floor ("5-9%", "10-19%", "20-29%", "=30%").
var procamBucketMins = map[risk.Sex]map[int][4]int{
	risk.Male: {
		20: {45, 51, 56, 60},
		25: {45, 51, 56, 60},
		30: {45, 51, 56, 60},
		35: {45, 51, 56, 60},
		40: {39, 45, 50, 54},
		45: {34, 40, 45, 49},
		50: {29, 35, 40, 44},
		55: {24, 30, 35, 39},
		60: {19, 25, 30, 34},
		65: {19, 25, 30, 34},
		70: {15, 21, 26, 30},
		75: {11, 17, 22, 26},
	},
	risk.Female: {
		20: {53, 59, 64, 68},
		25: {53, 59, 64, 68},
		30: {53, 59, 64, 68},
		35: {53, 59, 64, 68},
		40: {47, 53, 58, 62},
		45: {42, 48, 53, 57},
		50: {37, 43, 48, 52},
		55: {32, 38, 43, 47},
		60: {27, 33, 38, 42},
		65: {27, 33, 38, 42},
		70: {23, 29, 34, 38},
		75: {19, 25, 30, 34},
	},
}

// procamSubTableAge maps an exact age to the nearest charted sub-table.
func procamSubTableAge(age float64) int {
	if age < procamAgeMin {
		return procamAgeMin
	}
	if age > procamAgeMax {
		return procamAgeMax
	}
	return procamAgeMin + procamAgeStep*int(math.Round((age-procamAgeMin)/procamAgeStep))
}

// PROCAM2007 classifies each record into one of the ordered PROCAM risk
// buckets.
func PROCAM2007(in PROCAMInput) ([]string, error) {
	n := len(in.Age)
	if n == 0 {
		return nil, risk.MissingInputError{Param: "age"}
	}
	if err := risk.FirstErr(
		risk.CheckVec("sex", in.Sex, n),
		risk.CheckVec("ldl", in.LDL, n),
		risk.CheckVec("hdl", in.HDL, n),
		risk.CheckVec("sbp", in.SBP, n),
		risk.CheckVec("triglycerides", in.Triglycerides, n),
		risk.CheckVec("smoker", in.Smoker, n),
		risk.CheckVec("diabetic", in.Diabetic, n),
		risk.CheckVec("famMI", in.FamilialMI, n),
	); err != nil {
		return nil, err
	}

	out := make([]string, n)
	var recErrs risk.RecordErrors
	for i := 0; i < n; i++ {
		if err := checkSex(in.Sex[i]); err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		ldl, hdl, tg := in.LDL[i], in.HDL[i], in.Triglycerides[i]
		if in.Mmol {
			ldl, hdl = risk.MmolToMgdl(ldl), risk.MmolToMgdl(hdl)
			tg = risk.MmolToMgdlTG(tg)
		}
		total := procamLDLPoints.PointsFor(ldl)
		total += procamHDLPoints.PointsFor(hdl)
		total += procamTGPoints.PointsFor(tg)
		total += procamSBPPoints.PointsFor(in.SBP[i])
		if in.Smoker[i] {
			total += procamSmokerPoints
		}
		if in.Diabetic[i] {
			total += procamDiabeticPoints
		}
		if in.FamilialMI[i] {
			total += procamFamilialMIPoints
		}
		mins := procamBucketMins[in.Sex[i]][procamSubTableAge(in.Age[i])]
		out[i] = risk.BucketTable{Mins: mins[:], Labels: PROCAMBuckets}.Lookup(total)
	}
	if err := recErrs.OrNil(); err != nil {
		return nil, err
	}
	return out, nil
}

// PROCAM2007One classifies a single record.
func PROCAM2007One(sex risk.Sex, age, ldl, hdl, sbp, triglycerides float64, smoker, diabetic, familialMI, mmol bool) (string, error) {
	out, err := PROCAM2007(PROCAMInput{
		Sex:           []risk.Sex{sex},
		Age:           []float64{age},
		LDL:           []float64{ldl},
		HDL:           []float64{hdl},
		SBP:           []float64{sbp},
		Triglycerides: []float64{triglycerides},
		Smoker:        []bool{smoker},
		Diabetic:      []bool{diabetic},
		FamilialMI:    []bool{familialMI},
		Mmol:          mmol,
	})
	if err != nil {
		return "", err
	}
	return out[0], nil
}
