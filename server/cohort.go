package server

import "github.com/intervention-engine/cvriskservice/risk"

// Cohort is the wire form of a scoring request: parallel per-record
// vectors plus the call-level options. Each score reads the subset of
// fields it needs; extra fields are ignored.
type Cohort struct {
	Sex           []string  `json:"sex,omitempty" bson:"sex,omitempty"`
	Ethnicity     []string  `json:"ethnicity,omitempty" bson:"ethnicity,omitempty"`
	Age           []float64 `json:"age,omitempty" bson:"age,omitempty"`
	TotChol       []float64 `json:"totchol,omitempty" bson:"totchol,omitempty"`
	LDL           []float64 `json:"ldl,omitempty" bson:"ldl,omitempty"`
	HDL           []float64 `json:"hdl,omitempty" bson:"hdl,omitempty"`
	SBP           []float64 `json:"sbp,omitempty" bson:"sbp,omitempty"`
	DBP           []float64 `json:"dbp,omitempty" bson:"dbp,omitempty"`
	Triglycerides []float64 `json:"triglycerides,omitempty" bson:"triglycerides,omitempty"`
	HR            []float64 `json:"hr,omitempty" bson:"hr,omitempty"`
	EGFR          []float64 `json:"egfr,omitempty" bson:"egfr,omitempty"`
	BMI           []float64 `json:"bmi,omitempty" bson:"bmi,omitempty"`
	VascularBeds  []int     `json:"vasc,omitempty" bson:"vasc,omitempty"`
	Smoker        []bool    `json:"smoker,omitempty" bson:"smoker,omitempty"`
	Diabetic      []bool    `json:"diabetic,omitempty" bson:"diabetic,omitempty"`
	BPMed         []bool    `json:"bp_med,omitempty" bson:"bp_med,omitempty"`
	FamilialMI    []bool    `json:"famMI,omitempty" bson:"famMI,omitempty"`
	MI            []bool    `json:"mi,omitempty" bson:"mi,omitempty"`
	Stroke        []bool    `json:"stroke,omitempty" bson:"stroke,omitempty"`
	CHF           []bool    `json:"chf,omitempty" bson:"chf,omitempty"`
	AF            []bool    `json:"af,omitempty" bson:"af,omitempty"`
	CVEvent       []bool    `json:"cv_event,omitempty" bson:"cv_event,omitempty"`
	Statin        []bool    `json:"statin,omitempty" bson:"statin,omitempty"`
	ASA           []bool    `json:"asa,omitempty" bson:"asa,omitempty"`
	PAD           []bool    `json:"pad,omitempty" bson:"pad,omitempty"`
	CKD           []bool    `json:"ckd,omitempty" bson:"ckd,omitempty"`
	Hypertension  []bool    `json:"ah,omitempty" bson:"ah,omitempty"`
	BypassSurg    []bool    `json:"bypass_surg,omitempty" bson:"bypass_surg,omitempty"`
	OtherSurg     []bool    `json:"other_surg,omitempty" bson:"other_surg,omitempty"`
	ReachRegion   []string  `json:"region,omitempty" bson:"region,omitempty"`

	// Options shared by the whole call.
	Risk    string `json:"risk,omitempty" bson:"risk,omitempty"`
	CholCat string `json:"chol_cat,omitempty" bson:"chol_cat,omitempty"`
	Mmol    bool   `json:"mmol,omitempty" bson:"mmol,omitempty"`
}

func (c *Cohort) sexes() ([]risk.Sex, error) {
	out := make([]risk.Sex, len(c.Sex))
	var recErrs risk.RecordErrors
	for i, s := range c.Sex {
		v, err := risk.ParseSex(s)
		if err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		out[i] = v
	}
	return out, recErrs.OrNil()
}

func (c *Cohort) ethnicities() ([]risk.Ethnicity, error) {
	out := make([]risk.Ethnicity, len(c.Ethnicity))
	var recErrs risk.RecordErrors
	for i, s := range c.Ethnicity {
		v, err := risk.ParseEthnicity(s)
		if err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		out[i] = v
	}
	return out, recErrs.OrNil()
}

func (c *Cohort) reachRegions() ([]risk.ReachRegion, error) {
	if c.ReachRegion == nil {
		return nil, nil
	}
	out := make([]risk.ReachRegion, len(c.ReachRegion))
	var recErrs risk.RecordErrors
	for i, s := range c.ReachRegion {
		v, err := risk.ParseReachRegion(s)
		if err != nil {
			recErrs = append(recErrs, risk.RecordError{Index: i, Err: err})
			continue
		}
		out[i] = v
	}
	return out, recErrs.OrNil()
}
