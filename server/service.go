package server

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/intervention-engine/cvriskservice/risk"
	"github.com/intervention-engine/cvriskservice/scores"
)

// ErrUnknownScore is returned when a request names a score no scorer is
// registered for.
var ErrUnknownScore = errors.New("unknown score")

// ErrResultNotFound is returned when no stored result matches the
// requested id.
var ErrResultNotFound = errors.New("result not found")

// Scorer runs one named score over a decoded cohort. Numeric scores
// return []float64, bucketed scores []string.
type Scorer func(c Cohort) (interface{}, error)

// ResultDocument is the stored outcome of one calculation.
type ResultDocument struct {
	Id        bson.ObjectId `bson:"_id" json:"id"`
	Score     string        `bson:"score" json:"score"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	Cohort    Cohort        `bson:"cohort" json:"cohort"`
	Results   interface{}   `bson:"results" json:"results"`
}

// Service dispatches calculation requests to registered scorers and
// persists their results. A nil database disables persistence.
type Service struct {
	db      *mgo.Database
	scorers map[string]Scorer
}

// NewService builds a Service with every shipped score registered.
func NewService(db *mgo.Database) *Service {
	s := &Service{db: db, scorers: make(map[string]Scorer)}
	s.Register("ascvd_acc_aha", scoreACCAHA)
	s.Register("ascvd_frs_cvd_table", scoreFRSCVDTable)
	s.Register("ascvd_frs_cvd_formula", scoreFRSCVDFormula)
	s.Register("ascvd_frs_cvd_heart_age", scoreFRSCVDHeartAge)
	s.Register("ascvd_frs_chd", scoreFRSCHD)
	s.Register("esc_score_table", scoreESCTable)
	s.Register("esc_score_formula", scoreESCFormula)
	s.Register("esc_score_ger_2016_table", scoreESCGER2016)
	s.Register("score2", scoreSCORE2)
	s.Register("procam_score_2007", scorePROCAM)
	s.Register("reach_score", scoreReach)
	s.Register("tra2p_score", scoreTRA2P)
	s.Register("invest_score", scoreInvest)
	return s
}

// Register adds a named scorer, replacing any previous registration.
func (s *Service) Register(name string, fn Scorer) {
	s.scorers[name] = fn
}

// Names lists the registered score names in sorted order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.scorers))
	for name := range s.scorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calculate runs the named score over the cohort and persists the
// result document when a database is configured.
func (s *Service) Calculate(name string, c Cohort) (*ResultDocument, error) {
	scorer, ok := s.scorers[name]
	if !ok {
		return nil, ErrUnknownScore
	}
	results, err := scorer(c)
	if err != nil {
		return nil, err
	}
	doc := &ResultDocument{
		Id:        bson.NewObjectId(),
		Score:     name,
		CreatedAt: time.Now().UTC(),
		Cohort:    c,
		Results:   results,
	}
	if s.db != nil {
		if err := s.db.C("results").Insert(doc); err != nil {
			return nil, errors.Wrap(err, "storing result")
		}
	}
	return doc, nil
}

// Result fetches a stored result document by its hex id.
func (s *Service) Result(id string) (*ResultDocument, error) {
	if !bson.IsObjectIdHex(id) || s.db == nil {
		return nil, ErrResultNotFound
	}
	doc := &ResultDocument{}
	err := s.db.C("results").FindId(bson.ObjectIdHex(id)).One(doc)
	if err == mgo.ErrNotFound {
		return nil, ErrResultNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "fetching result")
	}
	return doc, nil
}

func scoreACCAHA(c Cohort) (interface{}, error) {
	eth, err := c.ethnicities()
	if err != nil {
		return nil, err
	}
	sex, err := c.sexes()
	if err != nil {
		return nil, err
	}
	return scores.ACCAHA(scores.ACCAHAInput{
		Ethnicity: eth,
		Sex:       sex,
		Age:       c.Age,
		TotChol:   c.TotChol,
		HDL:       c.HDL,
		SBP:       c.SBP,
		Smoker:    c.Smoker,
		Diabetic:  c.Diabetic,
		BPMed:     c.BPMed,
	})
}

func (c *Cohort) frsCVDInput() (scores.FRSCVDInput, error) {
	sex, err := c.sexes()
	if err != nil {
		return scores.FRSCVDInput{}, err
	}
	return scores.FRSCVDInput{
		Sex:      sex,
		Age:      c.Age,
		TotChol:  c.TotChol,
		HDL:      c.HDL,
		SBP:      c.SBP,
		BPMed:    c.BPMed,
		Smoker:   c.Smoker,
		Diabetic: c.Diabetic,
		Mmol:     c.Mmol,
	}, nil
}

func scoreFRSCVDTable(c Cohort) (interface{}, error) {
	in, err := c.frsCVDInput()
	if err != nil {
		return nil, err
	}
	return scores.FRSCVDTable(in)
}

func scoreFRSCVDFormula(c Cohort) (interface{}, error) {
	in, err := c.frsCVDInput()
	if err != nil {
		return nil, err
	}
	return scores.FRSCVDFormula(in)
}

func scoreFRSCVDHeartAge(c Cohort) (interface{}, error) {
	in, err := c.frsCVDInput()
	if err != nil {
		return nil, err
	}
	return scores.FRSCVDHeartAge(in)
}

func scoreFRSCHD(c Cohort) (interface{}, error) {
	model, err := risk.ParseCholModel(c.CholCat)
	if err != nil {
		return nil, err
	}
	sex, err := c.sexes()
	if err != nil {
		return nil, err
	}
	return scores.FRSCHD(scores.FRSCHDInput{
		Sex:       sex,
		Age:       c.Age,
		TotChol:   c.TotChol,
		LDL:       c.LDL,
		HDL:       c.HDL,
		SBP:       c.SBP,
		DBP:       c.DBP,
		Smoker:    c.Smoker,
		Diabetic:  c.Diabetic,
		CholModel: model,
		Mmol:      c.Mmol,
	})
}

func (c *Cohort) escInput() (scores.ESCScoreInput, error) {
	sex, err := c.sexes()
	if err != nil {
		return scores.ESCScoreInput{}, err
	}
	return scores.ESCScoreInput{
		Sex:     sex,
		Age:     c.Age,
		TotChol: c.TotChol,
		SBP:     c.SBP,
		Smoker:  c.Smoker,
		Mmol:    c.Mmol,
	}, nil
}

func scoreESCTable(c Cohort) (interface{}, error) {
	region, err := risk.ParseRegion(c.Risk)
	if err != nil {
		return nil, err
	}
	in, err := c.escInput()
	if err != nil {
		return nil, err
	}
	return scores.ESCScoreTable(in, region)
}

func scoreESCFormula(c Cohort) (interface{}, error) {
	region, err := risk.ParseRegion(c.Risk)
	if err != nil {
		return nil, err
	}
	in, err := c.escInput()
	if err != nil {
		return nil, err
	}
	return scores.ESCScoreFormula(in, region)
}

func scoreESCGER2016(c Cohort) (interface{}, error) {
	in, err := c.escInput()
	if err != nil {
		return nil, err
	}
	return scores.ESCScoreGER2016Table(in)
}

func scoreSCORE2(c Cohort) (interface{}, error) {
	region, err := risk.ParseRegion(c.Risk)
	if err != nil {
		return nil, err
	}
	sex, err := c.sexes()
	if err != nil {
		return nil, err
	}
	return scores.SCORE2(scores.SCORE2Input{
		Sex:      sex,
		Age:      c.Age,
		SBP:      c.SBP,
		TotChol:  c.TotChol,
		HDL:      c.HDL,
		Smoker:   c.Smoker,
		Diabetic: c.Diabetic,
		Mmol:     c.Mmol,
	}, region)
}

func scorePROCAM(c Cohort) (interface{}, error) {
	sex, err := c.sexes()
	if err != nil {
		return nil, err
	}
	return scores.PROCAM2007(scores.PROCAMInput{
		Sex:           sex,
		Age:           c.Age,
		LDL:           c.LDL,
		HDL:           c.HDL,
		SBP:           c.SBP,
		Triglycerides: c.Triglycerides,
		Smoker:        c.Smoker,
		Diabetic:      c.Diabetic,
		FamilialMI:    c.FamilialMI,
		Mmol:          c.Mmol,
	})
}

func scoreReach(c Cohort) (interface{}, error) {
	sex, err := c.sexes()
	if err != nil {
		return nil, err
	}
	regions, err := c.reachRegions()
	if err != nil {
		return nil, err
	}
	return scores.ReachScore(scores.ReachInput{
		Sex:          sex,
		Age:          c.Age,
		BMI:          c.BMI,
		VascularBeds: c.VascularBeds,
		Smoker:       c.Smoker,
		Diabetic:     c.Diabetic,
		CVEvent:      c.CVEvent,
		CHF:          c.CHF,
		AF:           c.AF,
		Statin:       c.Statin,
		ASA:          c.ASA,
		Region:       regions,
	})
}

func scoreTRA2P(c Cohort) (interface{}, error) {
	return scores.TRA2P(scores.TRA2PInput{
		Age:          c.Age,
		EGFR:         c.EGFR,
		CHF:          c.CHF,
		Hypertension: c.Hypertension,
		Diabetic:     c.Diabetic,
		Stroke:       c.Stroke,
		BypassSurg:   c.BypassSurg,
		OtherSurg:    c.OtherSurg,
		Smoker:       c.Smoker,
	})
}

func scoreInvest(c Cohort) (interface{}, error) {
	return scores.Invest(scores.InvestInput{
		Age:      c.Age,
		HR:       c.HR,
		SBP:      c.SBP,
		DBP:      c.DBP,
		EGFR:     c.EGFR,
		MI:       c.MI,
		CHF:      c.CHF,
		Diabetic: c.Diabetic,
		Stroke:   c.Stroke,
		PAD:      c.PAD,
		CKD:      c.CKD,
		Smoker:   c.Smoker,
	})
}
