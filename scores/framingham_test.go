package scores

import (
	"github.com/intervention-engine/cvriskservice/risk"
	. "gopkg.in/check.v1"
)

type FraminghamCVDSuite struct {
	// The worked example from D'Agostino et al. 2008: a 61-year-old
	// woman, total cholesterol 180, HDL 47, untreated systolic 124,
	// smoker, not diabetic.
	DAgostino FRSCVDInput
}

var _ = Suite(&FraminghamCVDSuite{})

func (s *FraminghamCVDSuite) SetUpTest(c *C) {
	s.DAgostino = FRSCVDInput{
		Sex:      []risk.Sex{risk.Female},
		Age:      []float64{61},
		TotChol:  []float64{180},
		HDL:      []float64{47},
		SBP:      []float64{124},
		BPMed:    []bool{false},
		Smoker:   []bool{true},
		Diabetic: []bool{false},
	}
}

func (s *FraminghamCVDSuite) TestPaperWorkedExampleTable(c *C) {
	out, err := FRSCVDTable(s.DAgostino)
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []float64{10.0})
}

func (s *FraminghamCVDSuite) TestPaperWorkedExampleFormula(c *C) {
	out, err := FRSCVDFormula(s.DAgostino)
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []float64{10.48})
}

func (s *FraminghamCVDSuite) TestPaperWorkedExampleHeartAge(c *C) {
	out, err := FRSCVDHeartAge(s.DAgostino)
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []float64{73})
}

func (s *FraminghamCVDSuite) TestMmolInputMatchesMgdl(c *C) {
	mmol := s.DAgostino
	mmol.TotChol = []float64{180 / risk.MgdlPerMmol}
	mmol.HDL = []float64{47 / risk.MgdlPerMmol}
	mmol.Mmol = true
	fromMmol, err := FRSCVDFormula(mmol)
	c.Assert(err, IsNil)
	fromMgdl, err := FRSCVDFormula(s.DAgostino)
	c.Assert(err, IsNil)
	c.Assert(fromMmol, DeepEquals, fromMgdl)
}

func (s *FraminghamCVDSuite) TestHighPointTotalsClampToCeiling(c *C) {
	// 70-year-old man, treated hypertension, smoker and diabetic lands
	// at 23 points, past the end of the male chart.
	out, err := FRSCVDTableOne(risk.Male, 70, 161, 55, 125, true, true, true)
	c.Assert(err, IsNil)
	c.Assert(out, Equals, 30.0)
}

func (s *FraminghamCVDSuite) TestFormulaCoversClampedRegion(c *C) {
	out, err := FRSCVDFormulaOne(risk.Male, 70, 161, 55, 125, true, true, true)
	c.Assert(err, IsNil)
	c.Assert(out, Equals, 53.51)
}

func (s *FraminghamCVDSuite) TestTableAndFormulaRankAlike(c *C) {
	lowTbl, err := FRSCVDTableOne(risk.Male, 40, 160, 60, 115, false, false, false)
	c.Assert(err, IsNil)
	highTbl, err := FRSCVDTableOne(risk.Male, 70, 250, 35, 155, true, true, true)
	c.Assert(err, IsNil)
	lowFrm, err := FRSCVDFormulaOne(risk.Male, 40, 160, 60, 115, false, false, false)
	c.Assert(err, IsNil)
	highFrm, err := FRSCVDFormulaOne(risk.Male, 70, 250, 35, 155, true, true, true)
	c.Assert(err, IsNil)
	c.Assert(lowTbl < highTbl, Equals, true)
	c.Assert(lowFrm < highFrm, Equals, true)
}

func (s *FraminghamCVDSuite) TestTreatedPressureScoresHigher(c *C) {
	untreated, err := FRSCVDTableOne(risk.Female, 61, 180, 47, 124, false, true, false)
	c.Assert(err, IsNil)
	treated, err := FRSCVDTableOne(risk.Female, 61, 180, 47, 124, true, true, false)
	c.Assert(err, IsNil)
	c.Assert(treated > untreated, Equals, true)
}

func (s *FraminghamCVDSuite) TestShapeErrorNamesParameter(c *C) {
	s.DAgostino.Smoker = []bool{true, false}
	_, err := FRSCVDTable(s.DAgostino)
	c.Assert(err, FitsTypeOf, risk.ShapeError{})
	c.Assert(err.(risk.ShapeError).Param, Equals, "smoker")
}

func (s *FraminghamCVDSuite) TestFormulaRejectsNonPositiveMeasurements(c *C) {
	s.DAgostino.HDL = []float64{0}
	out, err := FRSCVDFormula(s.DAgostino)
	c.Assert(out, IsNil)
	c.Assert(err, FitsTypeOf, risk.RecordErrors{})
	recErr := err.(risk.RecordErrors)[0]
	c.Assert(recErr.Index, Equals, 0)
	c.Assert(recErr.Err.(risk.DomainError).Param, Equals, "hdl")
}

func (s *FraminghamCVDSuite) TestUnknownSexFails(c *C) {
	s.DAgostino.Sex = []risk.Sex{risk.Sex(3)}
	_, err := FRSCVDTable(s.DAgostino)
	c.Assert(err, FitsTypeOf, risk.RecordErrors{})
	c.Assert(err.(risk.RecordErrors)[0].Err, FitsTypeOf, risk.InvalidStratumError{})
}
