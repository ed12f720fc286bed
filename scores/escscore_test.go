package scores

import (
	"github.com/intervention-engine/cvriskservice/risk"
	. "gopkg.in/check.v1"
)

type ESCScoreSuite struct{}

var _ = Suite(&ESCScoreSuite{})

func (s *ESCScoreSuite) TestGermanChartWorkedExamples(c *C) {
	out, err := ESCScoreGER2016Table(ESCScoreInput{
		Sex:     []risk.Sex{risk.Male, risk.Female},
		Age:     []float64{60, 40},
		TotChol: []float64{270.69, 193.35}, // 7 and 5 mmol/L
		SBP:     []float64{160, 140},
		Smoker:  []bool{false, true},
	})
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []float64{7, 0})
}

func (s *ESCScoreSuite) TestGermanChartMmolInput(c *C) {
	v, err := ESCScoreGER2016TableOne(risk.Male, 60, 7, 160, false, true)
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 7.0)
}

func (s *ESCScoreSuite) TestEuropeanChartRegions(c *C) {
	in := ESCScoreInput{
		Sex:     []risk.Sex{risk.Male},
		Age:     []float64{60},
		TotChol: []float64{7},
		SBP:     []float64{160},
		Smoker:  []bool{false},
		Mmol:    true,
	}
	low, err := ESCScoreTable(in, risk.LowRisk)
	c.Assert(err, IsNil)
	c.Assert(low, DeepEquals, []float64{6})
	high, err := ESCScoreTable(in, risk.HighRisk)
	c.Assert(err, IsNil)
	c.Assert(high, DeepEquals, []float64{11})
	c.Assert(high[0] > low[0], Equals, true)
}

func (s *ESCScoreSuite) TestChartClampsExtremeReadings(c *C) {
	in := ESCScoreInput{
		Sex:     []risk.Sex{risk.Male},
		Age:     []float64{60},
		TotChol: []float64{10},  // beyond the 8 mmol/L column
		SBP:     []float64{200}, // beyond the 180 row
		Smoker:  []bool{false},
		Mmol:    true,
	}
	out, err := ESCScoreTable(in, risk.LowRisk)
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []float64{10})
}

func (s *ESCScoreSuite) TestChartRejectsUnsupportedRegion(c *C) {
	in := ESCScoreInput{
		Sex:     []risk.Sex{risk.Male},
		Age:     []float64{60},
		TotChol: []float64{7},
		SBP:     []float64{160},
		Smoker:  []bool{false},
		Mmol:    true,
	}
	_, err := ESCScoreTable(in, risk.ModerateRisk)
	c.Assert(err, FitsTypeOf, risk.InvalidOptionError{})
}

func (s *ESCScoreSuite) TestFormula(c *C) {
	in := ESCScoreInput{
		Sex:     []risk.Sex{risk.Male, risk.Female},
		Age:     []float64{60, 40},
		TotChol: []float64{270, 195},
		SBP:     []float64{162, 135},
		Smoker:  []bool{false, true},
	}
	high, err := ESCScoreFormula(in, risk.HighRisk)
	c.Assert(err, IsNil)
	c.Assert(high, DeepEquals, []float64{11.08, 0.17})
	low, err := ESCScoreFormula(in, risk.LowRisk)
	c.Assert(err, IsNil)
	c.Assert(low[0], Equals, 6.04)
	c.Assert(low[0] < high[0], Equals, true)
}

func (s *ESCScoreSuite) TestFormulaRejectsYoungAges(c *C) {
	in := ESCScoreInput{
		Sex:     []risk.Sex{risk.Male},
		Age:     []float64{19},
		TotChol: []float64{5},
		SBP:     []float64{120},
		Smoker:  []bool{false},
		Mmol:    true,
	}
	_, err := ESCScoreFormula(in, risk.LowRisk)
	c.Assert(err, FitsTypeOf, risk.RecordErrors{})
	c.Assert(err.(risk.RecordErrors)[0].Err, FitsTypeOf, risk.DomainError{})
}

func (s *ESCScoreSuite) TestChartMissingVectorFails(c *C) {
	_, err := ESCScoreGER2016Table(ESCScoreInput{Age: []float64{60}})
	c.Assert(err, FitsTypeOf, risk.MissingInputError{})
}
