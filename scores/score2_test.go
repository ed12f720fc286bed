package scores

import (
	"github.com/intervention-engine/cvriskservice/risk"
	. "gopkg.in/check.v1"
)

type SCORE2Suite struct{}

var _ = Suite(&SCORE2Suite{})

func (s *SCORE2Suite) TestPaperWorkedExample(c *C) {
	// 50-year-old male smoker, systolic 140, total cholesterol 6.3,
	// HDL 1.4 mmol/L, from the 2021 paper's supplement.
	out, err := SCORE2(SCORE2Input{
		Sex:      []risk.Sex{risk.Male},
		Age:      []float64{50},
		SBP:      []float64{140},
		TotChol:  []float64{6.3},
		HDL:      []float64{1.4},
		Smoker:   []bool{true},
		Diabetic: []bool{false},
		Mmol:     true,
	}, risk.LowRisk)
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []float64{6.31})
}

func (s *SCORE2Suite) TestRegionsOrderRisk(c *C) {
	var prev float64
	for _, region := range []risk.Region{risk.LowRisk, risk.ModerateRisk, risk.HighRisk, risk.VeryHighRisk} {
		v, err := SCORE2One(region, risk.Male, 50, 140, 6.3, 1.4, true, false, true)
		c.Assert(err, IsNil)
		c.Assert(v > prev, Equals, true, Commentf("region %v", region))
		prev = v
	}
}

func (s *SCORE2Suite) TestModerateRegion(c *C) {
	v, err := SCORE2One(risk.ModerateRisk, risk.Male, 50, 140, 6.3, 1.4, true, false, true)
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 8.11)
}

func (s *SCORE2Suite) TestFemaleStrata(c *C) {
	high, err := SCORE2One(risk.HighRisk, risk.Female, 60, 130, 5.2, 1.5, false, true, true)
	c.Assert(err, IsNil)
	c.Assert(high, Equals, 10.05)
	veryHigh, err := SCORE2One(risk.VeryHighRisk, risk.Female, 45, 124, 6.5, 1.1, true, false, true)
	c.Assert(err, IsNil)
	c.Assert(veryHigh, Equals, 10.75)
}

func (s *SCORE2Suite) TestMgdlInputMatchesMmol(c *C) {
	v, err := SCORE2One(risk.LowRisk, risk.Male, 50, 140, 243.621, 54.138, true, false, false)
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 6.31)
}

func (s *SCORE2Suite) TestAgeClampsToValidityWindow(c *C) {
	under, err := SCORE2One(risk.LowRisk, risk.Male, 30, 140, 6.3, 1.4, true, false, true)
	c.Assert(err, IsNil)
	atMin, err := SCORE2One(risk.LowRisk, risk.Male, 40, 140, 6.3, 1.4, true, false, true)
	c.Assert(err, IsNil)
	c.Assert(under, Equals, atMin)

	over, err := SCORE2One(risk.LowRisk, risk.Male, 80, 140, 6.3, 1.4, true, false, true)
	c.Assert(err, IsNil)
	atMax, err := SCORE2One(risk.LowRisk, risk.Male, 69, 140, 6.3, 1.4, true, false, true)
	c.Assert(err, IsNil)
	c.Assert(over, Equals, atMax)
}

func (s *SCORE2Suite) TestUnknownRegionFails(c *C) {
	_, err := SCORE2One(risk.Region(9), risk.Male, 50, 140, 6.3, 1.4, true, false, true)
	c.Assert(err, FitsTypeOf, risk.InvalidOptionError{})
}

func (s *SCORE2Suite) TestMismatchedLengthsFail(c *C) {
	_, err := SCORE2(SCORE2Input{
		Sex:      []risk.Sex{risk.Male},
		Age:      []float64{50, 60},
		SBP:      []float64{140, 140},
		TotChol:  []float64{6.3, 6.3},
		HDL:      []float64{1.4, 1.4},
		Smoker:   []bool{true, false},
		Diabetic: []bool{false, false},
		Mmol:     true,
	}, risk.LowRisk)
	c.Assert(err, FitsTypeOf, risk.ShapeError{})
	c.Assert(err.(risk.ShapeError).Param, Equals, "sex")
}
