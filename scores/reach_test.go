package scores

import (
	"github.com/intervention-engine/cvriskservice/risk"
	. "gopkg.in/check.v1"
)

type ReachSuite struct{}

var _ = Suite(&ReachSuite{})

func (s *ReachSuite) TestPointAccumulation(c *C) {
	// 66-year-old male smoker with diabetes and a prior event, one
	// diseased vascular bed, on a statin: 3+1+2+2+2+1-1 = 10 points.
	v, err := ReachScoreOne(risk.Male, 66, 27, 1, true, true, true, false, false, true, false, risk.ReachOther)
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 14.6)
}

func (s *ReachSuite) TestTreatmentAndRegionDeductionsReachFloor(c *C) {
	// Statin, aspirin and the Japan/Australia deduction take an
	// otherwise point-free record to the table floor.
	v, err := ReachScoreOne(risk.Female, 40, 24, 0, false, false, false, false, false, true, true, risk.ReachJapanAustralia)
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 0.6)
}

func (s *ReachSuite) TestEasternEuropeRaisesRisk(c *C) {
	base, err := ReachScoreOne(risk.Male, 66, 27, 1, true, true, true, false, false, true, false, risk.ReachOther)
	c.Assert(err, IsNil)
	east, err := ReachScoreOne(risk.Male, 66, 27, 1, true, true, true, false, false, true, false, risk.ReachEasternEuropeMiddleEast)
	c.Assert(err, IsNil)
	c.Assert(east > base, Equals, true)
}

func (s *ReachSuite) TestOptionalVectorsDefault(c *C) {
	// Without BMI and region vectors the underweight point and the
	// regional adjustment do not apply.
	out, err := ReachScore(ReachInput{
		Sex:          []risk.Sex{risk.Male},
		Age:          []float64{66},
		VascularBeds: []int{1},
		Smoker:       []bool{true},
		Diabetic:     []bool{true},
		CVEvent:      []bool{true},
		CHF:          []bool{false},
		AF:           []bool{false},
		Statin:       []bool{true},
		ASA:          []bool{false},
	})
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []float64{14.6})
}

func (s *ReachSuite) TestUnderweightPoint(c *C) {
	normal, err := ReachScoreOne(risk.Male, 66, 24, 1, true, true, true, false, false, true, false, risk.ReachOther)
	c.Assert(err, IsNil)
	underweight, err := ReachScoreOne(risk.Male, 66, 19, 1, true, true, true, false, false, true, false, risk.ReachOther)
	c.Assert(err, IsNil)
	c.Assert(underweight > normal, Equals, true)
}

func (s *ReachSuite) TestHighTotalsClampToCeiling(c *C) {
	v, err := ReachScoreOne(risk.Male, 90, 18, 3, true, true, true, true, true, false, false, risk.ReachEasternEuropeMiddleEast)
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 61.1)
}

func (s *ReachSuite) TestVascularBedCountOutOfRangeFails(c *C) {
	_, err := ReachScoreOne(risk.Male, 66, 27, 4, true, true, true, false, false, true, false, risk.ReachOther)
	c.Assert(err, FitsTypeOf, risk.RecordErrors{})
	c.Assert(err.(risk.RecordErrors)[0].Err.(risk.DomainError).Param, Equals, "vasc")
}
