package scores

import (
	"github.com/intervention-engine/cvriskservice/risk"
	. "gopkg.in/check.v1"
)

type TRA2PSuite struct{}

var _ = Suite(&TRA2PSuite{})

func (s *TRA2PSuite) TestIndicatorCount(c *C) {
	// Hypertension, age over 75, diabetes, renal dysfunction and smoking
	// make five indicators.
	out, err := TRA2P(TRA2PInput{
		Age:          []float64{78},
		EGFR:         []float64{48},
		CHF:          []bool{false},
		Hypertension: []bool{true},
		Diabetic:     []bool{true},
		Stroke:       []bool{false},
		BypassSurg:   []bool{false},
		OtherSurg:    []bool{false},
		Smoker:       []bool{true},
	})
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []float64{28.8})
}

func (s *TRA2PSuite) TestNoIndicators(c *C) {
	v, err := TRA2POne(50, false, false, false, false, false, false, 90, false)
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 2.6)
}

func (s *TRA2PSuite) TestAllIndicatorsClampToCeiling(c *C) {
	// All nine indicators present clamps past the seven-indicator tail.
	v, err := TRA2POne(80, true, true, true, true, true, true, 30, true)
	c.Assert(err, IsNil)
	c.Assert(v, Equals, 45.2)
}

func (s *TRA2PSuite) TestAgeThreshold(c *C) {
	under, err := TRA2POne(74, false, true, false, false, false, false, 90, false)
	c.Assert(err, IsNil)
	at, err := TRA2POne(75, false, true, false, false, false, false, 90, false)
	c.Assert(err, IsNil)
	c.Assert(under, Equals, 4.4)
	c.Assert(at, Equals, 7.0)
}

func (s *TRA2PSuite) TestNonPositiveEGFRFails(c *C) {
	_, err := TRA2POne(60, false, false, false, false, false, false, 0, false)
	c.Assert(err, FitsTypeOf, risk.RecordErrors{})
	c.Assert(err.(risk.RecordErrors)[0].Err.(risk.DomainError).Param, Equals, "egfr")
}

func (s *TRA2PSuite) TestMismatchedLengthsFail(c *C) {
	_, err := TRA2P(TRA2PInput{
		Age:  []float64{60, 70},
		EGFR: []float64{90},
	})
	c.Assert(err, FitsTypeOf, risk.ShapeError{})
}
