package scores

import (
	"github.com/intervention-engine/cvriskservice/risk"
	. "gopkg.in/check.v1"
)

type FraminghamCHDSuite struct{}

var _ = Suite(&FraminghamCHDSuite{})

func (s *FraminghamCHDSuite) TestTotalCholesterolModel(c *C) {
	out, err := FRSCHD(FRSCHDInput{
		Sex:       []risk.Sex{risk.Male, risk.Female},
		Age:       []float64{55, 55},
		TotChol:   []float64{250, 250},
		HDL:       []float64{39, 39},
		SBP:       []float64{146, 146},
		DBP:       []float64{88, 88},
		Smoker:    []bool{true, true},
		Diabetic:  []bool{false, false},
		CholModel: risk.CholTC,
	})
	c.Assert(err, IsNil)
	c.Assert(out, DeepEquals, []float64{33.36, 19.17})
}

func (s *FraminghamCHDSuite) TestLDLModel(c *C) {
	m, err := FRSCHDOne(risk.CholLDL, risk.Male, 55, 170, 39, 146, 88, true, false)
	c.Assert(err, IsNil)
	c.Assert(m, Equals, 30.79)
	f, err := FRSCHDOne(risk.CholLDL, risk.Female, 44, 120, 61, 121, 79, false, true)
	c.Assert(err, IsNil)
	c.Assert(f, Equals, 4.01)
}

func (s *FraminghamCHDSuite) TestDiastolicEscalatesBloodPressureStage(c *C) {
	// Systolic 125 alone is stage 1; a diastolic of 95 pushes the record
	// to stage 3 and the risk up with it.
	withDBP, err := FRSCHDOne(risk.CholTC, risk.Male, 55, 250, 39, 125, 95, true, false)
	c.Assert(err, IsNil)
	c.Assert(withDBP, Equals, 33.36)

	withoutDBP, err := FRSCHD(FRSCHDInput{
		Sex:       []risk.Sex{risk.Male},
		Age:       []float64{55},
		TotChol:   []float64{250},
		HDL:       []float64{39},
		SBP:       []float64{125},
		Smoker:    []bool{true},
		Diabetic:  []bool{false},
		CholModel: risk.CholTC,
	})
	c.Assert(err, IsNil)
	c.Assert(withoutDBP, DeepEquals, []float64{21.41})
}

func (s *FraminghamCHDSuite) TestMmolInputMatchesMgdl(c *C) {
	mmol, err := FRSCHD(FRSCHDInput{
		Sex:       []risk.Sex{risk.Male},
		Age:       []float64{55},
		TotChol:   []float64{250 / risk.MgdlPerMmol},
		HDL:       []float64{39 / risk.MgdlPerMmol},
		SBP:       []float64{146},
		DBP:       []float64{88},
		Smoker:    []bool{true},
		Diabetic:  []bool{false},
		CholModel: risk.CholTC,
		Mmol:      true,
	})
	c.Assert(err, IsNil)
	c.Assert(mmol, DeepEquals, []float64{33.36})
}

func (s *FraminghamCHDSuite) TestModelChoiceSelectsRequiredVector(c *C) {
	in := FRSCHDInput{
		Sex:       []risk.Sex{risk.Male},
		Age:       []float64{55},
		TotChol:   []float64{250},
		HDL:       []float64{39},
		SBP:       []float64{146},
		Smoker:    []bool{true},
		Diabetic:  []bool{false},
		CholModel: risk.CholLDL,
	}
	_, err := FRSCHD(in)
	c.Assert(err, FitsTypeOf, risk.MissingInputError{})
	c.Assert(err.(risk.MissingInputError).Param, Equals, "ldl")
}

func (s *FraminghamCHDSuite) TestUnknownCholesterolModelFails(c *C) {
	_, err := FRSCHD(FRSCHDInput{CholModel: risk.CholModel(7)})
	c.Assert(err, FitsTypeOf, risk.InvalidOptionError{})
}
