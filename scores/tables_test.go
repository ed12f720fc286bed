package scores

import (
	"github.com/intervention-engine/cvriskservice/risk"
	. "gopkg.in/check.v1"
)

type TablesSuite struct{}

var _ = Suite(&TablesSuite{})

func (s *TablesSuite) TestShippedPointTablesMonotonic(c *C) {
	for name, table := range map[string]risk.PointTable{
		"frs cvd female":       frsCVDRisk[risk.Female],
		"frs cvd male":         frsCVDRisk[risk.Male],
		"frs heart age female": frsCVDHeartAge[risk.Female],
		"frs heart age male":   frsCVDHeartAge[risk.Male],
		"reach":                reachRisk,
		"tra2p":                tra2pRisk,
		"invest":               investRisk,
	} {
		c.Check(table.Monotonic(), Equals, true, Commentf("%s", name))
	}
}

func (s *TablesSuite) TestShippedChartsMonotonic(c *C) {
	// Risk never decreases along the cholesterol, pressure or age axis
	// of any chart.
	for name, chart := range map[string]*escChart{
		"germany 2016": &escChartGermany2016,
		"europe low":   &escChartLow,
		"europe high":  &escChartHigh,
	} {
		for sex := 0; sex < 2; sex++ {
			for smk := 0; smk < 2; smk++ {
				for age := 0; age < 5; age++ {
					for sbp := 0; sbp < 4; sbp++ {
						for tc := 0; tc < 5; tc++ {
							v := chart[sex][smk][age][sbp][tc]
							comment := Commentf("%s [%d][%d][%d][%d][%d]", name, sex, smk, age, sbp, tc)
							if tc > 0 {
								c.Check(v >= chart[sex][smk][age][sbp][tc-1], Equals, true, comment)
							}
							if sbp > 0 {
								c.Check(v >= chart[sex][smk][age][sbp-1][tc], Equals, true, comment)
							}
							if age > 0 {
								c.Check(v >= chart[sex][smk][age-1][sbp][tc], Equals, true, comment)
							}
						}
					}
				}
			}
		}
	}
}

func (s *TablesSuite) TestSmokingNeverLowersChartRisk(c *C) {
	for sex := 0; sex < 2; sex++ {
		for age := 0; age < 5; age++ {
			for sbp := 0; sbp < 4; sbp++ {
				for tc := 0; tc < 5; tc++ {
					nonSmoker := escChartGermany2016[sex][0][age][sbp][tc]
					smoker := escChartGermany2016[sex][1][age][sbp][tc]
					c.Check(smoker >= nonSmoker, Equals, true,
						Commentf("[%d][%d][%d][%d]", sex, age, sbp, tc))
				}
			}
		}
	}
}
