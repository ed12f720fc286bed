package risk

import "strings"

// Sex selects the sex-specific table or coefficient stratum of a score.
type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return "unknown"
}

// Valid reports whether the value is one of the two known strata.
func (s Sex) Valid() bool {
	return s == Male || s == Female
}

// ParseSex maps the wire encoding to a Sex.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(s) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return 0, InvalidOptionError{Option: "sex", Value: s, Allowed: []string{"male", "female"}}
}

// Ethnicity selects the cohort stratum of the pooled cohort equations.
type Ethnicity int

const (
	White Ethnicity = iota
	AfricanAmerican
)

func (e Ethnicity) String() string {
	switch e {
	case White:
		return "white"
	case AfricanAmerican:
		return "aa"
	}
	return "unknown"
}

// ParseEthnicity maps the wire encoding to an Ethnicity.
func ParseEthnicity(s string) (Ethnicity, error) {
	switch strings.ToLower(s) {
	case "white":
		return White, nil
	case "aa", "african_american":
		return AfricanAmerican, nil
	}
	return 0, InvalidOptionError{Option: "ethnicity", Value: s, Allowed: []string{"white", "aa"}}
}

// Region is the geographic risk tier of the ESC score family. The 2003
// charts and the Conroy formula distinguish low and high risk countries;
// SCORE2 uses all four tiers.
type Region int

const (
	LowRisk Region = iota
	ModerateRisk
	HighRisk
	VeryHighRisk
)

func (r Region) String() string {
	switch r {
	case LowRisk:
		return "low"
	case ModerateRisk:
		return "moderate"
	case HighRisk:
		return "high"
	case VeryHighRisk:
		return "veryhigh"
	}
	return "unknown"
}

// ParseRegion maps the wire encoding to a Region.
func ParseRegion(s string) (Region, error) {
	switch strings.ToLower(s) {
	case "low":
		return LowRisk, nil
	case "moderate":
		return ModerateRisk, nil
	case "high":
		return HighRisk, nil
	case "veryhigh", "very_high":
		return VeryHighRisk, nil
	}
	return 0, InvalidOptionError{Option: "risk", Value: s, Allowed: []string{"low", "moderate", "high", "veryhigh"}}
}

// CholModel selects the Framingham cholesterol model variant.
type CholModel int

const (
	CholTC CholModel = iota
	CholLDL
)

func (m CholModel) String() string {
	switch m {
	case CholTC:
		return "tc"
	case CholLDL:
		return "ldl"
	}
	return "unknown"
}

// ParseCholModel maps the wire encoding to a CholModel.
func ParseCholModel(s string) (CholModel, error) {
	switch strings.ToLower(s) {
	case "tc":
		return CholTC, nil
	case "ldl":
		return CholLDL, nil
	}
	return 0, InvalidOptionError{Option: "chol_cat", Value: s, Allowed: []string{"tc", "ldl"}}
}

// ReachRegion is the REACH registry's geographic enrollment region.
// Japan and Australia carry a protective modifier, Eastern Europe and the
// Middle East an adverse one; every other region is the reference.
type ReachRegion int

const (
	ReachOther ReachRegion = iota
	ReachJapanAustralia
	ReachEasternEuropeMiddleEast
)

func (r ReachRegion) String() string {
	switch r {
	case ReachOther:
		return "other"
	case ReachJapanAustralia:
		return "japan_australia"
	case ReachEasternEuropeMiddleEast:
		return "eastern_europe_middle_east"
	}
	return "unknown"
}

// ParseReachRegion maps the wire encoding to a ReachRegion.
func ParseReachRegion(s string) (ReachRegion, error) {
	switch strings.ToLower(s) {
	case "", "other":
		return ReachOther, nil
	case "japan_australia":
		return ReachJapanAustralia, nil
	case "eastern_europe_middle_east":
		return ReachEasternEuropeMiddleEast, nil
	}
	return 0, InvalidOptionError{Option: "region", Value: s,
		Allowed: []string{"other", "japan_australia", "eastern_europe_middle_east"}}
}
