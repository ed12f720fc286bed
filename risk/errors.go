package risk

import (
	"fmt"
	"strings"
)

// ShapeError indicates an input vector whose length disagrees with the rest
// of the call. Every parameter of a scoring call must supply one value per
// record.
type ShapeError struct {
	Param string
	Len   int
	Want  int
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("input %s has length %d, want %d", e.Param, e.Len, e.Want)
}

// MissingInputError indicates a required attribute that was not supplied.
type MissingInputError struct {
	Param string
}

func (e MissingInputError) Error() string {
	return fmt.Sprintf("required input %s is missing", e.Param)
}

// InvalidOptionError indicates a configuration flag value outside the
// documented enumeration for the score.
type InvalidOptionError struct {
	Option  string
	Value   string
	Allowed []string
}

func (e InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid %s %q, allowed values: %s", e.Option, e.Value, strings.Join(e.Allowed, ", "))
}

// InvalidStratumError indicates a record whose sex/age/region combination
// has no corresponding reference table or coefficient set.
type InvalidStratumError struct {
	Stratum string
}

func (e InvalidStratumError) Error() string {
	return fmt.Sprintf("no reference data for stratum %s", e.Stratum)
}

// DomainError indicates a continuous input outside its mathematically valid
// domain, for example the log of a non-positive measurement. Scores fail
// with a DomainError rather than producing NaN.
type DomainError struct {
	Param  string
	Index  int
	Value  float64
	Reason string
}

func (e DomainError) Error() string {
	return fmt.Sprintf("%s[%d] = %g: %s", e.Param, e.Index, e.Value, e.Reason)
}

// RecordError pairs a per-record failure with the index of the record that
// caused it.
type RecordError struct {
	Index int
	Err   error
}

// RecordErrors collects every failing record of a batch. When any record
// fails the whole call fails and no results are returned, but the caller
// learns about all bad rows in a single pass.
type RecordErrors []RecordError

func (e RecordErrors) Error() string {
	parts := make([]string, len(e))
	for i, re := range e {
		parts[i] = fmt.Sprintf("record %d: %s", re.Index, re.Err)
	}
	if len(e) == 1 {
		return parts[0]
	}
	return fmt.Sprintf("%d invalid records: %s", len(e), strings.Join(parts, "; "))
}

// OrNil returns the collection as an error, or nil when no record failed.
func (e RecordErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
