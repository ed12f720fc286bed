// Package scores implements the published cardiovascular risk scores.
// Every entry point takes equal-length vectors of clinical attributes,
// one element per independent record, and returns a result vector of the
// same length. Scoring is pure: reference tables and coefficient sets are
// package constants, so all functions are safe for concurrent use.
package scores

import "github.com/intervention-engine/cvriskservice/risk"

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// checkSex validates a record's sex before it indexes a stratified table.
func checkSex(s risk.Sex) error {
	if !s.Valid() {
		return risk.InvalidStratumError{Stratum: "sex " + s.String()}
	}
	return nil
}
