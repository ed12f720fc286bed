package risk

// CheckVec verifies that the named vector supplies exactly one value per
// record. An absent vector is a missing input; a present vector of the
// wrong length is a shape problem.
func CheckVec[T any](param string, v []T, n int) error {
	if len(v) == 0 {
		return MissingInputError{Param: param}
	}
	if len(v) != n {
		return ShapeError{Param: param, Len: len(v), Want: n}
	}
	return nil
}

// CheckOptionalVec is CheckVec for attributes a score treats as optional
// modifiers: nil means the documented inert default.
func CheckOptionalVec[T any](param string, v []T, n int) error {
	if v == nil {
		return nil
	}
	return CheckVec(param, v, n)
}

// FirstErr returns the first non-nil error, so a score can validate all of
// its vectors in one expression.
func FirstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
