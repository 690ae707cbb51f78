package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMissingData indicates that the financial history is absent or has no rows.
var ErrMissingData = errors.New("missing data")

// ErrMissingColumn indicates that an expected column is absent from the financial history.
var ErrMissingColumn = errors.New("missing column")

// ErrInvalidPeriod indicates that a growth rate was requested over zero or negative periods.
// CAGR itself reports this as an absent result; the estimator turns it into this error.
var ErrInvalidPeriod = errors.New("invalid period count")

// ErrDomainMath is the parent of all arithmetic domain failures.
var ErrDomainMath = errors.New("domain math error")

// ErrDivisionByZero indicates a CAGR computed from a zero initial value.
var ErrDivisionByZero = domainMath("division by zero")

// ErrZeroWeightSum indicates force weights that sum to zero.
var ErrZeroWeightSum = domainMath("total force weight is zero")

type domainMathError struct{ msg string }

func domainMath(msg string) error { return &domainMathError{msg: msg} }

func (e *domainMathError) Error() string { return e.msg }

// Is lets errors.Is(err, ErrDomainMath) match every domain math failure.
func (e *domainMathError) Is(target error) bool { return target == ErrDomainMath }
