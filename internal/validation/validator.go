package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator. Tag rules cover everything here; order
// totals are deliberately absent from requests (the server computes them), so
// no struct-level amount rule exists.
func New() *validatorv10.Validate {
	return validatorv10.New()
}
