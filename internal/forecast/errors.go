package forecast

import "errors"

var (
	// ErrValidation occurs when request parameters fail their range checks.
	// Raised before any network access.
	ErrValidation = errors.New("invalid request parameters")

	// ErrDataIntegrity occurs when the upstream payload is well-formed but
	// semantically invalid, e.g. a weather symbol outside the known table.
	ErrDataIntegrity = errors.New("inconsistent forecast data")
)
