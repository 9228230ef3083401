package smhi

import "errors"

var (
	// ErrNetwork occurs when the upstream request cannot be completed
	// (connection failure, timeout, context cancellation).
	ErrNetwork = errors.New("network error calling SMHI")

	// ErrUpstream occurs when SMHI responds with a non-200 status.
	ErrUpstream = errors.New("SMHI returned an error status")

	// ErrParse occurs when the response body is not the expected payload.
	ErrParse = errors.New("unexpected SMHI response payload")
)
