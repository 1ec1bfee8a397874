package service

import "errors"

// Error taxonomy surfaced to the HTTP layer. Handlers map these to status
// codes with errors.Is; everything else is an internal failure.
var (
	// ErrInvalidInput rejects an empty or malformed record set before any
	// job is created.
	ErrInvalidInput = errors.New("invalid input")

	// ErrJobNotFound is returned for an unknown or superseded job id whose
	// data was not retained.
	ErrJobNotFound = errors.New("job not found")

	// ErrNoResults is returned from result queries before any job has
	// completed.
	ErrNoResults = errors.New("no analysis results available")
)
