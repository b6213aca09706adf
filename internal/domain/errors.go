package domain

import "errors"

// Request validation failures. All are terminal: nothing is retryable
// and no partial result is ever returned. Callers branch with
// errors.Is; the wrapped message carries the offending input where one
// exists.
var (
	ErrMalformedRequest    = errors.New("malformed request: missing \":\" separator")
	ErrUnknownCustomerTier = errors.New("unknown customer tier")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrEmptyDateList       = errors.New("empty date list")
)
