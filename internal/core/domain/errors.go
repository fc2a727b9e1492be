package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity, element or attribute does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available
	// because a collaborator was not configured.
	ErrNotImplemented = errors.New("not implemented")

	// Flavour profile errors. Only returned in strict mode; lenient
	// extraction carries these conditions as NaN values instead.

	// ErrMalformedDigit indicates a digit string character outside 0-9.
	ErrMalformedDigit = errors.New("malformed digit")

	// ErrNameListTooShort indicates more digits than category names.
	ErrNameListTooShort = errors.New("name list shorter than digit string")

	// ErrZeroTotal indicates the counts sum to zero.
	ErrZeroTotal = errors.New("total count is zero")

	// Fetch errors.

	// ErrRateLimited indicates the remote site kept answering 429.
	ErrRateLimited = errors.New("rate limited")
)
