package ports

import "errors"

// Standard application-level errors.
// Adapters should wrap underlying infrastructure errors with these standard errors.
var (
	// General Errors
	ErrInvalidRequest     = errors.New("invalid request parameters or format")
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// Exchange Specific Errors
	ErrConnectionFailed = errors.New("failed to connect to the exchange")
	ErrAPIFailure       = errors.New("exchange API reported a failure")
	ErrDecodeFailed     = errors.New("failed to decode exchange response")

	// Calculation Errors
	ErrInvalidPrice     = errors.New("price is not a valid decimal number")
	ErrInsufficientData = errors.New("not enough data points for the requested period")
)
