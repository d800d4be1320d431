package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the itinerary search engine. Callers should match on
// these with errors.Is (or the Is* helpers below) rather than comparing
// messages.
var (
	// ErrInvalidQuery indicates the search query failed validation.
	ErrInvalidQuery = errors.New("invalid search query")

	// ErrUnknownAirport indicates a lookup for an airport code that the
	// directory does not know about.
	ErrUnknownAirport = errors.New("unknown airport")

	// ErrFlightNotNormalized indicates a flight reached the search core
	// without its UTC instants populated. This is a directory invariant
	// violation; the engine fails fast rather than producing wrong durations.
	ErrFlightNotNormalized = errors.New("flight is missing UTC instants")

	// ErrDirectoryUnavailable indicates the flight/airport directory could
	// not serve a query (e.g., a database backend is unreachable).
	ErrDirectoryUnavailable = errors.New("directory unavailable")
)

// WrapInvalidQuery wraps ErrInvalidQuery with a formatted detail message.
func WrapInvalidQuery(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}

// NewUnknownAirportError returns an ErrUnknownAirport wrapper naming the code.
func NewUnknownAirportError(code string) error {
	return fmt.Errorf("%w: %q", ErrUnknownAirport, code)
}

// NewNotNormalizedError returns an ErrFlightNotNormalized wrapper naming the flight.
func NewNotNormalizedError(flightNumber string) error {
	return fmt.Errorf("%w: flight %s", ErrFlightNotNormalized, flightNumber)
}

// IsInvalidQuery reports whether err is or wraps ErrInvalidQuery.
func IsInvalidQuery(err error) bool {
	return errors.Is(err, ErrInvalidQuery)
}

// IsUnknownAirport reports whether err is or wraps ErrUnknownAirport.
func IsUnknownAirport(err error) bool {
	return errors.Is(err, ErrUnknownAirport)
}

// IsFlightNotNormalized reports whether err is or wraps ErrFlightNotNormalized.
func IsFlightNotNormalized(err error) bool {
	return errors.Is(err, ErrFlightNotNormalized)
}

// ValidationError represents a single field-level validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
