package model

import "errors"

var (
	// ErrRequiredFieldMissing is returned when a submitted form field is empty.
	ErrRequiredFieldMissing = errors.New("required field missing")
	// ErrInvalidStateAbbreviation is returned when the state field is not a US state abbreviation.
	ErrInvalidStateAbbreviation = errors.New("invalid state abbreviation")
	// ErrLookupNotFound is returned when the geocoding service does not know the city/state pair.
	ErrLookupNotFound = errors.New("lookup not found")
	// ErrLookupUnavailable is returned when the geocoding service cannot be reached or answers garbage.
	ErrLookupUnavailable = errors.New("lookup unavailable")
	// ErrDuplicateEntity is returned when the city/state pair is already on file.
	ErrDuplicateEntity = errors.New("duplicate entity")
)
