package models

import "errors"

var (
	// ErrInvoiceNotFound is returned when no invoice matches the requested id.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvalidID is returned when an id is not a well-formed uuid.
	ErrInvalidID = errors.New("invalid id")
)
