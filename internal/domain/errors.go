package domain

import "errors"

var (
	// ErrNotFound is returned when a shop or invoice does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicateInvoiceNumber is returned when two submissions race for the same number
	ErrDuplicateInvoiceNumber = errors.New("invoice number already allocated")

	// ErrInvalidInvoiceNumber is returned when a stored number does not follow the INV<n> format
	ErrInvalidInvoiceNumber = errors.New("invalid invoice number")
)
