// Package error defines domain-specific errors for the Transaction Categorizer application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidCSVHeader is returned when an uploaded file does not carry the expected columns.
	ErrInvalidCSVHeader = errors.New("invalid CSV header")
)
