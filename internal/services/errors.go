package services

import "errors"

// Analysis service errors
var (
	// Input errors
	ErrNoFiles        = errors.New("no input files provided")
	ErrInvalidProfile = errors.New("invalid lottery profile")

	// Result errors
	ErrNoStatistics = errors.New("no statistics available")
	ErrEmptyRange   = errors.New("date range matches no draws")
)
