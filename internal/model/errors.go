package model

import "errors"

var (
	// ErrDataUnavailable covers upstream outages, bad keys, empty results,
	// rate limits and unsupported ranges.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrInsufficientHistory means the series is shorter than the longest window.
	ErrInsufficientHistory = errors.New("insufficient history")
	// ErrParseMismatch means the provider payload broke its contract.
	ErrParseMismatch = errors.New("parse mismatch")

	ErrInvalidHorizon = errors.New("invalid horizon")
	ErrInvalidRange   = errors.New("invalid range")
)
