package domain

import "errors"

var (
	// ErrInvalidConfig is returned when a picker configuration is inconsistent
	ErrInvalidConfig = errors.New("domain: invalid picker config")

	// ErrInvalidDate is returned for malformed or impossible calendar dates
	ErrInvalidDate = errors.New("domain: invalid date")

	// ErrInvalidRule is returned for malformed blackout rules (e.g. inverted ranges)
	ErrInvalidRule = errors.New("domain: invalid blackout rule")

	// ErrInvalidWindow is returned when a time window has min > max or bad values
	ErrInvalidWindow = errors.New("domain: invalid time window")

	// ErrInvalidTiers is returned when a tier list is empty or lacks a trailing default
	ErrInvalidTiers = errors.New("domain: invalid time tiers")
)
