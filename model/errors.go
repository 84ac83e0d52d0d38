package model

import "errors"

var (
	// ErrUnavailable is returned when an upstream platform could not provide
	// the requested data.
	ErrUnavailable = errors.New("data temporarily unavailable")
	// ErrInvalidArgument is returned for malformed league ids, weeks, etc.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when a platform has no record of a league.
	ErrNotFound = errors.New("not found")
)
