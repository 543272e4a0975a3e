package utils

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrDayNotFound      = errors.New("day not found")
	ErrEmptyItinerary   = errors.New("itinerary has no days")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrTokenRevoked     = errors.New("token revoked")
	ErrDatabaseError    = errors.New("database error")
)
