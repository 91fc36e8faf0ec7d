// Package store is the data access layer. Each store wraps the shared GORM
// handle for one model and translates driver errors into package sentinels.
package store

import "errors"

var (
	// ErrNotFound is returned when a mutation or lookup targets an id that
	// does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrTripCompleted is returned when a cancel targets a completed trip.
	// Completed is terminal, same as cancelled.
	ErrTripCompleted = errors.New("trip already completed")
)
