package service

import (
	"time"

	"spotlight/internal/domain/entity"
)

// Clock abstracts wall-clock time and day-key derivation so business logic
// never reads real time directly. Tests supply a fixed clock; production
// wires the system clock in the fixed rotation zone.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// Today returns the day key the current instant falls in.
	Today() entity.DayKey
}
