// Package clock provides the system implementation of the domain Clock,
// pinned to the fixed rotation zone.
package clock

import (
	"time"

	"spotlight/internal/domain/entity"
	"spotlight/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by wall-clock time in the rotation
// zone. Every day-key derivation in production flows through here, so the
// whole system agrees on when "today" flips.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().In(entity.DayTimeZone)
}

func (c systemClock) Today() entity.DayKey {
	return entity.DayKeyFromTime(c.Now())
}
