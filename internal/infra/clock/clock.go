// Package clock provides the system time source behind the domain Clock
// interface.
package clock

import (
	"time"

	"backoffice/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by the wall clock.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
