package types

import "time"

// Clock abstracts the time source so fixture generators and providers can be
// driven by a frozen clock in tests instead of the ambient system clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// NewSystemClock returns a Clock backed by the system wall clock in UTC.
func NewSystemClock() Clock {
	return systemClock{}
}
