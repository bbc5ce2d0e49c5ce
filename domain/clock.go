package domain

import "time"

// Clock supplies the current time to time-dependent rules (future-date checks,
// the contestation window). Workflows default to SystemClock; tests inject a
// fixed clock to make those rules deterministic.
type Clock func() time.Time

// SystemClock returns the current wall time.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock returns a Clock that always reports the given instant.
func FixedClock(t time.Time) Clock {
	return func() time.Time {
		return t
	}
}
