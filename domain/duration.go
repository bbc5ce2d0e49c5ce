package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is a positive exam duration, parsed either from "hh:mm" form or
// from a plain integer number of minutes ("120" and "02:00" are equivalent).
type Duration struct {
	d time.Duration
}

// ParseDuration validates raw input and returns the duration.
func ParseDuration(input string) (Duration, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Duration{}, &InvalidDurationError{Value: "", Reason: "Duration must not be empty"}
	}

	if hours, minutes, ok := splitClock(s); ok {
		d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
		if d <= 0 {
			return Duration{}, &InvalidDurationError{Value: s, Reason: "Duration must be positive"}
		}

		return Duration{d: d}, nil
	}

	if minutes, err := strconv.Atoi(s); err == nil && minutes > 0 {
		return Duration{d: time.Duration(minutes) * time.Minute}, nil
	}

	return Duration{}, &InvalidDurationError{
		Value:  s,
		Reason: "Invalid duration format. Use 'hh:mm' or minutes as integer",
	}
}

// MustDuration builds a Duration from trusted input and panics if the input
// turns out to be invalid.
func MustDuration(input string) Duration {
	d, err := ParseDuration(input)
	if err != nil {
		panic(err)
	}

	return d
}

func splitClock(s string) (hours int, minutes int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hours, errH := strconv.Atoi(parts[0])
	minutes, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || hours < 0 || minutes < 0 || minutes > 59 {
		return 0, 0, false
	}

	return hours, minutes, true
}

// Value returns the underlying time.Duration.
func (d Duration) Value() time.Duration {
	return d.d
}

// Minutes returns the duration as whole minutes.
func (d Duration) Minutes() int {
	return int(d.d / time.Minute)
}

// IsZero reports whether the duration is the uninitialized zero value.
func (d Duration) IsZero() bool {
	return d.d == 0
}

// String renders the canonical "hh:mm" form.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d", int(d.d/time.Hour), int(d.d%time.Hour)/int(time.Minute))
}
