package domain

import (
	"fmt"
	"strconv"
)

// The value objects marshal to their canonical renderings so that workflow
// events can be journaled and displayed without exposing internals.

// MarshalJSON renders the canonical uppercase course code.
func (c CourseCode) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.value)), nil
}

// MarshalJSON renders the canonical room number.
func (r RoomNumber) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.value)), nil
}

// MarshalJSON renders the canonical registration number.
func (n StudentRegistrationNumber) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(n.value)), nil
}

// MarshalJSON renders the canonical "yyyy-MM-dd" form.
func (d ExamDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// MarshalJSON renders the canonical "hh:mm" form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// MarshalJSON renders the capacity as a JSON number.
func (c Capacity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(c.value)), nil
}

// MarshalJSON renders the grade as a two-decimal JSON number.
func (g Grade) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d.%02d", g.hundredths/100, g.hundredths%100)), nil
}
