package domain

import (
	"regexp"
	"strings"
)

var roomNumberPattern = regexp.MustCompile(`^[A-D][0-4](0[1-9]|[1-9][0-9])$`)

// RoomNumber identifies a university room: building A-D, floor 0-4 and a
// two-digit room number 01-99, e.g. "A301", "B205", "C110".
type RoomNumber struct {
	value string
}

// ParseRoomNumber validates raw input and returns the canonical room number.
func ParseRoomNumber(input string) (RoomNumber, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return RoomNumber{}, &InvalidRoomNumberError{Value: ""}
	}

	if !roomNumberPattern.MatchString(s) {
		return RoomNumber{}, &InvalidRoomNumberError{Value: s}
	}

	return RoomNumber{value: s}, nil
}

// MustRoomNumber builds a RoomNumber from trusted input and panics if the
// input turns out to be invalid.
func MustRoomNumber(input string) RoomNumber {
	r, err := ParseRoomNumber(input)
	if err != nil {
		panic(err)
	}

	return r
}

// IsZero reports whether the room number is the uninitialized zero value.
func (r RoomNumber) IsZero() bool {
	return r.value == ""
}

func (r RoomNumber) String() string {
	return r.value
}
