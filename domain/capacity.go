package domain

import (
	"strconv"
	"strings"
)

// Capacity is a positive count of students or seats.
type Capacity struct {
	value int
}

// ParseCapacity validates raw input and returns the capacity.
func ParseCapacity(input string) (Capacity, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Capacity{}, &InvalidCapacityError{Value: ""}
	}

	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return Capacity{}, &InvalidCapacityError{Value: s}
	}

	return Capacity{value: v}, nil
}

// MustCapacity builds a Capacity from a trusted integer and panics if the
// value is not positive.
func MustCapacity(v int) Capacity {
	if v <= 0 {
		panic(&InvalidCapacityError{Value: strconv.Itoa(v)})
	}

	return Capacity{value: v}
}

// Value returns the capacity as an int.
func (c Capacity) Value() int {
	return c.value
}

// IsZero reports whether the capacity is the uninitialized zero value.
func (c Capacity) IsZero() bool {
	return c.value == 0
}

func (c Capacity) String() string {
	return strconv.Itoa(c.value)
}
