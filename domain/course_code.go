package domain

import (
	"regexp"
	"strings"
)

var courseCodePattern = regexp.MustCompile(`^[A-Z]{2,4}\d?$`)

// CourseCode is the unique identifier of a university course:
// 2-4 uppercase letters optionally followed by a single digit,
// e.g. "PSSC", "BD", "POO2", "MATH".
// Input is trimmed and uppercased before validation, so the canonical
// rendering is always uppercase.
type CourseCode struct {
	value string
}

// ParseCourseCode validates raw input and returns the canonical course code.
func ParseCourseCode(input string) (CourseCode, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return CourseCode{}, &InvalidCourseCodeError{Value: ""}
	}

	if !courseCodePattern.MatchString(s) {
		return CourseCode{}, &InvalidCourseCodeError{Value: s}
	}

	return CourseCode{value: s}, nil
}

// MustCourseCode builds a CourseCode from trusted input and panics if the
// input turns out to be invalid.
func MustCourseCode(input string) CourseCode {
	c, err := ParseCourseCode(input)
	if err != nil {
		panic(err)
	}

	return c
}

// IsZero reports whether the course code is the uninitialized zero value.
func (c CourseCode) IsZero() bool {
	return c.value == ""
}

func (c CourseCode) String() string {
	return c.value
}
