package domain

import (
	"regexp"
	"strings"
)

var studentRegistrationNumberPattern = regexp.MustCompile(`^LM\d{5}$`)

// StudentRegistrationNumber identifies a student: the literal prefix "LM"
// followed by exactly five digits, e.g. "LM12345".
type StudentRegistrationNumber struct {
	value string
}

// ParseStudentRegistrationNumber validates raw input and returns the
// canonical registration number.
func ParseStudentRegistrationNumber(input string) (StudentRegistrationNumber, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return StudentRegistrationNumber{}, &InvalidStudentRegistrationNumberError{Value: ""}
	}

	if !studentRegistrationNumberPattern.MatchString(s) {
		return StudentRegistrationNumber{}, &InvalidStudentRegistrationNumberError{Value: s}
	}

	return StudentRegistrationNumber{value: s}, nil
}

// MustStudentRegistrationNumber builds a StudentRegistrationNumber from
// trusted input and panics if the input turns out to be invalid.
func MustStudentRegistrationNumber(input string) StudentRegistrationNumber {
	n, err := ParseStudentRegistrationNumber(input)
	if err != nil {
		panic(err)
	}

	return n
}

// IsZero reports whether the registration number is the uninitialized zero value.
func (n StudentRegistrationNumber) IsZero() bool {
	return n.value == ""
}

func (n StudentRegistrationNumber) String() string {
	return n.value
}
