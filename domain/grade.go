package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const passingGradeHundredths = 500 // 5.00

// Grade is an exam grade between 1.00 and 10.00, kept in hundredths so that
// rounding to two decimals is exact and equality is well defined.
type Grade struct {
	hundredths int
}

// ParseGrade validates raw decimal input, rounds it to two decimals and
// returns the grade.
func ParseGrade(input string) (Grade, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Grade{}, &InvalidGradeError{Value: "", Reason: "Grade must not be empty"}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Grade{}, &InvalidGradeError{Value: s, Reason: "Grade must be a valid number"}
	}

	return gradeFromFloat(v, s)
}

// GradeFromFloat rounds a decimal grade to two decimals and validates the range.
func GradeFromFloat(v float64) (Grade, error) {
	return gradeFromFloat(v, strconv.FormatFloat(v, 'f', -1, 64))
}

// MustGrade builds a Grade from a trusted decimal value and panics if the
// value is out of range.
func MustGrade(v float64) Grade {
	g, err := GradeFromFloat(v)
	if err != nil {
		panic(err)
	}

	return g
}

func gradeFromFloat(v float64, raw string) (Grade, error) {
	if v < 1.00 || v > 10.00 {
		return Grade{}, &InvalidGradeError{Value: raw, Reason: "Grade must be between 1.00 and 10.00"}
	}

	return Grade{hundredths: int(math.Round(v * 100))}, nil
}

// IsPassing reports whether the grade is at least 5.00.
func (g Grade) IsPassing() bool {
	return g.hundredths >= passingGradeHundredths
}

// Value returns the grade as a float64 with two-decimal precision.
func (g Grade) Value() float64 {
	return float64(g.hundredths) / 100
}

// IsZero reports whether the grade is the uninitialized zero value.
func (g Grade) IsZero() bool {
	return g.hundredths == 0
}

// String renders the canonical two-decimal form, e.g. "7.50".
func (g Grade) String() string {
	return fmt.Sprintf("%d.%02d", g.hundredths/100, g.hundredths%100)
}
