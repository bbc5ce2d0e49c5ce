package domain

import "fmt"

// InvalidCourseCodeError reports a course code that fails the format rules.
type InvalidCourseCodeError struct {
	Value string
}

func (e *InvalidCourseCodeError) Error() string {
	if e.Value == "" {
		return "Course code must not be empty"
	}

	return fmt.Sprintf(
		"Invalid course code format: '%s'. Expected 2-4 uppercase letters optionally followed by a single digit (e.g. PSSC, BD, MATH1)",
		e.Value)
}

// InvalidRoomNumberError reports a room number that fails the format rules.
type InvalidRoomNumberError struct {
	Value string
}

func (e *InvalidRoomNumberError) Error() string {
	if e.Value == "" {
		return "Room number must not be empty"
	}

	return fmt.Sprintf(
		"Invalid room number: '%s'. Expected format Building(A-D)+Floor(0-4)+Room(01-99) e.g. A301",
		e.Value)
}

// InvalidStudentRegistrationNumberError reports a registration number that fails the format rules.
type InvalidStudentRegistrationNumberError struct {
	Value string
}

func (e *InvalidStudentRegistrationNumberError) Error() string {
	if e.Value == "" {
		return "Student registration number must not be empty"
	}

	return fmt.Sprintf(
		"Invalid student registration number format: '%s'. Expected 'LM' followed by 5 digits (e.g. LM12345)",
		e.Value)
}

// InvalidExamDateError reports a date that violates the exam session rules.
// Reason holds the specific rule that was violated.
type InvalidExamDateError struct {
	Value  string
	Reason string
}

func (e *InvalidExamDateError) Error() string {
	return e.Reason
}

// InvalidDurationError reports a duration that could not be parsed or is not positive.
type InvalidDurationError struct {
	Value  string
	Reason string
}

func (e *InvalidDurationError) Error() string {
	return e.Reason
}

// InvalidCapacityError reports a capacity that is not a positive integer.
type InvalidCapacityError struct {
	Value string
}

func (e *InvalidCapacityError) Error() string {
	if e.Value == "" {
		return "Capacity must not be empty"
	}

	return "Capacity must be a positive integer"
}

// InvalidGradeError reports a grade that could not be parsed or is out of range.
type InvalidGradeError struct {
	Value  string
	Reason string
}

func (e *InvalidGradeError) Error() string {
	return e.Reason
}
