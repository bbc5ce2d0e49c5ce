package domain

import (
	"fmt"
	"time"
)

const examDateLayout = "2006-01-02"

// ExamDate is a calendar date on which an exam may take place. A valid exam
// date is strictly in the future, falls inside one of the two exam sessions
// (June 1 - July 15 or January 15 - February 28) and is not a Saturday or
// Sunday. The time-of-day of any input is discarded.
type ExamDate struct {
	year  int
	month time.Month
	day   int
}

// NewExamDate validates an already parsed instant against the exam session
// rules. The reference date for the future check is taken from today, which
// callers obtain from their injected clock.
func NewExamDate(t time.Time, today time.Time) (ExamDate, error) {
	d := ExamDate{year: t.Year(), month: t.Month(), day: t.Day()}
	ref := civil(today)

	if !d.Time().After(ref.Time()) {
		return ExamDate{}, &InvalidExamDateError{
			Value:  d.String(),
			Reason: "Exam date must be a future date",
		}
	}

	if !d.inSession() {
		return ExamDate{}, &InvalidExamDateError{
			Value:  d.String(),
			Reason: "Exam date must be within exam sessions: June 1 - July 15 OR January 15 - February 28",
		}
	}

	switch d.Time().Weekday() {
	case time.Saturday, time.Sunday:
		return ExamDate{}, &InvalidExamDateError{
			Value:  d.String(),
			Reason: "Exam date cannot be on a weekend (Saturday or Sunday)",
		}
	}

	return d, nil
}

// ParseExamDate parses raw "yyyy-MM-dd" input and validates it via NewExamDate.
func ParseExamDate(input string, today time.Time) (ExamDate, error) {
	t, err := time.Parse(examDateLayout, input)
	if err != nil {
		return ExamDate{}, &InvalidExamDateError{
			Value:  input,
			Reason: fmt.Sprintf("Exam date '%s' is not a valid date", input),
		}
	}

	return NewExamDate(t, today)
}

func civil(t time.Time) ExamDate {
	return ExamDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d ExamDate) inSession() bool {
	summer := d.month == time.June || (d.month == time.July && d.day <= 15)
	winter := (d.month == time.January && d.day >= 15) || (d.month == time.February && d.day <= 28)

	return summer || winter
}

// Time returns the date at midnight UTC.
func (d ExamDate) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether the date is the uninitialized zero value.
func (d ExamDate) IsZero() bool {
	return d.year == 0
}

// String renders the canonical "yyyy-MM-dd" form.
func (d ExamDate) String() string {
	return d.Time().Format(examDateLayout)
}
