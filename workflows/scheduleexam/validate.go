package scheduleexam

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

const (
	dateLayout               = "2006-01-02"
	minDaysAfterCourseEnd    = 7
	reasonNoValidDate        = "At least one valid proposed date is required"
	reasonCourseNotInCatalog = "Course '%s' does not exist in catalog"
)

// validate parses every raw field independently, collecting every error it
// can detect in one pass, and additionally runs the semantic checks that need
// a successfully parsed value (course catalog lookup, course-end distance).
func (w Workflow) validate(ctx context.Context, state examScheduling) examScheduling {
	assertKnown(state)

	s, ok := state.(unvalidated)
	if !ok {
		return state
	}

	var errs []string

	course, courseErr := domain.ParseCourseCode(s.courseCode)
	if courseErr != nil {
		errs = append(errs, courseErr.Error())
	} else {
		exists, err := w.collaborators.CheckCourseExists(ctx, course)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("Could not verify course '%s': %v", course, err))
		case !exists:
			errs = append(errs, fmt.Sprintf(reasonCourseNotInCatalog, course))
		}
	}

	var courseEnd time.Time
	courseEndKnown := false

	if courseErr == nil {
		end, err := w.collaborators.GetCourseEndDate(ctx, course)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Could not determine course end date for '%s': %v", course, err))
		} else {
			courseEnd = dateOnly(end)
			courseEndKnown = true
		}
	}

	today := w.clock()
	proposedDates := make([]domain.ExamDate, 0, 3)

	for _, ds := range nonBlank(s.proposedDate1, s.proposedDate2, s.proposedDate3) {
		parsed, err := time.Parse(dateLayout, ds)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Proposed date '%s' is not a valid date", ds))
			continue
		}

		examDate, err := domain.NewExamDate(parsed, today)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Proposed date '%s': %v", ds, err))
			continue
		}

		if courseEndKnown && examDate.Time().Before(courseEnd.AddDate(0, 0, minDaysAfterCourseEnd)) {
			errs = append(errs, fmt.Sprintf(
				"Proposed date '%s' must be at least %d days after course end date (%s)",
				ds, minDaysAfterCourseEnd, courseEnd.Format(dateLayout)))
			continue
		}

		proposedDates = append(proposedDates, examDate)
	}

	if len(proposedDates) == 0 {
		errs = append(errs, reasonNoValidDate)
	}

	duration, err := domain.ParseDuration(s.duration)
	if err != nil {
		errs = append(errs, err.Error())
	}

	expectedStudents, err := domain.ParseCapacity(s.expectedStudents)
	if err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return invalid{courseCode: s.courseCode, reasons: errs}
	}

	return validated{
		course:           course,
		proposedDates:    proposedDates,
		duration:         duration,
		expectedStudents: expectedStudents,
	}
}

func nonBlank(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}

	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
