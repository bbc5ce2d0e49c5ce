package filecontestation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

const (
	dateLayout         = "2006-01-02"
	contestationWindow = 48 * time.Hour
	reasonPersistError = "Failed to persist contestation"
)

// validate parses every raw field independently, collecting every error, and
// confirms the student is registered for the contested exam.
func (w Workflow) validate(ctx context.Context, state contestation) contestation {
	assertKnown(state)

	s, ok := state.(unvalidated)
	if !ok {
		return state
	}

	var errs []string

	student, studentErr := domain.ParseStudentRegistrationNumber(s.studentRegistrationNumber)
	if studentErr != nil {
		errs = append(errs, studentErr.Error())
	}

	course, courseErr := domain.ParseCourseCode(s.courseCode)
	if courseErr != nil {
		errs = append(errs, courseErr.Error())
	}

	var date domain.ExamDate
	dateOK := false

	if parsed, err := time.Parse(dateLayout, s.examDate); err != nil {
		errs = append(errs, fmt.Sprintf("Exam date '%s' is not a valid date", s.examDate))
	} else if date, err = domain.NewExamDate(parsed, w.clock()); err != nil {
		errs = append(errs, fmt.Sprintf("Exam date: %v", err))
	} else {
		dateOK = true
	}

	if strings.TrimSpace(s.reason) == "" {
		errs = append(errs, "Contestation reason must not be empty")
	}

	if studentErr == nil && courseErr == nil && dateOK {
		registered, err := w.collaborators.CheckStudentRegistered(ctx, student, course, date)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("Could not verify registration for student %s: %v", student, err))
		case !registered:
			errs = append(errs, fmt.Sprintf("Student %s is not registered for exam %s on %s", student, course, date))
		}
	}

	if len(errs) > 0 {
		return invalid{studentRegistrationNumber: s.studentRegistrationNumber, reasons: errs}
	}

	return validated{student: student, course: course, date: date, reason: s.reason}
}

// checkWindow verifies the grades are published and the 48 hour window is
// still open. Exactly 48 hours after publication is still within the window.
func (w Workflow) checkWindow(ctx context.Context, state contestation) contestation {
	assertKnown(state)

	s, ok := state.(validated)
	if !ok {
		return state
	}

	publishedAt, published, err := w.collaborators.GetGradesPublishedAt(ctx, s.course, s.date)
	if err != nil {
		return invalid{
			studentRegistrationNumber: s.student.String(),
			reasons:                   []string{fmt.Sprintf("Could not determine grade publication time: %v", err)},
		}
	}

	if !published {
		return invalid{
			studentRegistrationNumber: s.student.String(),
			reasons:                   []string{"Grades have not been published yet for this exam"},
		}
	}

	timeSincePublication := w.clock().Sub(publishedAt)

	if timeSincePublication > contestationWindow {
		return invalid{
			studentRegistrationNumber: s.student.String(),
			reasons: []string{fmt.Sprintf(
				"Contestation window has expired. Grades were published %.1f hours ago (deadline: 48 hours)",
				timeSincePublication.Hours())},
		}
	}

	return checked{
		student:              s.student,
		course:               s.course,
		date:                 s.date,
		reason:               s.reason,
		gradesPublishedAt:    publishedAt,
		timeSincePublication: timeSincePublication,
	}
}

// file persists the contestation and stamps the filing time.
func (w Workflow) file(ctx context.Context, state contestation) contestation {
	assertKnown(state)

	s, ok := state.(checked)
	if !ok {
		return state
	}

	if err := w.collaborators.PersistContestation(ctx, s.student, s.course, s.date, s.reason); err != nil {
		return invalid{
			studentRegistrationNumber: s.student.String(),
			reasons:                   []string{fmt.Sprintf("%s: %v", reasonPersistError, err)},
		}
	}

	return filed{
		student: s.student,
		course:  s.course,
		date:    s.date,
		reason:  s.reason,
		filedAt: w.clock(),
	}
}
