package registerstudent

import (
	"context"
	"fmt"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

const (
	dateLayout         = "2006-01-02"
	maxExamsPerDay     = 2
	reasonPersistError = "Failed to persist student registration"
)

// validate parses every raw field independently, collecting every error, and
// resolves the student and the scheduled exam through the collaborators.
func (w Workflow) validate(ctx context.Context, state studentRegistration) studentRegistration {
	assertKnown(state)

	s, ok := state.(unvalidated)
	if !ok {
		return state
	}

	var errs []string

	student, studentErr := domain.ParseStudentRegistrationNumber(s.studentRegistrationNumber)
	if studentErr != nil {
		errs = append(errs, studentErr.Error())
	} else {
		exists, err := w.collaborators.CheckStudentExists(ctx, student)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("Could not verify student '%s': %v", student, err))
		case !exists:
			errs = append(errs, fmt.Sprintf("Student '%s' does not exist", student))
		}
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

	var room domain.RoomNumber

	if courseErr == nil && dateOK {
		exists, examRoom, err := w.collaborators.CheckExamExists(ctx, course, date)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("Could not verify exam for course '%s' on %s: %v", course, date, err))
		case !exists:
			errs = append(errs, fmt.Sprintf("No exam scheduled for course '%s' on %s", course, date))
		default:
			room = examRoom
		}
	}

	if len(errs) > 0 || room.IsZero() {
		if room.IsZero() && len(errs) == 0 {
			errs = append(errs, "Exam room not found")
		}

		return invalid{studentRegistrationNumber: s.studentRegistrationNumber, reasons: errs}
	}

	return validated{student: student, course: course, date: date}
}

// check enforces the business-rule gates: no duplicate registration, at most
// two exams per calendar day, and a resolvable exam room.
func (w Workflow) check(ctx context.Context, state studentRegistration) studentRegistration {
	assertKnown(state)

	s, ok := state.(validated)
	if !ok {
		return state
	}

	var errs []string

	alreadyRegistered, err := w.collaborators.CheckAlreadyRegistered(ctx, s.student, s.course, s.date)
	if err != nil {
		errs = append(errs, fmt.Sprintf("Could not verify existing registrations: %v", err))
	} else if alreadyRegistered {
		errs = append(errs, fmt.Sprintf("Student %s is already registered for this exam", s.student))
	}

	examsOnSameDay, err := w.collaborators.GetStudentExamsOnDate(ctx, s.student, s.date)
	if err != nil {
		errs = append(errs, fmt.Sprintf("Could not count exams on %s: %v", s.date, err))
	} else if examsOnSameDay >= maxExamsPerDay {
		errs = append(errs, fmt.Sprintf(
			"Student %s already has %d exams on %s (maximum %d per day)",
			s.student, examsOnSameDay, s.date, maxExamsPerDay))
	}

	room, err := w.collaborators.GetExamRoom(ctx, s.course, s.date)
	if err != nil {
		errs = append(errs, fmt.Sprintf("Could not resolve exam room: %v", err))
	} else if room.IsZero() {
		errs = append(errs, fmt.Sprintf("Exam room not found for course %s on %s", s.course, s.date))
	}

	if len(errs) > 0 || room.IsZero() {
		return invalid{studentRegistrationNumber: s.student.String(), reasons: errs}
	}

	return checked{
		student:        s.student,
		course:         s.course,
		date:           s.date,
		room:           room,
		examsOnSameDay: examsOnSameDay,
	}
}

// register persists the registration and stamps the registration time.
func (w Workflow) register(ctx context.Context, state studentRegistration) studentRegistration {
	assertKnown(state)

	s, ok := state.(checked)
	if !ok {
		return state
	}

	if err := w.collaborators.PersistRegistration(ctx, s.student, s.course, s.date, s.room); err != nil {
		return invalid{
			studentRegistrationNumber: s.student.String(),
			reasons:                   []string{fmt.Sprintf("%s: %v", reasonPersistError, err)},
		}
	}

	return registered{
		student:      s.student,
		course:       s.course,
		date:         s.date,
		room:         s.room,
		registeredAt: w.clock(),
	}
}
