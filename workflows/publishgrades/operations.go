package publishgrades

import (
	"context"
	"fmt"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

const (
	dateLayout         = "2006-01-02"
	reasonPersistError = "Failed to persist exam grades"
)

// validate parses the course, the date, and every grade entry, collecting
// every error. Entries that fail are dropped; the remaining ones must each
// belong to a student registered for this exam.
func (w Workflow) validate(ctx context.Context, state examGrading) examGrading {
	assertKnown(state)

	s, ok := state.(unvalidated)
	if !ok {
		return state
	}

	var errs []string

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

	examResolved := courseErr == nil && dateOK

	if examResolved {
		exists, err := w.collaborators.CheckExamExists(ctx, course, date)
		switch {
		case err != nil:
			errs = append(errs, fmt.Sprintf("Could not verify exam for course '%s' on %s: %v", course, date, err))
		case !exists:
			errs = append(errs, fmt.Sprintf("No exam found for course '%s' on %s", course, date))
		}
	}

	var grades []StudentGrade

	for _, sg := range s.studentGrades {
		student, err := domain.ParseStudentRegistrationNumber(sg.StudentRegistrationNumber)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Student: %v", err))
			continue
		}

		grade, err := domain.ParseGrade(sg.Grade)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Grade for student %s: %v", sg.StudentRegistrationNumber, err))
			continue
		}

		if examResolved {
			registered, err := w.collaborators.CheckStudentRegistered(ctx, student, course, date)
			switch {
			case err != nil:
				errs = append(errs, fmt.Sprintf("Could not verify registration for student %s: %v", student, err))
				continue
			case !registered:
				errs = append(errs, fmt.Sprintf("Student %s is not registered for this exam", student))
				continue
			}
		}

		grades = append(grades, StudentGrade{Student: student, Grade: grade})
	}

	if len(grades) == 0 && len(s.studentGrades) > 0 {
		errs = append(errs, "No valid student grades provided")
	}

	if len(errs) > 0 {
		return invalid{courseCode: s.courseCode, reasons: errs}
	}

	return validated{course: course, date: date, grades: grades}
}

// publish persists the grade sheet and derives the pass statistics.
func (w Workflow) publish(ctx context.Context, state examGrading) examGrading {
	assertKnown(state)

	s, ok := state.(validated)
	if !ok {
		return state
	}

	if err := w.collaborators.PersistGrades(ctx, s.course, s.date, s.grades); err != nil {
		return invalid{
			courseCode: s.course.String(),
			reasons:    []string{fmt.Sprintf("%s: %v", reasonPersistError, err)},
		}
	}

	passed := 0
	for _, g := range s.grades {
		if g.Grade.IsPassing() {
			passed++
		}
	}

	return published{
		course:         s.course,
		date:           s.date,
		grades:         s.grades,
		publishedAt:    w.clock(),
		totalStudents:  len(s.grades),
		passedStudents: passed,
	}
}
