package publishgrades

import (
	"context"

	"github.com/pssc-labs/exam-session-go/domain"
)

// Collaborators bundles the external functions the grade publication
// workflow depends on.
type Collaborators struct {
	// CheckExamExists reports whether an exam is scheduled for the course on
	// the date.
	CheckExamExists func(ctx context.Context, course domain.CourseCode, date domain.ExamDate) (bool, error)

	// CheckStudentRegistered reports whether the student is registered for
	// this exact course and date.
	CheckStudentRegistered func(ctx context.Context, student domain.StudentRegistrationNumber, course domain.CourseCode, date domain.ExamDate) (bool, error)

	// PersistGrades stores the full grade sheet atomically; a non-nil error
	// means nothing was stored.
	PersistGrades func(ctx context.Context, course domain.CourseCode, date domain.ExamDate, grades []StudentGrade) error
}

// Workflow composes the grade publication operations in their fixed order.
type Workflow struct {
	collaborators Collaborators
	clock         domain.Clock
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithClock replaces the system clock.
func WithClock(clock domain.Clock) Option {
	return func(w *Workflow) {
		w.clock = clock
	}
}

// New creates a grade publication workflow with the given collaborators.
func New(collaborators Collaborators, opts ...Option) Workflow {
	w := Workflow{
		collaborators: collaborators,
		clock:         domain.SystemClock,
	}

	for _, opt := range opts {
		opt(&w)
	}

	return w
}

// Execute runs the full pipeline for one command and returns the terminal event.
func (w Workflow) Execute(ctx context.Context, command Command) Event {
	state := examGrading(unvalidated{
		courseCode:    command.CourseCode,
		examDate:      command.ExamDate,
		studentGrades: command.StudentGrades,
	})

	state = w.validate(ctx, state)
	state = w.publish(ctx, state)

	return toEvent(state)
}
