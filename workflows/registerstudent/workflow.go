package registerstudent

import (
	"context"

	"github.com/pssc-labs/exam-session-go/domain"
)

// Collaborators bundles the external functions the registration workflow
// depends on.
type Collaborators struct {
	// CheckStudentExists reports whether the student is enrolled at the university.
	CheckStudentExists func(ctx context.Context, student domain.StudentRegistrationNumber) (bool, error)

	// CheckExamExists reports whether an exam is scheduled for the course on
	// the date, returning the allocated room when it is. A zero room with
	// exists true means the scheduling has no room on record.
	CheckExamExists func(ctx context.Context, course domain.CourseCode, date domain.ExamDate) (bool, domain.RoomNumber, error)

	// GetStudentExamsOnDate counts the exams the student is already
	// registered for on the given calendar day.
	GetStudentExamsOnDate func(ctx context.Context, student domain.StudentRegistrationNumber, date domain.ExamDate) (int, error)

	// GetExamRoom resolves the room of the scheduled exam; a zero room means
	// no room is on record.
	GetExamRoom func(ctx context.Context, course domain.CourseCode, date domain.ExamDate) (domain.RoomNumber, error)

	// CheckAlreadyRegistered reports whether the student is already
	// registered for this exact course and date.
	CheckAlreadyRegistered func(ctx context.Context, student domain.StudentRegistrationNumber, course domain.CourseCode, date domain.ExamDate) (bool, error)

	// PersistRegistration stores the registration; a non-nil error means
	// nothing was stored.
	PersistRegistration func(ctx context.Context, student domain.StudentRegistrationNumber, course domain.CourseCode, date domain.ExamDate, room domain.RoomNumber) error
}

// Workflow composes the registration operations in their fixed order.
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

// New creates a registration workflow with the given collaborators.
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
	state := studentRegistration(unvalidated{
		studentRegistrationNumber: command.StudentRegistrationNumber,
		courseCode:                command.CourseCode,
		examDate:                  command.ExamDate,
	})

	state = w.validate(ctx, state)
	state = w.check(ctx, state)
	state = w.register(ctx, state)

	return toEvent(state)
}
