package filecontestation

import (
	"context"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

// Collaborators bundles the external functions the contestation workflow
// depends on.
type Collaborators struct {
	// CheckStudentRegistered reports whether the student is registered for
	// this exact course and date.
	CheckStudentRegistered func(ctx context.Context, student domain.StudentRegistrationNumber, course domain.CourseCode, date domain.ExamDate) (bool, error)

	// GetGradesPublishedAt returns when the grades for the exam were
	// published. The bool is false when they have not been published yet.
	GetGradesPublishedAt func(ctx context.Context, course domain.CourseCode, date domain.ExamDate) (time.Time, bool, error)

	// PersistContestation stores the contestation; a non-nil error means
	// nothing was stored.
	PersistContestation func(ctx context.Context, student domain.StudentRegistrationNumber, course domain.CourseCode, date domain.ExamDate, reason string) error
}

// Workflow composes the contestation operations in their fixed order.
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

// New creates a contestation workflow with the given collaborators.
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
	state := contestation(unvalidated{
		studentRegistrationNumber: command.StudentRegistrationNumber,
		courseCode:                command.CourseCode,
		examDate:                  command.ExamDate,
		reason:                    command.Reason,
	})

	state = w.validate(ctx, state)
	state = w.checkWindow(ctx, state)
	state = w.file(ctx, state)

	return toEvent(state)
}
