package scheduleexam

import (
	"context"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

// Collaborators bundles the external functions the scheduling workflow
// depends on. The workflow itself performs no I/O; every existence check,
// room search and reservation goes through these functions.
type Collaborators struct {
	// CheckCourseExists reports whether the course is present in the catalog.
	CheckCourseExists func(ctx context.Context, course domain.CourseCode) (bool, error)

	// GetCourseEndDate returns the date the course's teaching period ends.
	GetCourseEndDate func(ctx context.Context, course domain.CourseCode) (time.Time, error)

	// FindAvailableRooms returns rooms free on the given date with at least
	// the given capacity, in the collaborator's preference order.
	FindAvailableRooms func(ctx context.Context, date domain.ExamDate, duration domain.Duration, capacity domain.Capacity) ([]domain.RoomNumber, error)

	// ReserveRoom attempts to reserve the room and reports false when a
	// concurrent reservation already won the slot.
	ReserveRoom func(ctx context.Context, room domain.RoomNumber, date domain.ExamDate, duration domain.Duration) (bool, error)
}

// Workflow composes the scheduling operations in their fixed order.
type Workflow struct {
	collaborators Collaborators
	clock         domain.Clock
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithClock replaces the system clock, making time-dependent rules
// deterministic in tests.
func WithClock(clock domain.Clock) Option {
	return func(w *Workflow) {
		w.clock = clock
	}
}

// New creates a scheduling workflow with the given collaborators.
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

// Execute runs the full pipeline for one command and returns the terminal
// event. It never returns an error: every failure is carried as reasons on
// the ExamSchedulingFailed event.
func (w Workflow) Execute(ctx context.Context, command Command) Event {
	state := examScheduling(unvalidated{
		courseCode:       command.CourseCode,
		proposedDate1:    command.ProposedDate1,
		proposedDate2:    command.ProposedDate2,
		proposedDate3:    command.ProposedDate3,
		duration:         command.Duration,
		expectedStudents: command.ExpectedStudents,
	})

	state = w.validate(ctx, state)
	state = w.allocateRoom(ctx, state)
	state = w.publish(state)

	return toEvent(state)
}
