package scheduleexam

import (
	"fmt"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

const (
	// ExamScheduledEventType is the event type identifier for the success event.
	ExamScheduledEventType = "ExamScheduled"

	// ExamSchedulingFailedEventType is the event type identifier for the failure event.
	ExamSchedulingFailedEventType = "ExamSchedulingFailed"
)

// Event is the terminal outcome of the scheduling workflow: either
// ExamScheduled or ExamSchedulingFailed.
type Event interface {
	EventType() string
	IsFailure() bool
	isExamSchedulingEvent()
}

// ExamScheduled reports a successfully published exam scheduling.
type ExamScheduled struct {
	Course       domain.CourseCode `json:"course"`
	Date         domain.ExamDate   `json:"date"`
	Room         domain.RoomNumber `json:"room"`
	RoomCapacity domain.Capacity   `json:"roomCapacity"`
	PublishedAt  time.Time         `json:"publishedAt"`
}

func (ExamScheduled) isExamSchedulingEvent() {}

// EventType returns the event type identifier.
func (ExamScheduled) EventType() string { return ExamScheduledEventType }

// IsFailure returns false since this event represents a successful scheduling.
func (ExamScheduled) IsFailure() bool { return false }

// ExamSchedulingFailed reports a scheduling that did not reach publication,
// carrying every collected reason.
type ExamSchedulingFailed struct {
	CourseCode string   `json:"courseCode"`
	Reasons    []string `json:"reasons"`
}

func (ExamSchedulingFailed) isExamSchedulingEvent() {}

// EventType returns the event type identifier.
func (ExamSchedulingFailed) EventType() string { return ExamSchedulingFailedEventType }

// IsFailure returns true since this event represents a failed scheduling.
func (ExamSchedulingFailed) IsFailure() bool { return true }

// toEvent converts the terminal state into the event returned to the caller.
// A pipeline that stalls in a non-terminal state is a composition defect and
// is reported as a failure event, not a crash.
func toEvent(state examScheduling) Event {
	switch s := state.(type) {
	case published:
		return ExamScheduled{
			Course:       s.course,
			Date:         s.selectedDate,
			Room:         s.room,
			RoomCapacity: s.roomCapacity,
			PublishedAt:  s.publishedAt,
		}
	case invalid:
		return ExamSchedulingFailed{CourseCode: s.courseCode, Reasons: s.reasons}
	case unvalidated:
		return ExamSchedulingFailed{
			CourseCode: s.courseCode,
			Reasons:    []string{"Exam scheduling was not completed - remained in unvalidated state"},
		}
	case validated:
		return ExamSchedulingFailed{
			CourseCode: s.course.String(),
			Reasons:    []string{"Exam scheduling was not completed - remained in validated state"},
		}
	case roomAllocated:
		return ExamSchedulingFailed{
			CourseCode: s.course.String(),
			Reasons:    []string{"Exam scheduling was not completed - remained in room allocated state"},
		}
	default:
		panic(fmt.Sprintf("unknown exam scheduling state: %T", state))
	}
}
