package filecontestation

import (
	"fmt"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

const (
	// ContestationFiledEventType is the event type identifier for the success event.
	ContestationFiledEventType = "ContestationFiled"

	// ContestationFailedEventType is the event type identifier for the failure event.
	ContestationFailedEventType = "ContestationFailed"
)

// Event is the terminal outcome of the contestation workflow.
type Event interface {
	EventType() string
	IsFailure() bool
	isContestationEvent()
}

// ContestationFiled reports a successfully persisted contestation.
type ContestationFiled struct {
	Student domain.StudentRegistrationNumber `json:"student"`
	Course  domain.CourseCode                `json:"course"`
	Date    domain.ExamDate                  `json:"date"`
	Reason  string                           `json:"reason"`
	FiledAt time.Time                        `json:"filedAt"`
}

func (ContestationFiled) isContestationEvent() {}

// EventType returns the event type identifier.
func (ContestationFiled) EventType() string { return ContestationFiledEventType }

// IsFailure returns false since this event represents a successful filing.
func (ContestationFiled) IsFailure() bool { return false }

// ContestationFailed reports a contestation that was not persisted.
type ContestationFailed struct {
	StudentRegistrationNumber string   `json:"studentRegistrationNumber"`
	Reasons                   []string `json:"reasons"`
}

func (ContestationFailed) isContestationEvent() {}

// EventType returns the event type identifier.
func (ContestationFailed) EventType() string { return ContestationFailedEventType }

// IsFailure returns true since this event represents a failed filing.
func (ContestationFailed) IsFailure() bool { return true }

func toEvent(state contestation) Event {
	switch s := state.(type) {
	case filed:
		return ContestationFiled{
			Student: s.student,
			Course:  s.course,
			Date:    s.date,
			Reason:  s.reason,
			FiledAt: s.filedAt,
		}
	case invalid:
		return ContestationFailed{StudentRegistrationNumber: s.studentRegistrationNumber, Reasons: s.reasons}
	case unvalidated:
		return ContestationFailed{
			StudentRegistrationNumber: s.studentRegistrationNumber,
			Reasons:                   []string{"Contestation was not completed - remained in unvalidated state"},
		}
	case validated:
		return ContestationFailed{
			StudentRegistrationNumber: s.student.String(),
			Reasons:                   []string{"Contestation was not completed - remained in validated state"},
		}
	case checked:
		return ContestationFailed{
			StudentRegistrationNumber: s.student.String(),
			Reasons:                   []string{"Contestation was not completed - remained in checked state"},
		}
	default:
		panic(fmt.Sprintf("unknown contestation state: %T", state))
	}
}
