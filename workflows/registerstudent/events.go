package registerstudent

import (
	"fmt"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

const (
	// StudentRegisteredEventType is the event type identifier for the success event.
	StudentRegisteredEventType = "StudentRegistered"

	// StudentRegistrationFailedEventType is the event type identifier for the failure event.
	StudentRegistrationFailedEventType = "StudentRegistrationFailed"
)

// Event is the terminal outcome of the registration workflow.
type Event interface {
	EventType() string
	IsFailure() bool
	isStudentRegistrationEvent()
}

// StudentRegistered reports a successfully persisted registration.
type StudentRegistered struct {
	Student      domain.StudentRegistrationNumber `json:"student"`
	Course       domain.CourseCode                `json:"course"`
	Date         domain.ExamDate                  `json:"date"`
	Room         domain.RoomNumber                `json:"room"`
	RegisteredAt time.Time                        `json:"registeredAt"`
}

func (StudentRegistered) isStudentRegistrationEvent() {}

// EventType returns the event type identifier.
func (StudentRegistered) EventType() string { return StudentRegisteredEventType }

// IsFailure returns false since this event represents a successful registration.
func (StudentRegistered) IsFailure() bool { return false }

// StudentRegistrationFailed reports a registration that was not persisted.
type StudentRegistrationFailed struct {
	StudentRegistrationNumber string   `json:"studentRegistrationNumber"`
	Reasons                   []string `json:"reasons"`
}

func (StudentRegistrationFailed) isStudentRegistrationEvent() {}

// EventType returns the event type identifier.
func (StudentRegistrationFailed) EventType() string { return StudentRegistrationFailedEventType }

// IsFailure returns true since this event represents a failed registration.
func (StudentRegistrationFailed) IsFailure() bool { return true }

func toEvent(state studentRegistration) Event {
	switch s := state.(type) {
	case registered:
		return StudentRegistered{
			Student:      s.student,
			Course:       s.course,
			Date:         s.date,
			Room:         s.room,
			RegisteredAt: s.registeredAt,
		}
	case invalid:
		return StudentRegistrationFailed{StudentRegistrationNumber: s.studentRegistrationNumber, Reasons: s.reasons}
	case unvalidated:
		return StudentRegistrationFailed{
			StudentRegistrationNumber: s.studentRegistrationNumber,
			Reasons:                   []string{"Student registration was not completed - remained in unvalidated state"},
		}
	case validated:
		return StudentRegistrationFailed{
			StudentRegistrationNumber: s.student.String(),
			Reasons:                   []string{"Student registration was not completed - remained in validated state"},
		}
	case checked:
		return StudentRegistrationFailed{
			StudentRegistrationNumber: s.student.String(),
			Reasons:                   []string{"Student registration was not completed - remained in checked state"},
		}
	default:
		panic(fmt.Sprintf("unknown student registration state: %T", state))
	}
}
