package publishgrades

import (
	"fmt"
	"math"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

const (
	// GradesPublishedEventType is the event type identifier for the success event.
	GradesPublishedEventType = "GradesPublished"

	// ExamGradingFailedEventType is the event type identifier for the failure event.
	ExamGradingFailedEventType = "ExamGradingFailed"
)

// Event is the terminal outcome of the grade publication workflow.
type Event interface {
	EventType() string
	IsFailure() bool
	isExamGradingEvent()
}

// GradesPublished reports a successfully persisted grade sheet.
type GradesPublished struct {
	Course         domain.CourseCode `json:"course"`
	Date           domain.ExamDate   `json:"date"`
	PublishedAt    time.Time         `json:"publishedAt"`
	TotalStudents  int               `json:"totalStudents"`
	PassedStudents int               `json:"passedStudents"`
}

func (GradesPublished) isExamGradingEvent() {}

// EventType returns the event type identifier.
func (GradesPublished) EventType() string { return GradesPublishedEventType }

// IsFailure returns false since this event represents a successful publication.
func (GradesPublished) IsFailure() bool { return false }

// PassRate returns the share of passing students as a percentage rounded to
// two decimals, or 0 when no grades were published.
func (e GradesPublished) PassRate() float64 {
	if e.TotalStudents == 0 {
		return 0
	}

	return math.Round(100.0*float64(e.PassedStudents)/float64(e.TotalStudents)*100) / 100
}

// ExamGradingFailed reports a grade publication that was not persisted.
type ExamGradingFailed struct {
	CourseCode string   `json:"courseCode"`
	Reasons    []string `json:"reasons"`
}

func (ExamGradingFailed) isExamGradingEvent() {}

// EventType returns the event type identifier.
func (ExamGradingFailed) EventType() string { return ExamGradingFailedEventType }

// IsFailure returns true since this event represents a failed publication.
func (ExamGradingFailed) IsFailure() bool { return true }

func toEvent(state examGrading) Event {
	switch s := state.(type) {
	case published:
		return GradesPublished{
			Course:         s.course,
			Date:           s.date,
			PublishedAt:    s.publishedAt,
			TotalStudents:  s.totalStudents,
			PassedStudents: s.passedStudents,
		}
	case invalid:
		return ExamGradingFailed{CourseCode: s.courseCode, Reasons: s.reasons}
	case unvalidated:
		return ExamGradingFailed{
			CourseCode: s.courseCode,
			Reasons:    []string{"Exam grading was not completed - remained in unvalidated state"},
		}
	case validated:
		return ExamGradingFailed{
			CourseCode: s.course.String(),
			Reasons:    []string{"Exam grading was not completed - remained in validated state"},
		}
	default:
		panic(fmt.Sprintf("unknown exam grading state: %T", state))
	}
}
