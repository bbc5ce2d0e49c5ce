package scheduleexam

import (
	"fmt"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

// examScheduling is the closed set of states the scheduling pipeline moves
// through. Each variant is an immutable snapshot; operations build a new
// variant instead of mutating.
//
//	unvalidated --validate--> validated --allocateRoom--> roomAllocated --publish--> published
//	     |                        |                             |
//	     +--------invalid<--------+----------invalid<-----------+
type examScheduling interface {
	isExamScheduling()
}

// unvalidated carries the raw command fields before any validation.
type unvalidated struct {
	courseCode       string
	proposedDate1    string
	proposedDate2    string
	proposedDate3    string
	duration         string
	expectedStudents string
}

// validated carries fully parsed value objects plus the candidate dates that
// survived validation, in the order they were proposed.
type validated struct {
	course           domain.CourseCode
	proposedDates    []domain.ExamDate
	duration         domain.Duration
	expectedStudents domain.Capacity
}

// roomAllocated records the winning date and the reserved room.
type roomAllocated struct {
	course       domain.CourseCode
	selectedDate domain.ExamDate
	duration     domain.Duration
	room         domain.RoomNumber
	roomCapacity domain.Capacity
}

// published is the terminal success state.
type published struct {
	course           domain.CourseCode
	selectedDate     domain.ExamDate
	duration         domain.Duration
	room             domain.RoomNumber
	roomCapacity     domain.Capacity
	enrolledStudents domain.Capacity
	publishedAt      time.Time
}

// invalid is the terminal failure state, absorbing for every operation.
type invalid struct {
	courseCode string
	reasons    []string
}

func (unvalidated) isExamScheduling()   {}
func (validated) isExamScheduling()     {}
func (roomAllocated) isExamScheduling() {}
func (published) isExamScheduling()     {}
func (invalid) isExamScheduling()       {}

// assertKnown guards every operation against a variant that is not part of
// the closed set. Hitting the panic means the composition code is broken,
// not that input data was bad.
func assertKnown(state examScheduling) {
	switch state.(type) {
	case unvalidated, validated, roomAllocated, published, invalid:
	default:
		panic(fmt.Sprintf("unknown exam scheduling state: %T", state))
	}
}
