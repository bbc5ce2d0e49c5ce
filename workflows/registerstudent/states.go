package registerstudent

import (
	"fmt"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

// studentRegistration is the closed set of states the registration pipeline
// moves through.
//
//	unvalidated --validate--> validated --check--> checked --register--> registered
//	     |                        |                   |
//	     +--------invalid<--------+------invalid<-----+
type studentRegistration interface {
	isStudentRegistration()
}

type unvalidated struct {
	studentRegistrationNumber string
	courseCode                string
	examDate                  string
}

type validated struct {
	student domain.StudentRegistrationNumber
	course  domain.CourseCode
	date    domain.ExamDate
}

// checked adds the resolved exam room and the student's same-day exam count
// after the business-rule gates passed.
type checked struct {
	student        domain.StudentRegistrationNumber
	course         domain.CourseCode
	date           domain.ExamDate
	room           domain.RoomNumber
	examsOnSameDay int
}

// registered is the terminal success state.
type registered struct {
	student      domain.StudentRegistrationNumber
	course       domain.CourseCode
	date         domain.ExamDate
	room         domain.RoomNumber
	registeredAt time.Time
}

// invalid is the terminal failure state, absorbing for every operation.
type invalid struct {
	studentRegistrationNumber string
	reasons                   []string
}

func (unvalidated) isStudentRegistration() {}
func (validated) isStudentRegistration()   {}
func (checked) isStudentRegistration()     {}
func (registered) isStudentRegistration()  {}
func (invalid) isStudentRegistration()     {}

func assertKnown(state studentRegistration) {
	switch state.(type) {
	case unvalidated, validated, checked, registered, invalid:
	default:
		panic(fmt.Sprintf("unknown student registration state: %T", state))
	}
}
