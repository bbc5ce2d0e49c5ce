package filecontestation

import (
	"fmt"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

// contestation is the closed set of states the contestation pipeline moves
// through.
//
//	unvalidated --validate--> validated --checkWindow--> checked --file--> filed
//	     |                        |                         |
//	     +--------invalid<--------+--------invalid<---------+
type contestation interface {
	isContestation()
}

type unvalidated struct {
	studentRegistrationNumber string
	courseCode                string
	examDate                  string
	reason                    string
}

type validated struct {
	student domain.StudentRegistrationNumber
	course  domain.CourseCode
	date    domain.ExamDate
	reason  string
}

// checked records when the grades were published and how much of the
// contestation window had elapsed at check time.
type checked struct {
	student              domain.StudentRegistrationNumber
	course               domain.CourseCode
	date                 domain.ExamDate
	reason               string
	gradesPublishedAt    time.Time
	timeSincePublication time.Duration
}

// filed is the terminal success state.
type filed struct {
	student domain.StudentRegistrationNumber
	course  domain.CourseCode
	date    domain.ExamDate
	reason  string
	filedAt time.Time
}

// invalid is the terminal failure state, absorbing for every operation.
type invalid struct {
	studentRegistrationNumber string
	reasons                   []string
}

func (unvalidated) isContestation() {}
func (validated) isContestation()   {}
func (checked) isContestation()     {}
func (filed) isContestation()       {}
func (invalid) isContestation()     {}

func assertKnown(state contestation) {
	switch state.(type) {
	case unvalidated, validated, checked, filed, invalid:
	default:
		panic(fmt.Sprintf("unknown contestation state: %T", state))
	}
}
