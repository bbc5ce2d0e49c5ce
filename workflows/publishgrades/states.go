package publishgrades

import (
	"fmt"
	"time"

	"github.com/pssc-labs/exam-session-go/domain"
)

// examGrading is the closed set of states the grade publication pipeline
// moves through.
//
//	unvalidated --validate--> validated --publish--> published
//	     |                        |
//	     +--------invalid<--------+
type examGrading interface {
	isExamGrading()
}

type unvalidated struct {
	courseCode    string
	examDate      string
	studentGrades []StudentGradeInput
}

type validated struct {
	course domain.CourseCode
	date   domain.ExamDate
	grades []StudentGrade
}

// published is the terminal success state carrying the derived statistics.
type published struct {
	course         domain.CourseCode
	date           domain.ExamDate
	grades         []StudentGrade
	publishedAt    time.Time
	totalStudents  int
	passedStudents int
}

// invalid is the terminal failure state, absorbing for every operation.
type invalid struct {
	courseCode string
	reasons    []string
}

func (unvalidated) isExamGrading() {}
func (validated) isExamGrading()   {}
func (published) isExamGrading()   {}
func (invalid) isExamGrading()     {}

func assertKnown(state examGrading) {
	switch state.(type) {
	case unvalidated, validated, published, invalid:
	default:
		panic(fmt.Sprintf("unknown exam grading state: %T", state))
	}
}
