package publishgrades

import "github.com/pssc-labs/exam-session-go/domain"

// StudentGrade is one validated grade entry, ready for persistence.
type StudentGrade struct {
	Student domain.StudentRegistrationNumber
	Grade   domain.Grade
}
