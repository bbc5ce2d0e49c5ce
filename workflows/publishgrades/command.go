package publishgrades

const commandType = "PublishGrades"

// StudentGradeInput is one raw grade entry as submitted by the caller.
type StudentGradeInput struct {
	StudentRegistrationNumber string
	Grade                     string
}

// Command represents the intent to publish the grades of one exam. All
// fields are raw, untrusted strings.
type Command struct {
	CourseCode    string
	ExamDate      string
	StudentGrades []StudentGradeInput
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}
