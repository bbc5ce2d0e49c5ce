package registerstudent

const commandType = "RegisterStudent"

// Command represents the intent to register a student for an exam. All
// fields are raw, untrusted strings.
type Command struct {
	StudentRegistrationNumber string
	CourseCode                string
	ExamDate                  string
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}
