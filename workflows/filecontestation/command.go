package filecontestation

const commandType = "FileContestation"

// Command represents the intent to contest a published grade. All fields
// are raw, untrusted strings.
type Command struct {
	StudentRegistrationNumber string
	CourseCode                string
	ExamDate                  string
	Reason                    string
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}
