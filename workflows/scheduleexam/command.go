package scheduleexam

const commandType = "ScheduleExam"

// Command represents the intent to schedule an exam. All fields are raw,
// untrusted strings; validation happens inside the workflow.
type Command struct {
	CourseCode       string
	ProposedDate1    string
	ProposedDate2    string
	ProposedDate3    string
	Duration         string
	ExpectedStudents string
}

// CommandType returns the type identifier for this command.
func (c Command) CommandType() string {
	return commandType
}
