package main

import (
	"github.com/spf13/cobra"

	"github.com/pssc-labs/exam-session-go/workflows/registerstudent"
)

var (
	registerStudentNumber string
	registerCourse        string
	registerDate          string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a student for a scheduled exam",
	Long: `Register a student for a scheduled exam. A student can sit at most
two exams per day and cannot register twice for the same exam.

Examples:
  examsession register --student LM12345 --course PSSC --date 2026-06-15`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerStudentNumber, "student", "", "student registration number, e.g. LM12345")
	registerCmd.Flags().StringVar(&registerCourse, "course", "", "course code, e.g. PSSC")
	registerCmd.Flags().StringVar(&registerDate, "date", "", "exam date (YYYY-MM-DD)")

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	workflow := registerstudent.New(store.RegistrationCollaborators())

	event := workflow.Execute(cmd.Context(), registerstudent.Command{
		StudentRegistrationNumber: registerStudentNumber,
		CourseCode:                registerCourse,
		ExamDate:                  registerDate,
	})

	return finish(cmd, event)
}
