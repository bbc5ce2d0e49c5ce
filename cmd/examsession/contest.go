package main

import (
	"github.com/spf13/cobra"

	"github.com/pssc-labs/exam-session-go/workflows/filecontestation"
)

var (
	contestStudentNumber string
	contestCourse        string
	contestDate          string
	contestReason        string
)

var contestCmd = &cobra.Command{
	Use:   "contest",
	Short: "File a contestation against a published grade",
	Long: `File a contestation against a published grade. Contestations are only
accepted within 48 hours of grade publication.

Examples:
  examsession contest --student LM12345 --course PSSC --date 2026-06-15 \
    --reason "Question 3 was graded against the wrong answer key"`,
	RunE: runContest,
}

func init() {
	contestCmd.Flags().StringVar(&contestStudentNumber, "student", "", "student registration number, e.g. LM12345")
	contestCmd.Flags().StringVar(&contestCourse, "course", "", "course code, e.g. PSSC")
	contestCmd.Flags().StringVar(&contestDate, "date", "", "exam date (YYYY-MM-DD)")
	contestCmd.Flags().StringVar(&contestReason, "reason", "", "why the grade is contested")

	rootCmd.AddCommand(contestCmd)
}

func runContest(cmd *cobra.Command, _ []string) error {
	workflow := filecontestation.New(store.ContestationCollaborators())

	event := workflow.Execute(cmd.Context(), filecontestation.Command{
		StudentRegistrationNumber: contestStudentNumber,
		CourseCode:                contestCourse,
		ExamDate:                  contestDate,
		Reason:                    contestReason,
	})

	return finish(cmd, event)
}
