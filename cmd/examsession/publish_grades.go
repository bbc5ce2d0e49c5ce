package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pssc-labs/exam-session-go/workflows/publishgrades"
)

var (
	publishCourse string
	publishDate   string
	publishGrades []string
)

var publishGradesCmd = &cobra.Command{
	Use:   "publish-grades",
	Short: "Publish the grades of an exam",
	Long: `Publish the grades of an exam. Each grade is given as STUDENT=GRADE;
re-publishing refreshes existing grades and restarts the contestation window.

Examples:
  examsession publish-grades --course PSSC --date 2026-06-15 \
    --grade LM12345=9.50 --grade LM12346=4.75`,
	RunE: runPublishGrades,
}

func init() {
	publishGradesCmd.Flags().StringVar(&publishCourse, "course", "", "course code, e.g. PSSC")
	publishGradesCmd.Flags().StringVar(&publishDate, "date", "", "exam date (YYYY-MM-DD)")
	publishGradesCmd.Flags().StringArrayVar(&publishGrades, "grade", nil,
		"student grade as STUDENT=GRADE, repeatable")

	rootCmd.AddCommand(publishGradesCmd)
}

func runPublishGrades(cmd *cobra.Command, _ []string) error {
	inputs := make([]publishgrades.StudentGradeInput, 0, len(publishGrades))

	for _, pair := range publishGrades {
		student, grade, found := strings.Cut(pair, "=")
		if !found {
			return fmt.Errorf("invalid --grade %q, expected STUDENT=GRADE", pair)
		}

		inputs = append(inputs, publishgrades.StudentGradeInput{
			StudentRegistrationNumber: student,
			Grade:                     grade,
		})
	}

	workflow := publishgrades.New(store.GradingCollaborators())

	event := workflow.Execute(cmd.Context(), publishgrades.Command{
		CourseCode:    publishCourse,
		ExamDate:      publishDate,
		StudentGrades: inputs,
	})

	if published, ok := event.(publishgrades.GradesPublished); ok {
		logger.Info("grades published",
			"course", published.Course.String(),
			"total", published.TotalStudents,
			"passed", published.PassedStudents,
			"pass_rate", published.PassRate())
	}

	return finish(cmd, event)
}
