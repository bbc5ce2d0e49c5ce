package main

import (
	"github.com/spf13/cobra"

	"github.com/pssc-labs/exam-session-go/domain"
	"github.com/pssc-labs/exam-session-go/notify"
	"github.com/pssc-labs/exam-session-go/workflows/scheduleexam"
)

var (
	scheduleCourse   string
	scheduleDate1    string
	scheduleDate2    string
	scheduleDate3    string
	scheduleDuration string
	scheduleStudents string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule an exam into an available room",
	Long: `Schedule an exam by proposing up to three candidate dates. The first
date with a free room of sufficient capacity wins.

Examples:
  examsession schedule --course PSSC --date1 2026-06-15 --date2 2026-06-16 \
    --duration 02:00 --students 25`,
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleCourse, "course", "", "course code, e.g. PSSC")
	scheduleCmd.Flags().StringVar(&scheduleDate1, "date1", "", "first proposed date (YYYY-MM-DD)")
	scheduleCmd.Flags().StringVar(&scheduleDate2, "date2", "", "second proposed date (YYYY-MM-DD)")
	scheduleCmd.Flags().StringVar(&scheduleDate3, "date3", "", "third proposed date (YYYY-MM-DD)")
	scheduleCmd.Flags().StringVar(&scheduleDuration, "duration", "", "exam duration, 'hh:mm' or minutes")
	scheduleCmd.Flags().StringVar(&scheduleStudents, "students", "", "expected number of students")

	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, _ []string) error {
	// A malformed course code fails validation inside the workflow before
	// any reservation is attempted, so the parse error is ignored here.
	course, _ := domain.ParseCourseCode(scheduleCourse)

	workflow := scheduleexam.New(store.SchedulingCollaborators(course))

	event := workflow.Execute(cmd.Context(), scheduleexam.Command{
		CourseCode:       scheduleCourse,
		ProposedDate1:    scheduleDate1,
		ProposedDate2:    scheduleDate2,
		ProposedDate3:    scheduleDate3,
		Duration:         scheduleDuration,
		ExpectedStudents: scheduleStudents,
	})

	if scheduled, ok := event.(scheduleexam.ExamScheduled); ok && notifier != nil {
		notification := notify.RoomAssignmentNotification{
			CourseCode:   scheduled.Course.String(),
			ExamDate:     scheduled.Date.String(),
			RoomNumber:   scheduled.Room.String(),
			RoomCapacity: scheduled.RoomCapacity.Value(),
			AssignedAt:   scheduled.PublishedAt,
		}

		// Best effort: the exam stays scheduled even when the notification
		// service is down.
		if err := notifier.NotifyRoomAssignment(cmd.Context(), notification); err != nil {
			logger.Warn("room assignment notification not delivered", "error", err.Error())
		}
	}

	return finish(cmd, event)
}
