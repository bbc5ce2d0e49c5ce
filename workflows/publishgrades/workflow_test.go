package publishgrades_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pssc-labs/exam-session-go/domain"
	"github.com/pssc-labs/exam-session-go/workflows/publishgrades"
)

var testNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

func happyCollaborators() publishgrades.Collaborators {
	return publishgrades.Collaborators{
		CheckExamExists: func(_ context.Context, _ domain.CourseCode, _ domain.ExamDate) (bool, error) {
			return true, nil
		},
		CheckStudentRegistered: func(_ context.Context, _ domain.StudentRegistrationNumber, _ domain.CourseCode, _ domain.ExamDate) (bool, error) {
			return true, nil
		},
		PersistGrades: func(_ context.Context, _ domain.CourseCode, _ domain.ExamDate, _ []publishgrades.StudentGrade) error {
			return nil
		},
	}
}

func validCommand() publishgrades.Command {
	return publishgrades.Command{
		CourseCode: "PSSC",
		ExamDate:   "2026-06-15",
		StudentGrades: []publishgrades.StudentGradeInput{
			{StudentRegistrationNumber: "LM12345", Grade: "9.50"},
			{StudentRegistrationNumber: "LM12346", Grade: "4.75"},
			{StudentRegistrationNumber: "LM12347", Grade: "5.00"},
		},
	}
}

func Test_PublishGrades_HappyPath_PublishesWithStatistics(t *testing.T) {
	var persisted []publishgrades.StudentGrade

	collaborators := happyCollaborators()
	collaborators.PersistGrades = func(_ context.Context, _ domain.CourseCode, _ domain.ExamDate, grades []publishgrades.StudentGrade) error {
		persisted = grades
		return nil
	}

	workflow := publishgrades.New(collaborators, publishgrades.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), validCommand())

	published, ok := event.(publishgrades.GradesPublished)
	require.True(t, ok, "expected GradesPublished, got %T with %+v", event, event)
	assert.Equal(t, "PSSC", published.Course.String())
	assert.Equal(t, "2026-06-15", published.Date.String())
	assert.Equal(t, testNow, published.PublishedAt)
	assert.Equal(t, 3, published.TotalStudents)
	assert.Equal(t, 2, published.PassedStudents) // 5.00 is the passing threshold, inclusive
	assert.InDelta(t, 66.67, published.PassRate(), 0.001)
	assert.False(t, event.IsFailure())
	assert.Equal(t, publishgrades.GradesPublishedEventType, event.EventType())
	require.Len(t, persisted, 3)
	assert.Equal(t, "LM12346", persisted[1].Student.String())
	assert.Equal(t, "4.75", persisted[1].Grade.String())
}

func Test_PublishGrades_CollectsAllValidationErrors(t *testing.T) {
	workflow := publishgrades.New(happyCollaborators(), publishgrades.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), publishgrades.Command{
		CourseCode: "x",
		ExamDate:   "garbage",
		StudentGrades: []publishgrades.StudentGradeInput{
			{StudentRegistrationNumber: "bogus", Grade: "9.00"},
			{StudentRegistrationNumber: "LM12345", Grade: "11.00"},
		},
	})

	failed, ok := event.(publishgrades.ExamGradingFailed)
	require.True(t, ok)
	assert.True(t, event.IsFailure())
	reasons := joined(failed.Reasons)
	assert.Contains(t, reasons, "Invalid course code format")
	assert.Contains(t, reasons, "Exam date 'garbage' is not a valid date")
	assert.Contains(t, reasons, "Student: Invalid student registration number format")
	assert.Contains(t, reasons, "Grade for student LM12345:")
	assert.Contains(t, reasons, "No valid student grades provided")
}

func Test_PublishGrades_NoExamFound_Fails(t *testing.T) {
	collaborators := happyCollaborators()
	collaborators.CheckExamExists = func(_ context.Context, _ domain.CourseCode, _ domain.ExamDate) (bool, error) {
		return false, nil
	}

	workflow := publishgrades.New(collaborators, publishgrades.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), validCommand())

	failed, ok := event.(publishgrades.ExamGradingFailed)
	require.True(t, ok)
	assert.Contains(t, joined(failed.Reasons), "No exam found for course 'PSSC' on 2026-06-15")
}

func Test_PublishGrades_UnregisteredStudent_FailsWithRemainingEntriesDropped(t *testing.T) {
	collaborators := happyCollaborators()
	collaborators.CheckStudentRegistered = func(_ context.Context, student domain.StudentRegistrationNumber, _ domain.CourseCode, _ domain.ExamDate) (bool, error) {
		return student.String() != "LM12346", nil
	}

	workflow := publishgrades.New(collaborators, publishgrades.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), validCommand())

	failed, ok := event.(publishgrades.ExamGradingFailed)
	require.True(t, ok, "expected ExamGradingFailed, got %+v", event)
	require.Len(t, failed.Reasons, 1)
	assert.Equal(t, "Student LM12346 is not registered for this exam", failed.Reasons[0])
}

func Test_PublishGrades_PersistFailure_ReportsReason(t *testing.T) {
	collaborators := happyCollaborators()
	collaborators.PersistGrades = func(_ context.Context, _ domain.CourseCode, _ domain.ExamDate, _ []publishgrades.StudentGrade) error {
		return errors.New("connection reset")
	}

	workflow := publishgrades.New(collaborators, publishgrades.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), validCommand())

	failed, ok := event.(publishgrades.ExamGradingFailed)
	require.True(t, ok)
	assert.Contains(t, joined(failed.Reasons), "Failed to persist exam grades: connection reset")
}

func Test_PublishGrades_InvalidCommand_NeverTouchesPersistence(t *testing.T) {
	persistCalls := 0

	collaborators := happyCollaborators()
	collaborators.PersistGrades = func(_ context.Context, _ domain.CourseCode, _ domain.ExamDate, _ []publishgrades.StudentGrade) error {
		persistCalls++
		return nil
	}

	workflow := publishgrades.New(collaborators, publishgrades.WithClock(domain.FixedClock(testNow)))

	command := validCommand()
	command.CourseCode = "not valid"

	workflow.Execute(context.Background(), command)

	assert.Zero(t, persistCalls)
}

func Test_PublishGrades_PassRate_RoundsToTwoDecimals(t *testing.T) {
	assert.Zero(t, publishgrades.GradesPublished{}.PassRate())
	assert.InDelta(t, 33.33,
		publishgrades.GradesPublished{TotalStudents: 3, PassedStudents: 1}.PassRate(), 0.001)
	assert.InDelta(t, 100.0,
		publishgrades.GradesPublished{TotalStudents: 4, PassedStudents: 4}.PassRate(), 0.001)
}

func joined(reasons []string) string {
	out := ""
	for _, r := range reasons {
		out += r + ";"
	}

	return out
}
