package filecontestation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pssc-labs/exam-session-go/domain"
	"github.com/pssc-labs/exam-session-go/workflows/filecontestation"
)

var (
	testNow     = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	publishedAt = testNow.Add(-24 * time.Hour)
)

func happyCollaborators() filecontestation.Collaborators {
	return filecontestation.Collaborators{
		CheckStudentRegistered: func(_ context.Context, _ domain.StudentRegistrationNumber, _ domain.CourseCode, _ domain.ExamDate) (bool, error) {
			return true, nil
		},
		GetGradesPublishedAt: func(_ context.Context, _ domain.CourseCode, _ domain.ExamDate) (time.Time, bool, error) {
			return publishedAt, true, nil
		},
		PersistContestation: func(_ context.Context, _ domain.StudentRegistrationNumber, _ domain.CourseCode, _ domain.ExamDate, _ string) error {
			return nil
		},
	}
}

func validCommand() filecontestation.Command {
	return filecontestation.Command{
		StudentRegistrationNumber: "LM12345",
		CourseCode:                "PSSC",
		ExamDate:                  "2026-06-15",
		Reason:                    "Question 3 was graded against the wrong answer key",
	}
}

func Test_FileContestation_HappyPath_FilesWithTimestamp(t *testing.T) {
	workflow := filecontestation.New(happyCollaborators(), filecontestation.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), validCommand())

	filed, ok := event.(filecontestation.ContestationFiled)
	require.True(t, ok, "expected ContestationFiled, got %T with %+v", event, event)
	assert.Equal(t, "LM12345", filed.Student.String())
	assert.Equal(t, "PSSC", filed.Course.String())
	assert.Equal(t, "2026-06-15", filed.Date.String())
	assert.Equal(t, "Question 3 was graded against the wrong answer key", filed.Reason)
	assert.Equal(t, testNow, filed.FiledAt)
	assert.False(t, event.IsFailure())
	assert.Equal(t, filecontestation.ContestationFiledEventType, event.EventType())
}

func Test_FileContestation_CollectsAllValidationErrors(t *testing.T) {
	workflow := filecontestation.New(happyCollaborators(), filecontestation.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), filecontestation.Command{
		StudentRegistrationNumber: "bogus",
		CourseCode:                "x",
		ExamDate:                  "garbage",
		Reason:                    "   ",
	})

	failed, ok := event.(filecontestation.ContestationFailed)
	require.True(t, ok)
	assert.True(t, event.IsFailure())
	reasons := joined(failed.Reasons)
	assert.Contains(t, reasons, "Invalid student registration number format")
	assert.Contains(t, reasons, "Invalid course code format")
	assert.Contains(t, reasons, "Exam date 'garbage' is not a valid date")
	assert.Contains(t, reasons, "Contestation reason must not be empty")
	assert.Len(t, failed.Reasons, 4)
}

func Test_FileContestation_UnregisteredStudent_Fails(t *testing.T) {
	collaborators := happyCollaborators()
	collaborators.CheckStudentRegistered = func(_ context.Context, _ domain.StudentRegistrationNumber, _ domain.CourseCode, _ domain.ExamDate) (bool, error) {
		return false, nil
	}

	workflow := filecontestation.New(collaborators, filecontestation.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), validCommand())

	failed, ok := event.(filecontestation.ContestationFailed)
	require.True(t, ok)
	assert.Contains(t, joined(failed.Reasons),
		"Student LM12345 is not registered for exam PSSC on 2026-06-15")
}

func Test_FileContestation_GradesNotPublished_Fails(t *testing.T) {
	collaborators := happyCollaborators()
	collaborators.GetGradesPublishedAt = func(_ context.Context, _ domain.CourseCode, _ domain.ExamDate) (time.Time, bool, error) {
		return time.Time{}, false, nil
	}

	workflow := filecontestation.New(collaborators, filecontestation.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), validCommand())

	failed, ok := event.(filecontestation.ContestationFailed)
	require.True(t, ok)
	require.Len(t, failed.Reasons, 1)
	assert.Equal(t, "Grades have not been published yet for this exam", failed.Reasons[0])
}

func Test_FileContestation_WindowBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		elapsed   time.Duration
		wantFiled bool
	}{
		{name: "just inside the window", elapsed: 47*time.Hour + 59*time.Minute, wantFiled: true},
		{name: "exactly at the deadline", elapsed: 48 * time.Hour, wantFiled: true},
		{name: "one second past the deadline", elapsed: 48*time.Hour + time.Second, wantFiled: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			collaborators := happyCollaborators()
			collaborators.GetGradesPublishedAt = func(_ context.Context, _ domain.CourseCode, _ domain.ExamDate) (time.Time, bool, error) {
				return testNow.Add(-tc.elapsed), true, nil
			}

			workflow := filecontestation.New(collaborators, filecontestation.WithClock(domain.FixedClock(testNow)))

			event := workflow.Execute(context.Background(), validCommand())

			if tc.wantFiled {
				_, ok := event.(filecontestation.ContestationFiled)
				assert.True(t, ok, "expected ContestationFiled, got %+v", event)
				return
			}

			failed, ok := event.(filecontestation.ContestationFailed)
			require.True(t, ok, "expected ContestationFailed, got %+v", event)
			require.Len(t, failed.Reasons, 1)
			assert.Equal(t,
				"Contestation window has expired. Grades were published 48.0 hours ago (deadline: 48 hours)",
				failed.Reasons[0])
		})
	}
}

func Test_FileContestation_PersistFailure_ReportsReason(t *testing.T) {
	collaborators := happyCollaborators()
	collaborators.PersistContestation = func(_ context.Context, _ domain.StudentRegistrationNumber, _ domain.CourseCode, _ domain.ExamDate, _ string) error {
		return errors.New("connection reset")
	}

	workflow := filecontestation.New(collaborators, filecontestation.WithClock(domain.FixedClock(testNow)))

	event := workflow.Execute(context.Background(), validCommand())

	failed, ok := event.(filecontestation.ContestationFailed)
	require.True(t, ok)
	assert.Contains(t, joined(failed.Reasons), "Failed to persist contestation: connection reset")
}

func Test_FileContestation_InvalidCommand_NeverTouchesPersistence(t *testing.T) {
	persistCalls := 0

	collaborators := happyCollaborators()
	collaborators.PersistContestation = func(_ context.Context, _ domain.StudentRegistrationNumber, _ domain.CourseCode, _ domain.ExamDate, _ string) error {
		persistCalls++
		return nil
	}

	workflow := filecontestation.New(collaborators, filecontestation.WithClock(domain.FixedClock(testNow)))

	command := validCommand()
	command.Reason = ""

	workflow.Execute(context.Background(), command)

	assert.Zero(t, persistCalls)
}

func joined(reasons []string) string {
	out := ""
	for _, r := range reasons {
		out += r + ";"
	}

	return out
}
