package postgres

import (
	"context"

	"github.com/pssc-labs/exam-session-go/domain"
	"github.com/pssc-labs/exam-session-go/workflows/filecontestation"
	"github.com/pssc-labs/exam-session-go/workflows/publishgrades"
	"github.com/pssc-labs/exam-session-go/workflows/registerstudent"
	"github.com/pssc-labs/exam-session-go/workflows/scheduleexam"
)

// SchedulingCollaborators bundles the store methods for the exam scheduling
// workflow. The course the reservation will be recorded for is bound here
// since the workflow reserves rooms without knowing about persistence keys.
func (s *Store) SchedulingCollaborators(course domain.CourseCode) scheduleexam.Collaborators {
	return scheduleexam.Collaborators{
		CheckCourseExists:  s.CourseExists,
		GetCourseEndDate:   s.CourseEndDate,
		FindAvailableRooms: s.FindAvailableRooms,
		ReserveRoom: func(ctx context.Context, room domain.RoomNumber, date domain.ExamDate, duration domain.Duration) (bool, error) {
			return s.ReserveRoom(ctx, course, room, date, duration)
		},
	}
}

// RegistrationCollaborators bundles the store methods for the student
// registration workflow.
func (s *Store) RegistrationCollaborators() registerstudent.Collaborators {
	return registerstudent.Collaborators{
		CheckStudentExists:     s.StudentExists,
		CheckExamExists:        s.ExamExists,
		GetStudentExamsOnDate:  s.StudentExamsOnDate,
		GetExamRoom:            s.ExamRoom,
		CheckAlreadyRegistered: s.AlreadyRegistered,
		PersistRegistration:    s.PersistRegistration,
	}
}

// GradingCollaborators bundles the store methods for the grade publication
// workflow.
func (s *Store) GradingCollaborators() publishgrades.Collaborators {
	return publishgrades.Collaborators{
		CheckExamExists: func(ctx context.Context, course domain.CourseCode, date domain.ExamDate) (bool, error) {
			exists, _, err := s.ExamExists(ctx, course, date)
			return exists, err
		},
		CheckStudentRegistered: s.AlreadyRegistered,
		PersistGrades:          s.PersistGrades,
	}
}

// ContestationCollaborators bundles the store methods for the contestation
// workflow.
func (s *Store) ContestationCollaborators() filecontestation.Collaborators {
	return filecontestation.Collaborators{
		CheckStudentRegistered: s.AlreadyRegistered,
		GetGradesPublishedAt:   s.GradesPublishedAt,
		PersistContestation:    s.PersistContestation,
	}
}
