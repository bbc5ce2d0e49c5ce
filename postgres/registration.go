package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/pssc-labs/exam-session-go/domain"
)

// ErrDuplicateRegistration is returned when a registration for the same
// student, course, and date already exists.
var ErrDuplicateRegistration = errors.New("registration already exists")

// StudentExists reports whether the student is part of the roster.
func (s *Store) StudentExists(ctx context.Context, student domain.StudentRegistrationNumber) (bool, error) {
	query, _, err := s.dialect().
		From(s.tables.Students).
		Select(goqu.COUNT("*")).
		Where(goqu.C("registration_number").Eq(student.String())).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build student exists query: %w", err)
	}

	count, err := s.queryInt64(ctx, query)
	if err != nil {
		return false, fmt.Errorf("query student exists: %w", err)
	}

	return count > 0, nil
}

// ExamExists reports whether an exam is scheduled for the course on the
// date, returning the reserved room when it is.
func (s *Store) ExamExists(
	ctx context.Context,
	course domain.CourseCode,
	date domain.ExamDate,
) (bool, domain.RoomNumber, error) {
	room, err := s.ExamRoom(ctx, course, date)
	if err != nil {
		return false, domain.RoomNumber{}, err
	}

	return !room.IsZero(), room, nil
}

// ExamRoom resolves the reserved room of the scheduled exam. A zero room
// means no reservation exists for the course and date.
func (s *Store) ExamRoom(
	ctx context.Context,
	course domain.CourseCode,
	date domain.ExamDate,
) (domain.RoomNumber, error) {
	query, _, err := s.dialect().
		From(s.tables.Reservations).
		Select("room_number").
		Where(
			goqu.C("course_code").Eq(course.String()),
			goqu.C("exam_date").Eq(date.String()),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return domain.RoomNumber{}, fmt.Errorf("build exam room query: %w", err)
	}

	number, found, err := s.queryString(ctx, query)
	if err != nil {
		return domain.RoomNumber{}, fmt.Errorf("query exam room: %w", err)
	}
	if !found {
		return domain.RoomNumber{}, nil
	}

	room, err := domain.ParseRoomNumber(number)
	if err != nil {
		return domain.RoomNumber{}, fmt.Errorf("stored room number is malformed: %w", err)
	}

	return room, nil
}

// StudentExamsOnDate counts the exams the student is registered for on the
// given calendar day.
func (s *Store) StudentExamsOnDate(
	ctx context.Context,
	student domain.StudentRegistrationNumber,
	date domain.ExamDate,
) (int, error) {
	query, _, err := s.dialect().
		From(s.tables.Registrations).
		Select(goqu.COUNT("*")).
		Where(
			goqu.C("student_reg_number").Eq(student.String()),
			goqu.C("exam_date").Eq(date.String()),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build exams on date query: %w", err)
	}

	count, err := s.queryInt64(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("query exams on date: %w", err)
	}

	return int(count), nil
}

// AlreadyRegistered reports whether the student is registered for this exact
// course and date.
func (s *Store) AlreadyRegistered(
	ctx context.Context,
	student domain.StudentRegistrationNumber,
	course domain.CourseCode,
	date domain.ExamDate,
) (bool, error) {
	query, _, err := s.dialect().
		From(s.tables.Registrations).
		Select(goqu.COUNT("*")).
		Where(
			goqu.C("student_reg_number").Eq(student.String()),
			goqu.C("course_code").Eq(course.String()),
			goqu.C("exam_date").Eq(date.String()),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build already registered query: %w", err)
	}

	count, err := s.queryInt64(ctx, query)
	if err != nil {
		return false, fmt.Errorf("query already registered: %w", err)
	}

	return count > 0, nil
}

// PersistRegistration stores the registration. The unique index on student,
// course, and date catches races between the duplicate check and the insert.
func (s *Store) PersistRegistration(
	ctx context.Context,
	student domain.StudentRegistrationNumber,
	course domain.CourseCode,
	date domain.ExamDate,
	room domain.RoomNumber,
) error {
	query, _, err := s.dialect().
		Insert(s.tables.Registrations).
		Rows(goqu.Record{
			"student_reg_number": student.String(),
			"course_code":        course.String(),
			"exam_date":          date.String(),
			"room_number":        room.String(),
			"registered_at":      s.clock().UTC(),
		}).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build registration insert: %w", err)
	}

	affected, err := s.exec(ctx, query)
	if err != nil {
		return fmt.Errorf("persist registration: %w", err)
	}
	if affected == 0 {
		return ErrDuplicateRegistration
	}

	return nil
}
