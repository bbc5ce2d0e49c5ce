package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/pssc-labs/exam-session-go/domain"
)

// CourseExists reports whether the course is part of the catalog.
func (s *Store) CourseExists(ctx context.Context, course domain.CourseCode) (bool, error) {
	query, _, err := s.dialect().
		From(s.tables.Courses).
		Select(goqu.COUNT("*")).
		Where(goqu.C("code").Eq(course.String())).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build course exists query: %w", err)
	}

	count, err := s.queryInt64(ctx, query)
	if err != nil {
		return false, fmt.Errorf("query course exists: %w", err)
	}

	return count > 0, nil
}

// CourseEndDate returns the date the course's teaching period ends.
func (s *Store) CourseEndDate(ctx context.Context, course domain.CourseCode) (time.Time, error) {
	query, _, err := s.dialect().
		From(s.tables.Courses).
		Select("end_date").
		Where(goqu.C("code").Eq(course.String())).
		ToSQL()
	if err != nil {
		return time.Time{}, fmt.Errorf("build course end date query: %w", err)
	}

	endDate, found, err := s.queryTime(ctx, query)
	if err != nil {
		return time.Time{}, fmt.Errorf("query course end date: %w", err)
	}
	if !found {
		return time.Time{}, fmt.Errorf("course '%s' not found", course)
	}

	return endDate, nil
}

// FindAvailableRooms returns the rooms with sufficient capacity that have no
// reservation on the date, smallest adequate room first.
func (s *Store) FindAvailableRooms(
	ctx context.Context,
	date domain.ExamDate,
	_ domain.Duration,
	capacity domain.Capacity,
) ([]domain.RoomNumber, error) {
	reserved := s.dialect().
		From(s.tables.Reservations).
		Select("room_number").
		Where(goqu.C("exam_date").Eq(date.String()))

	query, _, err := s.dialect().
		From(s.tables.Rooms).
		Select("number").
		Where(
			goqu.C("capacity").Gte(capacity.Value()),
			goqu.C("number").NotIn(reserved),
		).
		Order(goqu.C("capacity").Asc(), goqu.C("number").Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build available rooms query: %w", err)
	}

	s.logDebug(logMsgSQLExecuted, logAttrQuery, query)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query available rooms: %w", err)
	}
	defer s.closeRows(rows)

	var rooms []domain.RoomNumber

	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("scan available room: %w", err)
		}

		// Rows that fail the format rules are skipped rather than failing
		// the whole lookup.
		room, err := domain.ParseRoomNumber(number)
		if err != nil {
			s.logWarn("skipping room with invalid number", "number", number)
			continue
		}

		rooms = append(rooms, room)
	}

	return rooms, nil
}

// ReserveRoom records a reservation for the room on the date. It returns
// false when the room was reserved by another process in the meantime.
func (s *Store) ReserveRoom(
	ctx context.Context,
	course domain.CourseCode,
	room domain.RoomNumber,
	date domain.ExamDate,
	duration domain.Duration,
) (bool, error) {
	query, _, err := s.dialect().
		Insert(s.tables.Reservations).
		Rows(goqu.Record{
			"room_number":      room.String(),
			"exam_date":        date.String(),
			"duration_minutes": duration.Minutes(),
			"course_code":      course.String(),
		}).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build reserve room insert: %w", err)
	}

	affected, err := s.exec(ctx, query)
	if err != nil {
		return false, fmt.Errorf("reserve room: %w", err)
	}

	return affected > 0, nil
}
