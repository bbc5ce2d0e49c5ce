package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/pssc-labs/exam-session-go/domain"
	"github.com/pssc-labs/exam-session-go/workflows/publishgrades"
)

// PersistGrades upserts the full grade sheet in one statement. Re-publishing
// refreshes the grade and the publication time of existing rows.
func (s *Store) PersistGrades(
	ctx context.Context,
	course domain.CourseCode,
	date domain.ExamDate,
	grades []publishgrades.StudentGrade,
) error {
	if len(grades) == 0 {
		return nil
	}

	publishedAt := s.clock().UTC()

	rows := make([]any, len(grades))
	for i, grade := range grades {
		rows[i] = goqu.Record{
			"student_reg_number": grade.Student.String(),
			"course_code":        course.String(),
			"exam_date":          date.String(),
			"grade":              grade.Grade.String(),
			"published_at":       publishedAt,
		}
	}

	query, _, err := s.dialect().
		Insert(s.tables.Grades).
		Rows(rows...).
		OnConflict(goqu.DoUpdate(
			"student_reg_number, course_code, exam_date",
			goqu.Record{
				"grade":        goqu.L("EXCLUDED.grade"),
				"published_at": goqu.L("EXCLUDED.published_at"),
			},
		)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build grades upsert: %w", err)
	}

	if _, err := s.exec(ctx, query); err != nil {
		return fmt.Errorf("persist grades: %w", err)
	}

	return nil
}

// GradesPublishedAt returns when the grades for the exam were last published.
// The bool is false when no grades have been published yet. A partial
// re-publication leaves rows with mixed publication times, so the latest one
// counts (it is the moment the sheet last changed).
func (s *Store) GradesPublishedAt(
	ctx context.Context,
	course domain.CourseCode,
	date domain.ExamDate,
) (time.Time, bool, error) {
	query, _, err := s.dialect().
		From(s.tables.Grades).
		Select("published_at").
		Where(
			goqu.C("course_code").Eq(course.String()),
			goqu.C("exam_date").Eq(date.String()),
		).
		Order(goqu.C("published_at").Desc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("build grades published query: %w", err)
	}

	publishedAt, found, err := s.queryTime(ctx, query)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("query grades published: %w", err)
	}

	return publishedAt, found, nil
}
