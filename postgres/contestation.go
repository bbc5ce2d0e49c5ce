package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/pssc-labs/exam-session-go/domain"
)

// PersistContestation stores the contestation with the filing time.
func (s *Store) PersistContestation(
	ctx context.Context,
	student domain.StudentRegistrationNumber,
	course domain.CourseCode,
	date domain.ExamDate,
	reason string,
) error {
	query, _, err := s.dialect().
		Insert(s.tables.Contestations).
		Rows(goqu.Record{
			"student_reg_number": student.String(),
			"course_code":        course.String(),
			"exam_date":          date.String(),
			"reason":             reason,
			"filed_at":           s.clock().UTC(),
		}).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build contestation insert: %w", err)
	}

	if _, err := s.exec(ctx, query); err != nil {
		return fmt.Errorf("persist contestation: %w", err)
	}

	return nil
}
