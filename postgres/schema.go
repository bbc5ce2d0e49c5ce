package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
)

// EnsureSchema creates all tables and indexes if they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	t := s.tables

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			number TEXT PRIMARY KEY,
			capacity INTEGER NOT NULL
		)`, t.Rooms),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			code TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			end_date DATE NOT NULL
		)`, t.Courses),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			registration_number TEXT PRIMARY KEY,
			full_name TEXT NOT NULL
		)`, t.Students),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			room_number TEXT NOT NULL,
			exam_date DATE NOT NULL,
			duration_minutes INTEGER NOT NULL,
			course_code TEXT NOT NULL,
			UNIQUE (room_number, exam_date)
		)`, t.Reservations),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			student_reg_number TEXT NOT NULL,
			course_code TEXT NOT NULL,
			exam_date DATE NOT NULL,
			room_number TEXT NOT NULL,
			registered_at TIMESTAMPTZ NOT NULL,
			UNIQUE (student_reg_number, course_code, exam_date)
		)`, t.Registrations),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			student_reg_number TEXT NOT NULL,
			course_code TEXT NOT NULL,
			exam_date DATE NOT NULL,
			grade NUMERIC(4,2) NOT NULL,
			published_at TIMESTAMPTZ NOT NULL,
			UNIQUE (student_reg_number, course_code, exam_date)
		)`, t.Grades),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			student_reg_number TEXT NOT NULL,
			course_code TEXT NOT NULL,
			exam_date DATE NOT NULL,
			reason TEXT NOT NULL,
			filed_at TIMESTAMPTZ NOT NULL
		)`, t.Contestations),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			event_type TEXT NOT NULL,
			is_failure BOOLEAN NOT NULL,
			occurred_at TIMESTAMPTZ NOT NULL,
			payload JSONB NOT NULL
		)`, t.WorkflowEvents),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_course_date ON %s (course_code, exam_date)`,
			t.Reservations, t.Reservations),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_student_date ON %s (student_reg_number, exam_date)`,
			t.Registrations, t.Registrations),
	}

	for _, statement := range statements {
		if _, err := s.exec(ctx, statement); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}

// Seed inserts the initial rooms, the course catalog, and the student roster.
// Existing rows are left untouched.
func (s *Store) Seed(ctx context.Context) error {
	now := s.clock()

	rooms := []goqu.Record{
		{"number": "A101", "capacity": 30},
		{"number": "A201", "capacity": 25},
		{"number": "B105", "capacity": 20},
		{"number": "B205", "capacity": 35},
		{"number": "C301", "capacity": 40},
		{"number": "C401", "capacity": 50},
	}

	// Summer-session courses end in late May, the winter-session course in
	// December of the previous year.
	courses := []goqu.Record{
		{"code": "PSSC", "name": "Complex Software Systems Design", "end_date": dateString(now.Year(), time.May, 29)},
		{"code": "MATH1", "name": "Advanced Mathematics", "end_date": dateString(now.Year(), time.May, 22)},
		{"code": "BD", "name": "Databases", "end_date": dateString(now.Year(), time.May, 15)},
		{"code": "RC", "name": "Computer Networks", "end_date": dateString(now.Year(), time.May, 8)},
		{"code": "SO", "name": "Operating Systems", "end_date": dateString(now.Year()-1, time.December, 19)},
	}

	students := []goqu.Record{
		{"registration_number": "LM12345", "full_name": "Ana Popescu"},
		{"registration_number": "LM12346", "full_name": "Mihai Ionescu"},
		{"registration_number": "LM12347", "full_name": "Elena Dumitrescu"},
		{"registration_number": "LM12348", "full_name": "Andrei Georgescu"},
		{"registration_number": "LM12349", "full_name": "Ioana Stanescu"},
		{"registration_number": "LM12350", "full_name": "Radu Marinescu"},
	}

	inserts := []struct {
		table string
		rows  []goqu.Record
	}{
		{s.tables.Rooms, rooms},
		{s.tables.Courses, courses},
		{s.tables.Students, students},
	}

	for _, insert := range inserts {
		query, _, err := s.dialect().
			Insert(insert.table).
			Rows(rowsAsAny(insert.rows)...).
			OnConflict(goqu.DoNothing()).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build seed insert for %s: %w", insert.table, err)
		}

		if _, err := s.exec(ctx, query); err != nil {
			return fmt.Errorf("seed %s: %w", insert.table, err)
		}
	}

	return nil
}

func dateString(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func rowsAsAny(records []goqu.Record) []any {
	rows := make([]any, len(records))
	for i, r := range records {
		rows[i] = r
	}

	return rows
}
