package postgres

import (
	"context"
	"time"

	"github.com/pssc-labs/exam-session-go/postgres/internal/adapters"
)

const (
	logMsgSQLExecuted     = "executed sql"
	logMsgCloseRowsFailed = "failed to close database rows"
	logAttrQuery          = "query"
	logAttrError          = "error"
)

func (s *Store) closeRows(rows adapters.DBRows) {
	if err := rows.Close(); err != nil {
		s.logWarn(logMsgCloseRowsFailed, logAttrError, err.Error())
	}
}

// queryInt64 runs a single-column query and scans the first row into an int64.
// A result set without rows yields zero.
func (s *Store) queryInt64(ctx context.Context, query string) (int64, error) {
	s.logDebug(logMsgSQLExecuted, logAttrQuery, query)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return 0, err
	}
	defer s.closeRows(rows)

	var value int64
	if rows.Next() {
		if err := rows.Scan(&value); err != nil {
			return 0, err
		}
	}

	return value, nil
}

// queryString runs a single-column query and scans the first row into a
// string, reporting whether a row was found.
func (s *Store) queryString(ctx context.Context, query string) (string, bool, error) {
	s.logDebug(logMsgSQLExecuted, logAttrQuery, query)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return "", false, err
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return "", false, nil
	}

	var value string
	if err := rows.Scan(&value); err != nil {
		return "", false, err
	}

	return value, true, nil
}

// queryTime runs a single-column query and scans the first row into a
// time.Time, reporting whether a row was found.
func (s *Store) queryTime(ctx context.Context, query string) (time.Time, bool, error) {
	s.logDebug(logMsgSQLExecuted, logAttrQuery, query)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return time.Time{}, false, err
	}
	defer s.closeRows(rows)

	if !rows.Next() {
		return time.Time{}, false, nil
	}

	var value time.Time
	if err := rows.Scan(&value); err != nil {
		return time.Time{}, false, err
	}

	return value, true, nil
}

// exec runs a statement and returns the number of affected rows.
func (s *Store) exec(ctx context.Context, query string) (int64, error) {
	s.logDebug(logMsgSQLExecuted, logAttrQuery, query)

	result, err := s.db.Exec(ctx, query)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
