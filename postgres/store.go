package postgres

import (
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/pssc-labs/exam-session-go/domain"
	"github.com/pssc-labs/exam-session-go/postgres/internal/adapters"
)

const dialectPostgres = "postgres"

var (
	// ErrNilDatabaseConnection is returned when a nil connection is passed to a constructor.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when a table name override is empty.
	ErrEmptyTableName = errors.New("table name must not be empty")
)

// Logger interface for SQL query logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// TableNames holds the names of all tables the Store operates on.
type TableNames struct {
	Rooms          string
	Courses        string
	Students       string
	Reservations   string
	Registrations  string
	Grades         string
	Contestations  string
	WorkflowEvents string
}

// DefaultTableNames returns the table names used unless overridden.
func DefaultTableNames() TableNames {
	return TableNames{
		Rooms:          "rooms",
		Courses:        "courses",
		Students:       "students",
		Reservations:   "room_reservations",
		Registrations:  "student_registrations",
		Grades:         "exam_grades",
		Contestations:  "contestations",
		WorkflowEvents: "workflow_events",
	}
}

func (t TableNames) validate() error {
	for _, name := range []string{
		t.Rooms, t.Courses, t.Students, t.Reservations,
		t.Registrations, t.Grades, t.Contestations, t.WorkflowEvents,
	} {
		if name == "" {
			return ErrEmptyTableName
		}
	}

	return nil
}

// Store implements the workflow collaborator contracts over PostgreSQL.
type Store struct {
	db     adapters.DBAdapter
	tables TableNames
	logger Logger
	clock  domain.Clock
}

// Option defines a functional option for configuring a Store.
type Option func(*Store) error

// WithTableNames overrides the default table names.
func WithTableNames(tables TableNames) Option {
	return func(s *Store) error {
		if err := tables.validate(); err != nil {
			return err
		}

		s.tables = tables

		return nil
	}
}

// WithLogger sets the logger for the Store.
//
// Debug level: SQL statements (development use)
// Warn level: non-critical issues like failed row closes
// Error level: failures that cause operation errors.
func WithLogger(logger Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithClock replaces the system clock used for persistence timestamps.
func WithClock(clock domain.Clock) Option {
	return func(s *Store) error {
		s.clock = clock
		return nil
	}
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options...)
}

// NewStoreFromPGXPoolAndReplica creates a new Store that runs reads against the
// replica pool and writes against the primary pool.
func NewStoreFromPGXPoolAndReplica(primary *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (*Store, error) {
	if primary == nil || replica == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapterWithReplica(primary, replica), options...)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options...)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (*Store, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options...)
}

func newStore(db adapters.DBAdapter, options ...Option) (*Store, error) {
	s := &Store{
		db:     db,
		tables: DefaultTableNames(),
		clock:  domain.SystemClock,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) dialect() goqu.DialectWrapper {
	return goqu.Dialect(dialectPostgres)
}

func (s *Store) logDebug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Store) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
