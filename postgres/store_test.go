package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // driver import
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pssc-labs/exam-session-go/domain"
)

func openLazySQLDB(t *testing.T) *sql.DB {
	t.Helper()

	// sql.Open does not connect, so no running database is needed here.
	db, err := sql.Open("postgres", "postgres://localhost:5432/lazy?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// pgxpool.New does not connect either, it only parses the config.
func openLazyPGXPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), "postgres://localhost:5432/lazy?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func Test_NewStoreFromPGXPool_NilConnection_ReturnsError(t *testing.T) {
	store, err := NewStoreFromPGXPool(nil)

	assert.ErrorIs(t, err, ErrNilDatabaseConnection)
	assert.Nil(t, store)
}

func Test_NewStoreFromPGXPoolAndReplica_NilConnection_ReturnsError(t *testing.T) {
	primary := openLazyPGXPool(t)

	store, err := NewStoreFromPGXPoolAndReplica(nil, openLazyPGXPool(t))
	assert.ErrorIs(t, err, ErrNilDatabaseConnection)
	assert.Nil(t, store)

	store, err = NewStoreFromPGXPoolAndReplica(primary, nil)
	assert.ErrorIs(t, err, ErrNilDatabaseConnection)
	assert.Nil(t, store)
}

func Test_NewStoreFromPGXPoolAndReplica_Defaults(t *testing.T) {
	store, err := NewStoreFromPGXPoolAndReplica(openLazyPGXPool(t), openLazyPGXPool(t))

	require.NoError(t, err)
	assert.Equal(t, DefaultTableNames(), store.tables)
	assert.NotNil(t, store.db)
}

func Test_NewStoreFromSQLDB_NilConnection_ReturnsError(t *testing.T) {
	store, err := NewStoreFromSQLDB(nil)

	assert.ErrorIs(t, err, ErrNilDatabaseConnection)
	assert.Nil(t, store)
}

func Test_NewStoreFromSQLX_NilConnection_ReturnsError(t *testing.T) {
	store, err := NewStoreFromSQLX(nil)

	assert.ErrorIs(t, err, ErrNilDatabaseConnection)
	assert.Nil(t, store)
}

func Test_NewStoreFromSQLDB_Defaults(t *testing.T) {
	store, err := NewStoreFromSQLDB(openLazySQLDB(t))

	require.NoError(t, err)
	assert.Equal(t, DefaultTableNames(), store.tables)
	assert.Nil(t, store.logger)
	assert.NotNil(t, store.clock)
}

func Test_NewStoreFromSQLX_WithOptions(t *testing.T) {
	db := sqlx.NewDb(openLazySQLDB(t), "postgres")
	fixed := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	tables := DefaultTableNames()
	tables.WorkflowEvents = "journal"

	store, err := NewStoreFromSQLX(db,
		WithTableNames(tables),
		WithClock(domain.FixedClock(fixed)),
	)

	require.NoError(t, err)
	assert.Equal(t, "journal", store.tables.WorkflowEvents)
	assert.Equal(t, fixed, store.clock())
}

func Test_NewStore_EmptyTableName_ReturnsError(t *testing.T) {
	tables := DefaultTableNames()
	tables.Grades = ""

	store, err := NewStoreFromSQLDB(openLazySQLDB(t), WithTableNames(tables))

	assert.ErrorIs(t, err, ErrEmptyTableName)
	assert.Nil(t, store)
}

func Test_TableNames_Validate(t *testing.T) {
	assert.NoError(t, DefaultTableNames().validate())

	empty := TableNames{}
	assert.ErrorIs(t, empty.validate(), ErrEmptyTableName)
}
