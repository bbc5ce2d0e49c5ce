// Package postgres implements every collaborator contract of the exam
// session workflows on top of PostgreSQL.
//
// The Store works with pgx.Pool, sql.DB, or sqlx.DB connections through an
// internal adapter layer and builds all SQL with goqu. Besides the
// collaborator queries it provides schema management (EnsureSchema, Seed)
// and an append-only journal of terminal workflow events.
package postgres
