package sqlite

import (
	"database/sql"
	_ "embed"

	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schema string

// Open opens a sqlite connection with foreign keys enforced.
func Open(path string) (*sql.DB, error) {
	return sql.Open("sqlite3", path+"?_foreign_keys=on")
}

// EnsureSchema creates any missing tables.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return errors.Wrap(err, "ensure schema")
}

// runner is the execution handle a table service works against.
// Satisfied by *sql.DB and *sql.Tx, so the same service can run inside or
// outside a transaction.
type runner interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type beginner interface {
	Begin() (*sql.Tx, error)
}

// isPrimaryKeyViolation reports whether err is a composite primary key
// constraint violation. The key constraints on likes and followers are the
// backstop for the duplicate pre-checks done in the service layer.
func isPrimaryKeyViolation(err error) bool {
	serr, ok := err.(sqlite3.Error)
	return ok && serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
