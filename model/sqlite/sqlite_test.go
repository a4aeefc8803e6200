package sqlite_test

import (
	"database/sql"
	"os"
	"testing"

	"github.com/leosakharoff/tweetapi/model"
	"github.com/leosakharoff/tweetapi/model/sqlite"
)

// openTestDB opens a fresh temp database with the schema applied.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "tweetapi-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	db, err := sqlite.Open(tmpFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlite.EnsureSchema(db); err != nil {
		t.Fatal(err)
	}

	return db
}

// resetTables empties every table, children first.
func resetTables(t *testing.T, db *sql.DB) {
	t.Helper()

	for _, table := range []string{
		model.LikeTableName,
		model.FollowerTableName,
		model.MediaTableName,
		model.TweetTableName,
		model.UserTableName,
	} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatal(err)
		}
	}
}

func createTestUser(t *testing.T, db *sql.DB, name string) *model.User {
	t.Helper()

	u := &model.User{Name: name, APIKey: name + "-key"}
	id, err := sqlite.NewUserService(db).Insert(u)
	if err != nil {
		t.Fatal(err)
	}
	u.ID = id

	return u
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var cnt int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&cnt); err != nil {
		t.Fatal(err)
	}

	return cnt
}
