// Package testutil holds helpers shared by store-backed tests.
package testutil

import (
	"io"
	"path/filepath"
	"testing"

	"ProjectBlog/database/migration"
	"ProjectBlog/database/sqlite"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// NewDB opens a migrated sqlite database in a temp dir that is removed when
// the test ends.
func NewDB(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migration.Up(db))

	return db
}

// NewLogger returns a logger that drops everything.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// CreateUser inserts a user row directly and returns its id.
func CreateUser(t testing.TB, db *sqlx.DB, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowx(
		db.Rebind(`INSERT INTO users (first_name, last_name, email, password) VALUES (?, ?, ?, ?) RETURNING id`),
		"Test", "User", email, "not-a-hash",
	).Scan(&id)
	require.NoError(t, err)

	return id
}
