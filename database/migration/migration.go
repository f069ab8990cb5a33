package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations/postgres/*.sql migrations/sqlite3/*.sql
var migrationsFS embed.FS

var ErrUnsupportedDriver = errors.New("unsupported database driver")

// Migrator applies the embedded schema for the dialect of the connection it
// was built from. Close releases what the Migrator holds and leaves the
// *sqlx.DB open.
type Migrator struct {
	m      *migrate.Migrate
	source source.Driver
	conn   *sql.Conn
}

func New(db *sqlx.DB) (*Migrator, error) {
	dialect := db.DriverName()

	var (
		driver database.Driver
		conn   *sql.Conn
		err    error
	)
	switch dialect {
	case "postgres":
		conn, err = db.Conn(context.Background())
		if err != nil {
			return nil, fmt.Errorf("migration conn: %w", err)
		}
		driver, err = migratepg.WithConnection(context.Background(), conn, &migratepg.Config{})
	case "sqlite3":
		driver, err = migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, dialect)
	}
	if err != nil {
		closeConn(conn)
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+dialect)
	if err != nil {
		closeConn(conn)
		return nil, fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect, driver)
	if err != nil {
		_ = src.Close()
		closeConn(conn)
		return nil, fmt.Errorf("migration init: %w", err)
	}

	return &Migrator{m: m, source: src, conn: conn}, nil
}

func closeConn(conn *sql.Conn) {
	if conn != nil {
		_ = conn.Close()
	}
}

// Close releases the migration source and returns the dedicated postgres
// connection to the pool. It must not call migrate.Migrate.Close, which closes
// the shared *sql.DB.
func (m *Migrator) Close() error {
	err := m.source.Close()
	if m.conn != nil {
		err = errors.Join(err, m.conn.Close())
	}
	return err
}

func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls every migration back, dropping all tables.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version reports 0 when nothing has been applied yet.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migrate version: %w", err)
	}
	return version, dirty, nil
}

// Up is a shortcut for building a Migrator, applying all pending migrations
// and closing it.
func Up(db *sqlx.DB) (err error) {
	m, err := New(db)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, m.Close())
	}()

	return m.Up()
}
