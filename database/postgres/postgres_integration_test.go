//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"ProjectBlog/database/migration"
	"ProjectBlog/database/postgres"
	"ProjectBlog/database/sqlerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestPostgres_MigrateAndConstraints(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("blog_test"),
		tcpostgres.WithUsername("blog"),
		tcpostgres.WithPassword("blog"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	db, err := postgres.New(postgres.Config{
		Host:     host,
		Port:     port.Port(),
		User:     "blog",
		Password: "blog",
		Name:     "blog_test",
	})
	require.NoError(t, err)
	defer db.Close()

	m, err := migration.New(db)
	require.NoError(t, err)
	require.NoError(t, m.Up())

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	insert := `INSERT INTO users (first_name, last_name, email, password, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err = db.ExecContext(ctx, insert, "Ada", "Lovelace", "ada@example.com", "hash", time.Now().UTC())
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, insert, "Ada", "Again", "ada@example.com", "hash", time.Now().UTC())
	require.Error(t, err)
	assert.True(t, sqlerr.IsUniqueViolation(err))

	require.NoError(t, m.Down())

	assert.Equal(t, 1, db.Stats().InUse)
	require.NoError(t, m.Close())
	assert.Zero(t, db.Stats().InUse)

	require.NoError(t, migration.Up(db))
	assert.Zero(t, db.Stats().InUse)
	require.NoError(t, db.PingContext(ctx))
}
