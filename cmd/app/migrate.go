package main

import (
	"ProjectBlog/database/migration"
	"ProjectBlog/internal/config"

	"github.com/spf13/cobra"
)

func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, (*migration.Migrator).Up)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back every migration, dropping all tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, (*migration.Migrator).Down)
		},
	})

	return cmd
}

func runMigrate(cmd *cobra.Command, apply func(*migration.Migrator) error) error {
	db, err := config.OpenDatabase(config.LoadEnv())
	if err != nil {
		return err
	}
	defer db.Close()

	m, err := migration.New(db)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := apply(m); err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	cmd.Printf("schema version %d (dirty=%t)\n", version, dirty)

	return nil
}
