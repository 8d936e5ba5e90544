package main

import (
	"fmt"

	"sample-app/internal/config"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(*cobra.Command, []string) error {
				return withDatabaseURL(runMigrationsFn)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			RunE: func(*cobra.Command, []string) error {
				return withDatabaseURL(rollbackAllFn)
			},
		},
	)
	return cmd
}

func withDatabaseURL(fn func(string) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.StoreBackend != config.BackendPostgres {
		return fmt.Errorf("migrate 只支援 postgres，目前 STORE_BACKEND=%s", cfg.StoreBackend)
	}
	return fn(cfg.DatabaseURL)
}
