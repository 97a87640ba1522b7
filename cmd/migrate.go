package main

import (
	"errors"

	"fitcircle/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Database.Name == "" {
			return errors.New("DB_NAME is required")
		}
		db, err := database.Connect(cmd.Context(), cfg.Database, logger)
		if err != nil {
			return err
		}
		return database.Migrate(db, logger)
	},
}
