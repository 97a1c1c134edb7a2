package main

import (
	"log/slog"

	"faq-assistant/config"
	"faq-assistant/repositories"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := config.InitDB(cfg.Database)
			if err != nil {
				return err
			}
			if err := repositories.AutoMigrate(db); err != nil {
				return err
			}
			slog.Info("database schema is up to date")
			return nil
		},
	}
}
