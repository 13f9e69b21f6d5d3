package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"learnroute/internal/config"
	"learnroute/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	logger, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := repository.AutoMigrate(db.WithContext(cmd.Context())); err != nil {
		return err
	}
	logger.Info("Schema migrated", slog.String("app", config.Cfg.App.Name))
	return nil
}
