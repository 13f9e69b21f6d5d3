package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"learnroute/internal/config"
	"learnroute/internal/repository"
	"learnroute/internal/service"
)

var seedMigrate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample resource catalog into an empty database",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", true, "run schema migration before seeding")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
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

	if seedMigrate {
		if err := repository.AutoMigrate(db.WithContext(cmd.Context())); err != nil {
			return err
		}
	}

	inserted, err := service.NewResourceService(db, repository.NewGormResourceRepository()).SeedCatalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if inserted == 0 {
		logger.Info("Resource catalog already populated, nothing to seed")
		return nil
	}
	logger.Info("Resource catalog seeded", slog.Int("count", inserted))
	return nil
}
