package cli

import (
	"log"

	"autocare_api/internal/adapter/persistence/postgres"
	"autocare_api/internal/infrastructure/config"
	"autocare_api/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the DynamoDB tables or apply the Postgres schema",
		Long: `Prepares the storage selected by STORAGE_DRIVER.

dynamodb: creates the jobs, orders and payments tables with their indexes (existing
tables are left untouched). postgres: applies the embedded schema. memory: nothing to do.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runMigrate(cmd, cfg)
		},
	}
}

func runMigrate(cmd *cobra.Command, cfg config.Config) error {
	ctx := cmd.Context()
	switch cfg.StorageDriver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return err
		}
		if err := database.CreateTables(ctx, ddb, cfg.AWS); err != nil {
			return err
		}
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return err
		}
	default:
		log.Printf("[cli][migrate] nothing to migrate storage=%s", cfg.StorageDriver)
		return nil
	}
	log.Printf("[cli][migrate] done storage=%s", cfg.StorageDriver)
	return nil
}
