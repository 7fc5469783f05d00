package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/rafabene/blogfeed-backend/internal/infrastructure/config"
	"github.com/rafabene/blogfeed-backend/internal/infrastructure/logging"
	"github.com/rafabene/blogfeed-backend/internal/infrastructure/persistence/postgres"
)

// Provisionamento de schema fora de banda: roda antes do servidor subir.
// O servidor da API nunca altera o schema.

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Schema provisioning for the blogfeed database",
	}

	rootCmd.AddCommand(
		upCmd(),
		statusCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func connect() (*gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	return postgres.NewDatabaseConnection(&cfg.Database, logger)
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update the users and posts tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			defer postgres.CloseDatabaseConnection(db) //nolint:errcheck

			if err := db.AutoMigrate(&postgres.UserModel{}, &postgres.PostModel{}); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Println("schema up to date")
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which tables exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect()
			if err != nil {
				return err
			}
			defer postgres.CloseDatabaseConnection(db) //nolint:errcheck

			migrator := db.Migrator()
			tables := map[string]interface{}{
				postgres.UserModel{}.TableName(): &postgres.UserModel{},
				postgres.PostModel{}.TableName(): &postgres.PostModel{},
			}
			for name, model := range tables {
				fmt.Printf("%-10s exists=%v\n", name, migrator.HasTable(model))
			}
			return nil
		},
	}
}
