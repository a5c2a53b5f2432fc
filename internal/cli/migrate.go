package cli

import (
	"errors"
	"fmt"

	"github.com/Lixing-Zhang/restaurant-backend/internal/config"
	"github.com/Lixing-Zhang/restaurant-backend/internal/database"
	"github.com/Lixing-Zhang/restaurant-backend/pkg/logger"
	"github.com/spf13/cobra"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.Database.Driver != config.StorePostgres {
				return errors.New("migrate requires the postgres store (set DB_URI)")
			}

			log := logger.New(cfg.LogLevel)

			db, err := database.New(cmd.Context(), cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := db.RunMigrations(cmd.Context())
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pending migrations.")
				return nil
			}
			for _, name := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), "Migration", name, "applied.")
			}
			return nil
		},
	}
}
