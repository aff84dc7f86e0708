// Package migrate implements the `secdesk migrate` command group.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"secdesk/internal/infrastructure/config"
	"secdesk/internal/infrastructure/database"
	"secdesk/internal/infrastructure/migration"
	"secdesk/internal/shared/logger"
)

var (
	configPath  string
	scriptsPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().StringVar(&scriptsPath, "scripts", "internal/infrastructure/migration/scripts", "Path to SQL migration scripts")

	cmd.AddCommand(newUpCommand())
	cmd.AddCommand(newStatusCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := logger.Init(&cfg.Logger); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			log := logger.NewLogger()

			if err := database.Init(&cfg.Database); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath, cfg.Database.Driver)
			if err := strategy.Migrate(database.Get()); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			version, dirty, err := strategy.Version(database.Get())
			if err != nil {
				log.Warnw("migrations applied but version lookup failed", "error", err)
				return nil
			}
			log.Infow("migrations applied", "version", version, "dirty", dirty)
			return nil
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := logger.Init(&cfg.Logger); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if err := database.Init(&cfg.Database); err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			strategy := migration.NewGolangMigrateStrategy(scriptsPath, cfg.Database.Driver)
			version, dirty, err := strategy.Version(database.Get())
			if err != nil {
				return fmt.Errorf("failed to read migration version: %w", err)
			}

			fmt.Printf("version: %d\ndirty: %v\n", version, dirty)
			return nil
		},
	}
}
