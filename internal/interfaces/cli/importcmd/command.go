// Package importcmd implements the `secdesk import` command, which seeds the
// database from CSV files.
package importcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"secdesk/internal/application/importer"
	"secdesk/internal/infrastructure/auth"
	"secdesk/internal/infrastructure/config"
	"secdesk/internal/infrastructure/database"
	"secdesk/internal/infrastructure/migration"
	"secdesk/internal/infrastructure/repository"
	"secdesk/internal/shared/logger"
)

var (
	configPath string
	dataDir    string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import seed data from CSV files",
		Long: `Import users, incidents, tickets, and datasets from CSV files.

Reads users.csv, incidents.csv, tickets.csv, and datasets.csv from the data
directory. Missing files are skipped. Rows that already exist or fail
validation are reported and do not stop the run.`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&dataDir, "data-dir", "d", "", "Directory containing CSV files (overrides config)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
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

	if err := migration.EnsureSchema(database.Get()); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	dir := cfg.Import.DataDir
	if dataDir != "" {
		dir = dataDir
	}

	db := database.Get()
	im := importer.NewImporter(
		repository.NewUserRepository(db, log),
		repository.NewIncidentRepository(db, log),
		repository.NewTicketRepository(db, log),
		repository.NewDatasetRepository(db, log),
		auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost),
		log,
	)

	result := im.ImportAll(context.Background(), dir)

	for _, d := range result.Diagnostics {
		if d.Row > 0 {
			log.Warnw("row skipped", "file", d.File, "row", d.Row, "reason", d.Reason)
		} else {
			log.Warnw("file skipped", "file", d.File, "reason", d.Reason)
		}
	}
	log.Infow("import finished",
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"data_dir", dir)

	return nil
}
