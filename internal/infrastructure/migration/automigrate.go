package migration

import (
	"secdesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model the schema bootstrap
// creates. One table per entity kind; no cross-table constraints.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.IncidentModel{},
		&models.TicketModel{},
		&models.DatasetModel{},
	}
}
