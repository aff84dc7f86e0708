package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"secdesk/internal/domain/ticket"
	"secdesk/internal/domain/user"
	infraauth "secdesk/internal/infrastructure/auth"
	"secdesk/internal/infrastructure/persistence/models"
	"secdesk/internal/infrastructure/repository"
	"secdesk/internal/shared/authorization"
	"secdesk/internal/shared/logger"
)

type testEnv struct {
	importer *Importer
	users    user.Repository
	tickets  ticket.Repository
}

func setupImporter(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.IncidentModel{},
		&models.TicketModel{},
		&models.DatasetModel{},
	))

	log := logger.NewLogger()
	users := repository.NewUserRepository(db, log)
	tickets := repository.NewTicketRepository(db, log)

	im := NewImporter(
		users,
		repository.NewIncidentRepository(db, log),
		tickets,
		repository.NewDatasetRepository(db, log),
		infraauth.NewBcryptPasswordHasher(bcrypt.MinCost),
		log,
	)
	return &testEnv{importer: im, users: users, tickets: tickets}
}

func writeFile(t *testing.T, dir, name, content string) {
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestImporter_ImportUsers(t *testing.T) {
	env := setupImporter(t)
	ctx := context.Background()

	t.Run("first row wins on duplicate username", func(t *testing.T) {
		rows := []Row{
			{"username": "al", "password": "Secret123", "role": "admin"},
			{"username": "al", "password": "Other456", "role": "user"},
		}
		res := env.importer.ImportUsers(ctx, "users.csv", rows)

		assert.Equal(t, 1, res.Inserted)
		assert.Equal(t, 0, res.Skipped)

		found, err := env.users.GetByUsername(ctx, "al")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, authorization.RoleAdmin, found.Role())
	})

	t.Run("rows with missing fields are skipped with diagnostics", func(t *testing.T) {
		rows := []Row{
			{"username": "bob", "password": "", "role": "user"},
			{"username": "", "password": "Secret123", "role": "user"},
			{"username": "carol", "password": "Secret123", "role": "analyst"},
		}
		res := env.importer.ImportUsers(ctx, "users.csv", rows)

		assert.Equal(t, 1, res.Inserted)
		assert.Equal(t, 2, res.Skipped)
		require.Len(t, res.Diagnostics, 2)
		assert.Equal(t, 1, res.Diagnostics[0].Row)
		assert.Equal(t, 2, res.Diagnostics[1].Row)
	})

	t.Run("passwords are stored hashed", func(t *testing.T) {
		found, err := env.users.GetByUsername(ctx, "carol")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.NotEqual(t, "Secret123", found.PasswordHash())
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(found.PasswordHash()), []byte("Secret123")))
	})
}

func TestImporter_ImportIncidents(t *testing.T) {
	env := setupImporter(t)
	ctx := context.Background()

	rows := []Row{
		{"incident_type": "phishing", "severity": "high", "description": "Credential form email", "reported_by": "alice"},
		{"category": "malware", "severity": "critical", "description": "Beacon traffic", "status": "investigating"},
		{"severity": "low", "description": ""},
		{"description": "No severity given"},
	}
	res := env.importer.ImportIncidents(ctx, "incidents.csv", rows)

	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, 2, res.Skipped)
}

func TestImporter_ImportTickets(t *testing.T) {
	env := setupImporter(t)
	ctx := context.Background()

	rows := []Row{
		{"subject": "VPN down", "priority": "high", "created_by": "alice"},
		{"subject": "Printer jam", "status": "closed"},
		{"subject": ""},
	}
	res := env.importer.ImportTickets(ctx, "tickets.csv", rows)

	assert.Equal(t, 2, res.Inserted)
	assert.Equal(t, 1, res.Skipped)

	tickets, err := env.tickets.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 2)

	// Missing priority defaults to medium.
	assert.Equal(t, ticket.PriorityMedium, tickets[1].Priority())

	// Imported closed tickets carry a resolution stamp.
	assert.Equal(t, ticket.StatusClosed, tickets[1].Status())
	require.NotNil(t, tickets[1].ResolvedAt())
	assert.False(t, tickets[1].ResolvedAt().Before(tickets[1].CreatedAt()))
}

func TestImporter_ImportDatasets(t *testing.T) {
	env := setupImporter(t)
	ctx := context.Background()

	rows := []Row{
		{"dataset_name": "firewall-logs", "owner": "alice"},
		{"name": "proxy-logs", "owner": ""},
	}
	res := env.importer.ImportDatasets(ctx, "datasets.csv", rows)

	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.Skipped)
}

func TestImporter_ImportAll(t *testing.T) {
	env := setupImporter(t)
	ctx := context.Background()
	dir := t.TempDir()

	writeFile(t, dir, "users.csv", "Username,Password,Role\nal,Secret123,admin\nbeth,Secret456,user\n")
	writeFile(t, dir, "incidents.csv", "Incident Type,Severity,Description,Reported By\nphishing,high,Credential form email,al\n")
	writeFile(t, dir, "tickets.csv", "subject,priority,issue\nVPN down,high,cannot connect\n")
	// datasets.csv deliberately absent

	res := env.importer.ImportAll(ctx, dir)

	assert.Equal(t, 4, res.Inserted)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, "datasets.csv", res.Diagnostics[0].File)
	assert.Equal(t, "file not found", res.Diagnostics[0].Reason)

	t.Run("re-import does not duplicate users", func(t *testing.T) {
		again := env.importer.ImportAll(ctx, dir)
		assert.Equal(t, 2, again.Inserted) // incidents and tickets have no natural key

		users, err := env.users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestReadCSV_HeaderNormalization(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "data.csv", " Incident Type ,SEVERITY,Description\nphishing,high,Credential email\nmalware,critical\n")

	rows, err := readCSVFile(filepath.Join(dir, "data.csv"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "phishing", rows[0]["incident_type"])
	assert.Equal(t, "high", rows[0]["severity"])

	// Short records leave trailing columns absent.
	assert.Equal(t, "critical", rows[1]["severity"])
	assert.Equal(t, "", rows[1]["description"])
}
