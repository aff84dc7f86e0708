// Package importer ingests tabular seed data into the repositories.
// Imports are tolerant: a missing file is a soft skip, a row missing a
// required field is recorded as a diagnostic and skipped, and re-running an
// import never duplicates users (insert-or-ignore on username).
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"secdesk/internal/domain/dataset"
	"secdesk/internal/domain/incident"
	"secdesk/internal/domain/ticket"
	"secdesk/internal/domain/user"
	infraauth "secdesk/internal/infrastructure/auth"
	"secdesk/internal/shared/authorization"
	"secdesk/internal/shared/logger"
)

// Diagnostic records why a single row was skipped. Skips are never fatal to
// the batch.
type Diagnostic struct {
	File   string
	Row    int
	Reason string
}

type Result struct {
	Inserted    int
	Skipped     int
	Diagnostics []Diagnostic
}

func (r *Result) skip(file string, row int, reason string) {
	r.Skipped++
	r.Diagnostics = append(r.Diagnostics, Diagnostic{File: file, Row: row, Reason: reason})
}

type Importer struct {
	users     user.Repository
	incidents incident.Repository
	tickets   ticket.Repository
	datasets  dataset.Repository
	hasher    infraauth.PasswordHasher
	logger    logger.Interface
}

func NewImporter(
	users user.Repository,
	incidents incident.Repository,
	tickets ticket.Repository,
	datasets dataset.Repository,
	hasher infraauth.PasswordHasher,
	logger logger.Interface,
) *Importer {
	return &Importer{
		users:     users,
		incidents: incidents,
		tickets:   tickets,
		datasets:  datasets,
		hasher:    hasher,
		logger:    logger,
	}
}

// ImportAll ingests users.csv, incidents.csv, tickets.csv, and datasets.csv
// from dataDir. Files that are absent are skipped with a diagnostic.
func (im *Importer) ImportAll(ctx context.Context, dataDir string) *Result {
	total := &Result{}

	im.importFile(ctx, dataDir, "users.csv", total, im.ImportUsers)
	im.importFile(ctx, dataDir, "incidents.csv", total, im.ImportIncidents)
	im.importFile(ctx, dataDir, "tickets.csv", total, im.ImportTickets)
	im.importFile(ctx, dataDir, "datasets.csv", total, im.ImportDatasets)

	im.logger.Infow("import finished",
		"inserted", total.Inserted,
		"skipped", total.Skipped)

	return total
}

func (im *Importer) importFile(ctx context.Context, dataDir, name string, total *Result, fn func(context.Context, string, []Row) *Result) {
	path := filepath.Join(dataDir, name)
	if _, err := os.Stat(path); err != nil {
		im.logger.Warnw("import file missing, skipping", "file", name)
		total.skip(name, 0, "file not found")
		return
	}

	rows, err := readCSVFile(path)
	if err != nil {
		im.logger.Warnw("failed to read import file, skipping", "file", name, "error", err)
		total.skip(name, 0, fmt.Sprintf("unreadable: %v", err))
		return
	}

	res := fn(ctx, name, rows)
	total.Inserted += res.Inserted
	total.Skipped += res.Skipped
	total.Diagnostics = append(total.Diagnostics, res.Diagnostics...)
}

// ImportUsers hashes each plaintext password and inserts with
// insert-or-ignore semantics keyed on the username: the first row for a
// given username wins, later rows are silently skipped.
func (im *Importer) ImportUsers(ctx context.Context, file string, rows []Row) *Result {
	res := &Result{}
	for i, row := range rows {
		username := row.field("username")
		password := row.field("password")
		role := row.field("role")
		if username == "" || password == "" || role == "" {
			res.skip(file, i+1, "missing username, password, or role")
			continue
		}

		hash, err := im.hasher.Hash(password)
		if err != nil {
			res.skip(file, i+1, fmt.Sprintf("hashing failed: %v", err))
			continue
		}

		u, err := user.NewUser(username, hash, authorization.ParseUserRole(role))
		if err != nil {
			res.skip(file, i+1, err.Error())
			continue
		}

		inserted, err := im.users.CreateIfAbsent(ctx, u)
		if err != nil {
			res.skip(file, i+1, fmt.Sprintf("insert failed: %v", err))
			continue
		}
		if inserted {
			res.Inserted++
		}
	}
	return res
}

func (im *Importer) ImportIncidents(ctx context.Context, file string, rows []Row) *Result {
	res := &Result{}
	for i, row := range rows {
		description := row.field("description")
		severity := row.field("severity")
		if description == "" || severity == "" {
			res.skip(file, i+1, "missing description or severity")
			continue
		}

		inc, err := incident.NewIncident(
			row.field("category", "incident_type", "type"),
			incident.Severity(severity),
			description,
			row.field("reporter", "reported_by"),
		)
		if err != nil {
			res.skip(file, i+1, err.Error())
			continue
		}

		if status := row.field("status"); status != "" {
			if err := inc.ChangeStatus(incident.Status(status)); err != nil {
				res.skip(file, i+1, err.Error())
				continue
			}
		}

		if err := im.incidents.Create(ctx, inc); err != nil {
			res.skip(file, i+1, fmt.Sprintf("insert failed: %v", err))
			continue
		}
		res.Inserted++
	}
	return res
}

func (im *Importer) ImportTickets(ctx context.Context, file string, rows []Row) *Result {
	res := &Result{}
	for i, row := range rows {
		subject := row.field("subject")
		if subject == "" {
			res.skip(file, i+1, "missing subject")
			continue
		}

		priority := row.field("priority")
		if priority == "" {
			priority = string(ticket.PriorityMedium)
		}

		t, err := ticket.NewTicket(
			subject,
			row.field("issue", "detail"),
			ticket.Priority(priority),
			row.field("created_by", "creator"),
			row.field("assigned_to", "assignee"),
		)
		if err != nil {
			res.skip(file, i+1, err.Error())
			continue
		}

		if status := row.field("status"); status != "" {
			if err := t.ChangeStatus(ticket.Status(status)); err != nil {
				res.skip(file, i+1, err.Error())
				continue
			}
		}

		if err := im.tickets.Create(ctx, t); err != nil {
			res.skip(file, i+1, fmt.Sprintf("insert failed: %v", err))
			continue
		}
		res.Inserted++
	}
	return res
}

func (im *Importer) ImportDatasets(ctx context.Context, file string, rows []Row) *Result {
	res := &Result{}
	for i, row := range rows {
		name := row.field("name", "dataset_name")
		owner := row.field("owner")
		if name == "" || owner == "" {
			res.skip(file, i+1, "missing name or owner")
			continue
		}

		d, err := dataset.NewDataset(name, owner)
		if err != nil {
			res.skip(file, i+1, err.Error())
			continue
		}

		if err := im.datasets.Create(ctx, d); err != nil {
			res.skip(file, i+1, fmt.Sprintf("insert failed: %v", err))
			continue
		}
		res.Inserted++
	}
	return res
}
