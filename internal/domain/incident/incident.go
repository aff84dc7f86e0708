// Package incident holds the security incident entity.
//
// Incident status vocabulary is open -> investigating -> resolved; it is
// deliberately distinct from the ticket vocabulary (open/in_progress/closed).
package incident

import (
	"strings"

	"secdesk/internal/shared/errors"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen          Status = "open"
	StatusInvestigating Status = "investigating"
	StatusResolved      Status = "resolved"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInvestigating, StatusResolved:
		return true
	}
	return false
}

// Incident is a reported security event. Reporter is a weak reference to a
// username; the store does not enforce it as a foreign key.
type Incident struct {
	id          uint
	category    string
	severity    Severity
	status      Status
	description string
	reporter    string
}

func NewIncident(category string, severity Severity, description, reporter string) (*Incident, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errors.NewValidationError("description is required")
	}
	if !severity.IsValid() {
		return nil, errors.NewValidationError("invalid severity", string(severity))
	}
	return &Incident{
		category:    strings.TrimSpace(category),
		severity:    severity,
		status:      StatusOpen,
		description: description,
		reporter:    reporter,
	}, nil
}

// Reconstruct rebuilds an incident from persistence without re-validating.
func Reconstruct(id uint, category string, severity Severity, status Status, description, reporter string) *Incident {
	return &Incident{
		id:          id,
		category:    category,
		severity:    severity,
		status:      status,
		description: description,
		reporter:    reporter,
	}
}

func (i *Incident) ID() uint            { return i.id }
func (i *Incident) Category() string    { return i.category }
func (i *Incident) Severity() Severity  { return i.severity }
func (i *Incident) Status() Status      { return i.status }
func (i *Incident) Description() string { return i.description }
func (i *Incident) Reporter() string    { return i.reporter }

func (i *Incident) SetID(id uint) {
	i.id = id
}

func (i *Incident) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return errors.NewValidationError("invalid incident status", string(status))
	}
	i.status = status
	return nil
}
