// Package ticket holds the IT support ticket entity.
package ticket

import (
	"strings"
	"time"

	"secdesk/internal/shared/errors"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// Ticket is a support request. CreatedBy and AssignedTo are weak references
// to usernames. ResolvedAt is nil until the ticket transitions to closed and
// never precedes CreatedAt.
type Ticket struct {
	id         uint
	subject    string
	issue      string
	priority   Priority
	status     Status
	createdBy  string
	assignedTo string
	createdAt  time.Time
	resolvedAt *time.Time
}

func NewTicket(subject, issue string, priority Priority, createdBy, assignedTo string) (*Ticket, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, errors.NewValidationError("subject is required")
	}
	if !priority.IsValid() {
		return nil, errors.NewValidationError("invalid priority", string(priority))
	}
	return &Ticket{
		subject:    strings.TrimSpace(subject),
		issue:      issue,
		priority:   priority,
		status:     StatusOpen,
		createdBy:  createdBy,
		assignedTo: assignedTo,
		createdAt:  time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a ticket from persistence without re-validating.
func Reconstruct(id uint, subject, issue string, priority Priority, status Status, createdBy, assignedTo string, createdAt time.Time, resolvedAt *time.Time) *Ticket {
	return &Ticket{
		id:         id,
		subject:    subject,
		issue:      issue,
		priority:   priority,
		status:     status,
		createdBy:  createdBy,
		assignedTo: assignedTo,
		createdAt:  createdAt,
		resolvedAt: resolvedAt,
	}
}

func (t *Ticket) ID() uint               { return t.id }
func (t *Ticket) Subject() string        { return t.subject }
func (t *Ticket) Issue() string          { return t.issue }
func (t *Ticket) Priority() Priority     { return t.priority }
func (t *Ticket) Status() Status         { return t.status }
func (t *Ticket) CreatedBy() string      { return t.createdBy }
func (t *Ticket) AssignedTo() string     { return t.assignedTo }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) ResolvedAt() *time.Time { return t.resolvedAt }

func (t *Ticket) SetID(id uint) {
	t.id = id
}

func (t *Ticket) Assign(username string) {
	t.assignedTo = username
}

func (t *Ticket) ChangePriority(priority Priority) error {
	if !priority.IsValid() {
		return errors.NewValidationError("invalid priority", string(priority))
	}
	t.priority = priority
	return nil
}

// ChangeStatus moves the ticket to the given status. Closing stamps the
// resolution time; resolvedAt is cleared again if the ticket is reopened.
func (t *Ticket) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return errors.NewValidationError("invalid ticket status", string(status))
	}

	if status == StatusClosed {
		if t.status != StatusClosed {
			now := time.Now().UTC()
			if now.Before(t.createdAt) {
				now = t.createdAt
			}
			t.resolvedAt = &now
		}
	} else {
		t.resolvedAt = nil
	}

	t.status = status
	return nil
}
