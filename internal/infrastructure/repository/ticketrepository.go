package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"secdesk/internal/domain/ticket"
	"secdesk/internal/infrastructure/persistence/models"
	"secdesk/internal/shared/errors"
	"secdesk/internal/shared/logger"
)

type TicketRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{db: db, logger: logger}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := ticketToModel(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	t.SetID(model.ID)
	r.logger.Infow("ticket created", "id", model.ID, "priority", model.Priority)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		r.logger.Errorw("failed to get ticket", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return ticketToEntity(&model), nil
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		tickets = append(tickets, ticketToEntity(model))
	}
	return tickets, nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"subject":     t.Subject(),
			"issue":       t.Issue(),
			"priority":    string(t.Priority()),
			"status":      string(t.Status()),
			"assigned_to": t.AssignedTo(),
			"resolved_on": t.ResolvedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", t.ID(), "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete ticket", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	r.logger.Infow("ticket deleted", "id", id)
	return nil
}

func ticketToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:         t.ID(),
		Subject:    t.Subject(),
		Issue:      t.Issue(),
		Priority:   string(t.Priority()),
		Status:     string(t.Status()),
		CreatedBy:  t.CreatedBy(),
		AssignedTo: t.AssignedTo(),
		CreatedOn:  t.CreatedAt(),
		ResolvedOn: t.ResolvedAt(),
	}
}

func ticketToEntity(m *models.TicketModel) *ticket.Ticket {
	return ticket.Reconstruct(
		m.ID,
		m.Subject,
		m.Issue,
		ticket.Priority(m.Priority),
		ticket.Status(m.Status),
		m.CreatedBy,
		m.AssignedTo,
		m.CreatedOn,
		m.ResolvedOn,
	)
}
