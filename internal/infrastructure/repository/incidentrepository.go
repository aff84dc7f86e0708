package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"secdesk/internal/domain/incident"
	"secdesk/internal/infrastructure/persistence/models"
	"secdesk/internal/shared/errors"
	"secdesk/internal/shared/logger"
)

type IncidentRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewIncidentRepository(db *gorm.DB, logger logger.Interface) incident.Repository {
	return &IncidentRepository{db: db, logger: logger}
}

func (r *IncidentRepository) Create(ctx context.Context, inc *incident.Incident) error {
	model := incidentToModel(inc)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create incident", "error", err)
		return fmt.Errorf("failed to create incident: %w", err)
	}
	inc.SetID(model.ID)
	r.logger.Infow("incident created", "id", model.ID, "severity", model.Severity)
	return nil
}

func (r *IncidentRepository) GetByID(ctx context.Context, id uint) (*incident.Incident, error) {
	var model models.IncidentModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("incident not found")
		}
		r.logger.Errorw("failed to get incident", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return incidentToEntity(&model), nil
}

func (r *IncidentRepository) List(ctx context.Context) ([]*incident.Incident, error) {
	var incidentModels []*models.IncidentModel
	if err := r.db.WithContext(ctx).Order("id").Find(&incidentModels).Error; err != nil {
		r.logger.Errorw("failed to list incidents", "error", err)
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	incidents := make([]*incident.Incident, 0, len(incidentModels))
	for _, model := range incidentModels {
		incidents = append(incidents, incidentToEntity(model))
	}
	return incidents, nil
}

func (r *IncidentRepository) Update(ctx context.Context, inc *incident.Incident) error {
	result := r.db.WithContext(ctx).Model(&models.IncidentModel{}).
		Where("id = ?", inc.ID()).
		Updates(map[string]interface{}{
			"category":    inc.Category(),
			"severity":    string(inc.Severity()),
			"status":      string(inc.Status()),
			"description": inc.Description(),
			"reporter":    inc.Reporter(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update incident", "id", inc.ID(), "error", result.Error)
		return fmt.Errorf("failed to update incident: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("incident not found")
	}
	return nil
}

// Delete removes the incident with the given surrogate key. Deleting by id
// stays stable under concurrent modification, unlike positional deletion.
func (r *IncidentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.IncidentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete incident", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete incident: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("incident not found")
	}
	r.logger.Infow("incident deleted", "id", id)
	return nil
}

func incidentToModel(inc *incident.Incident) *models.IncidentModel {
	return &models.IncidentModel{
		ID:          inc.ID(),
		Category:    inc.Category(),
		Severity:    string(inc.Severity()),
		Status:      string(inc.Status()),
		Description: inc.Description(),
		Reporter:    inc.Reporter(),
	}
}

func incidentToEntity(m *models.IncidentModel) *incident.Incident {
	return incident.Reconstruct(
		m.ID,
		m.Category,
		incident.Severity(m.Severity),
		incident.Status(m.Status),
		m.Description,
		m.Reporter,
	)
}
