package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"secdesk/internal/domain/dataset"
	"secdesk/internal/infrastructure/persistence/models"
	"secdesk/internal/shared/errors"
	"secdesk/internal/shared/logger"
)

type DatasetRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewDatasetRepository(db *gorm.DB, logger logger.Interface) dataset.Repository {
	return &DatasetRepository{db: db, logger: logger}
}

func (r *DatasetRepository) Create(ctx context.Context, d *dataset.Dataset) error {
	model := datasetToModel(d)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create dataset", "error", err)
		return fmt.Errorf("failed to create dataset: %w", err)
	}
	d.SetID(model.ID)
	r.logger.Infow("dataset created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *DatasetRepository) GetByID(ctx context.Context, id uint) (*dataset.Dataset, error) {
	var model models.DatasetModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("dataset not found")
		}
		r.logger.Errorw("failed to get dataset", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return datasetToEntity(&model), nil
}

func (r *DatasetRepository) List(ctx context.Context) ([]*dataset.Dataset, error) {
	var datasetModels []*models.DatasetModel
	if err := r.db.WithContext(ctx).Order("id").Find(&datasetModels).Error; err != nil {
		r.logger.Errorw("failed to list datasets", "error", err)
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}

	datasets := make([]*dataset.Dataset, 0, len(datasetModels))
	for _, model := range datasetModels {
		datasets = append(datasets, datasetToEntity(model))
	}
	return datasets, nil
}

func (r *DatasetRepository) Update(ctx context.Context, d *dataset.Dataset) error {
	result := r.db.WithContext(ctx).Model(&models.DatasetModel{}).
		Where("id = ?", d.ID()).
		Updates(map[string]interface{}{
			"name":  d.Name(),
			"owner": d.Owner(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update dataset", "id", d.ID(), "error", result.Error)
		return fmt.Errorf("failed to update dataset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("dataset not found")
	}
	return nil
}

func (r *DatasetRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.DatasetModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete dataset", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete dataset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("dataset not found")
	}
	r.logger.Infow("dataset deleted", "id", id)
	return nil
}

func datasetToModel(d *dataset.Dataset) *models.DatasetModel {
	return &models.DatasetModel{
		ID:    d.ID(),
		Name:  d.Name(),
		Owner: d.Owner(),
	}
}

func datasetToEntity(m *models.DatasetModel) *dataset.Dataset {
	return dataset.Reconstruct(m.ID, m.Name, m.Owner)
}
