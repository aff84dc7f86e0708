package dataset

import "context"

// Repository is the persistence port for datasets.
type Repository interface {
	Create(ctx context.Context, d *Dataset) error
	GetByID(ctx context.Context, id uint) (*Dataset, error)
	List(ctx context.Context) ([]*Dataset, error)
	Update(ctx context.Context, d *Dataset) error
	Delete(ctx context.Context, id uint) error
}
